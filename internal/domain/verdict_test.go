package domain

import (
	"testing"

	"github.com/andresuchdata/eoq-calculator/internal/inventory"
)

func TestSafetyMessage(t *testing.T) {
	if got := SafetyMessage(true); got != "EOQ aman terhadap umur simpan." {
		t.Errorf("Unexpected safe message %q", got)
	}
	if got := SafetyMessage(false); got != "Peringatan: EOQ lebih besar dari D × umur simpan!" {
		t.Errorf("Unexpected warning message %q", got)
	}
}

func TestBandLabel(t *testing.T) {
	testCases := []struct {
		band inventory.Band
		want string
	}{
		{inventory.BandCritical, "Kritis"},
		{inventory.BandCaution, "Waspada"},
		{inventory.BandSafe, "Aman"},
		{inventory.Band("unknown"), "unknown"},
	}

	for _, tc := range testCases {
		if got := BandLabel(tc.band); got != tc.want {
			t.Errorf("BandLabel(%s) = %q, want %q", tc.band, got, tc.want)
		}
	}
}

func TestNewCalculationReport(t *testing.T) {
	in := inventory.Inputs{DailyDemand: 5, OrderingCost: 50, HoldingCost: 1, LeadTime: 2, ShelfLife: 4}
	m := inventory.Compute(in)
	safe := inventory.IsSafe(m.EOQ, in.DailyDemand, in.ShelfLife)
	series := inventory.BuildSeries(in.DailyDemand, m.ROP, in.ShelfLife)

	r := NewCalculationReport(in, m, safe, series)

	if r.Inputs.Inputs() != in {
		t.Errorf("Expected inputs to round trip, got %+v", r.Inputs.Inputs())
	}
	if r.Safe {
		t.Error("Expected unsafe verdict")
	}
	if r.Message != SafetyMessage(false) {
		t.Errorf("Expected warning message, got %q", r.Message)
	}
	if r.Formatted.EOQ != "22.36" {
		t.Errorf("Expected formatted EOQ 22.36, got %s", r.Formatted.EOQ)
	}
	if r.Chart.MaxStock != 20 || r.Chart.ROP != 10 {
		t.Errorf("Expected max stock 20 and rop 10, got %v and %v", r.Chart.MaxStock, r.Chart.ROP)
	}
	if got := r.Chart.Series(); len(got.Levels) != inventory.SeriesHorizon {
		t.Errorf("Expected %d levels, got %d", inventory.SeriesHorizon, len(got.Levels))
	}
}
