package inventory

import (
	"math"
	"testing"
)

func TestFormatFixed(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{31.6227766, "31.62"},
		{30, "30.00"},
		{0.7, "0.70"},
		{9.486832, "9.49"},
		{0, "0.00"},
		{0.125, "0.12"},
		{0.625, "0.62"},
		{0.375, "0.38"},
		{math.Inf(1), "+Inf"},
		{math.NaN(), "NaN"},
	}

	for _, tc := range testCases {
		if got := FormatFixed(tc.in); got != tc.want {
			t.Errorf("FormatFixed(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFormatIDR(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{1234.5, "1.234,50"},
		{1000, "1.000,00"},
		{980.306, "980,31"},
		{123, "123,00"},
		{1234567.891, "1.234.567,89"},
		{-4500.25, "-4.500,25"},
		{1000.125, "1.000,12"},
		{math.Inf(1), "+Inf"},
	}

	for _, tc := range testCases {
		if got := FormatIDR(tc.in); got != tc.want {
			t.Errorf("FormatIDR(%v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFormatMetrics(t *testing.T) {
	f := Format(Compute(Inputs{DailyDemand: 10, OrderingCost: 100, HoldingCost: 2, LeadTime: 3, ShelfLife: 7}))

	want := Formatted{
		EOQ:              "31.62",
		ROP:              "30.00",
		StockOutTime:     "0.70",
		OrderFrequency:   "9.49",
		TotalMonthlyCost: "980.31",
	}
	if f != want {
		t.Errorf("Expected %+v, got %+v", want, f)
	}
}

func TestRoundFixed(t *testing.T) {
	if got := RoundFixed(31.6227766); got != 31.62 {
		t.Errorf("Expected 31.62, got %v", got)
	}
}

func TestRoundFixedHalfEven(t *testing.T) {
	testCases := []struct {
		in   float64
		want float64
	}{
		{0.125, 0.12},
		{0.625, 0.62},
		{2.675, 2.67},
	}

	for _, tc := range testCases {
		if got := RoundFixed(tc.in); got != tc.want {
			t.Errorf("RoundFixed(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatStockOutTimeOnTie(t *testing.T) {
	f := Format(Compute(Inputs{DailyDemand: 8, OrderingCost: 1, HoldingCost: 1, LeadTime: 1, ShelfLife: 1}))
	if f.StockOutTime != "0.12" {
		t.Errorf("Expected stock-out time 0.12, got %s", f.StockOutTime)
	}

	f = Format(Compute(Inputs{DailyDemand: 8, OrderingCost: 1, HoldingCost: 1, LeadTime: 1, ShelfLife: 5}))
	if f.StockOutTime != "0.62" {
		t.Errorf("Expected stock-out time 0.62, got %s", f.StockOutTime)
	}
}
