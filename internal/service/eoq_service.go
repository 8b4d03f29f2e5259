package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/andresuchdata/eoq-calculator/internal/domain"
	"github.com/andresuchdata/eoq-calculator/internal/inventory"
	"github.com/rs/zerolog/log"
)

const defaultCurrency = "Rp"

type EOQService struct {
	currency string
}

func NewEOQService(currency string) *EOQService {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = defaultCurrency
	}
	return &EOQService{currency: currency}
}

// Calculate runs one full compute pass: metrics, safety verdict and the
// 10-day stock series. Nothing is retained between calls.
func (s *EOQService) Calculate(ctx context.Context, in inventory.Inputs) (*domain.CalculationReport, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	metrics := inventory.Compute(in)
	safe := inventory.IsSafe(metrics.EOQ, in.DailyDemand, in.ShelfLife)
	series := inventory.BuildSeries(in.DailyDemand, metrics.ROP, in.ShelfLife)
	if err := checkFinite(metrics, series); err != nil {
		return nil, err
	}

	report := domain.NewCalculationReport(in, metrics, safe, series)
	report.Currency = s.currency
	report.CostLabel = s.currency + " " + inventory.FormatIDR(metrics.TotalMonthlyCost)

	log.Ctx(ctx).Debug().
		Float64("eoq", metrics.EOQ).
		Float64("rop", metrics.ROP).
		Bool("safe", safe).
		Msg("eoq: calculation complete")

	return report, nil
}

// checkFinite rejects inputs that are valid on their own but overflow one
// of the derived values.
func checkFinite(m inventory.Metrics, series inventory.StockSeries) error {
	values := []struct {
		name  string
		value float64
	}{
		{"eoq", m.EOQ},
		{"rop", m.ROP},
		{"stock_out_time", m.StockOutTime},
		{"order_frequency", m.OrderFrequency},
		{"total_monthly_cost", m.TotalMonthlyCost},
		{"max_stock", series.MaxStock},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: inputs too large, %s is not a finite number", inventory.ErrInvalidInput, v.name)
		}
	}
	return nil
}
