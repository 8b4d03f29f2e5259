package inventory

import (
	"fmt"
	"math"
)

// Compute derives the inventory metrics for a set of inputs. Inputs are
// expected to be validated by the caller.
func Compute(in Inputs) Metrics {
	metrics := Metrics{}

	// 1. EOQ = sqrt(2 × D × S / H)
	metrics.EOQ = math.Sqrt(2 * in.DailyDemand * in.OrderingCost / in.HoldingCost)

	// 2. Reorder point = Daily demand × Lead time
	metrics.ROP = in.DailyDemand * in.LeadTime

	// 3. Stock out time
	metrics.StockOutTime = in.ShelfLife / in.DailyDemand

	// 4. Order cycles per month, with EOQ / D as the cycle length in days
	metrics.OrderFrequency = DaysPerMonth / (metrics.EOQ / in.DailyDemand)

	// 5. Average holding cost plus ordering cost over the month
	metrics.TotalMonthlyCost = in.HoldingCost*(metrics.EOQ/2) + in.OrderingCost*metrics.OrderFrequency

	return metrics
}

// IsSafe reports whether an order of eoq units can be sold before it expires.
func IsSafe(eoq, dailyDemand, shelfLife float64) bool {
	return eoq <= dailyDemand*shelfLife
}

// Validate checks that every field is a positive, finite number.
func (in Inputs) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"daily_demand", in.DailyDemand},
		{"ordering_cost", in.OrderingCost},
		{"holding_cost", in.HoldingCost},
		{"lead_time", in.LeadTime},
		{"shelf_life", in.ShelfLife},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return fmt.Errorf("%w: %s must be a positive number, got %v", ErrInvalidInput, f.name, f.value)
		}
	}
	return nil
}
