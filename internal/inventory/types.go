package inventory

import "errors"

// ErrInvalidInput is returned when an input field is not a positive, finite number.
var ErrInvalidInput = errors.New("invalid input")

// SeriesHorizon is the number of days covered by the stock chart.
const SeriesHorizon = 10

// DaysPerMonth is the month length used for order frequency and monthly cost.
const DaysPerMonth = 30

// Inputs holds the five values entered on the calculator form
type Inputs struct {
	DailyDemand  float64 // Units sold per day
	OrderingCost float64 // Cost per order
	HoldingCost  float64 // Cost to hold one unit per day
	LeadTime     float64 // Days between ordering and receiving
	ShelfLife    float64 // Maximum days a unit stays sellable
}

// Metrics holds calculated inventory metrics
type Metrics struct {
	EOQ              float64 // Economic order quantity (units)
	ROP              float64 // Reorder point (units)
	StockOutTime     float64 // Days until stock runs out
	OrderFrequency   float64 // Orders per month
	TotalMonthlyCost float64 // Holding + ordering cost per month
}

// Band is the risk band a day of the stock series falls into.
type Band string

const (
	BandCritical Band = "critical" // level below the reorder point
	BandCaution  Band = "caution"  // between reorder point and initial stock
	BandSafe     Band = "safe"     // at or above initial stock
)

// StockSeries is the plottable 10-day depletion of an initial stock of
// ShelfLife*DailyDemand units.
type StockSeries struct {
	Days     []int
	Levels   []float64
	Bands    []Band
	Critical []bool
	Caution  []bool
	Safe     []bool
	ROP      float64
	MaxStock float64
}
