package domain

import "github.com/andresuchdata/eoq-calculator/internal/inventory"

// CalculationRequest represents the five values submitted from the calculator form
type CalculationRequest struct {
	DailyDemand  float64 `json:"daily_demand" form:"daily_demand" binding:"required,gte=1"`
	OrderingCost float64 `json:"ordering_cost" form:"ordering_cost" binding:"required,gte=1"`
	HoldingCost  float64 `json:"holding_cost" form:"holding_cost" binding:"required,gte=1"`
	LeadTime     float64 `json:"lead_time" form:"lead_time" binding:"required,gte=1"`
	ShelfLife    float64 `json:"shelf_life" form:"shelf_life" binding:"required,gte=1"`
}

// Inputs converts the request into calculator inputs
func (r CalculationRequest) Inputs() inventory.Inputs {
	return inventory.Inputs{
		DailyDemand:  r.DailyDemand,
		OrderingCost: r.OrderingCost,
		HoldingCost:  r.HoldingCost,
		LeadTime:     r.LeadTime,
		ShelfLife:    r.ShelfLife,
	}
}

// Metrics represents the calculated metrics
type Metrics struct {
	EOQ              float64 `json:"eoq"`
	ROP              float64 `json:"rop"`
	StockOutTime     float64 `json:"stock_out_time"`
	OrderFrequency   float64 `json:"order_frequency"`
	TotalMonthlyCost float64 `json:"total_monthly_cost"`
}

// ChartData is the data a renderer needs to draw the stock chart
type ChartData struct {
	Days     []int            `json:"days"`
	Levels   []float64        `json:"levels"`
	Bands    []inventory.Band `json:"bands"`
	Critical []bool           `json:"critical"`
	Caution  []bool           `json:"caution"`
	Safe     []bool           `json:"safe"`
	ROP      float64          `json:"rop"`
	MaxStock float64          `json:"max_stock"`
}

// CalculationReport represents the full result of one form submission
type CalculationReport struct {
	Inputs    CalculationRequest  `json:"inputs"`
	Metrics   Metrics             `json:"metrics"`
	Formatted inventory.Formatted `json:"formatted"`
	Currency  string              `json:"currency"`
	CostLabel string              `json:"cost_label"`
	Safe      bool                `json:"safe"`
	Message   string              `json:"message"`
	Chart     ChartData           `json:"chart"`
}

// NewCalculationReport assembles a report from the calculator outputs
func NewCalculationReport(in inventory.Inputs, m inventory.Metrics, safe bool, series inventory.StockSeries) *CalculationReport {
	return &CalculationReport{
		Inputs: CalculationRequest{
			DailyDemand:  in.DailyDemand,
			OrderingCost: in.OrderingCost,
			HoldingCost:  in.HoldingCost,
			LeadTime:     in.LeadTime,
			ShelfLife:    in.ShelfLife,
		},
		Metrics: Metrics{
			EOQ:              m.EOQ,
			ROP:              m.ROP,
			StockOutTime:     m.StockOutTime,
			OrderFrequency:   m.OrderFrequency,
			TotalMonthlyCost: m.TotalMonthlyCost,
		},
		Formatted: inventory.Format(m),
		Safe:      safe,
		Message:   SafetyMessage(safe),
		Chart: ChartData{
			Days:     series.Days,
			Levels:   series.Levels,
			Bands:    series.Bands,
			Critical: series.Critical,
			Caution:  series.Caution,
			Safe:     series.Safe,
			ROP:      series.ROP,
			MaxStock: series.MaxStock,
		},
	}
}

// Series converts the chart data back into a stock series for rendering
func (c ChartData) Series() inventory.StockSeries {
	return inventory.StockSeries{
		Days:     c.Days,
		Levels:   c.Levels,
		Bands:    c.Bands,
		Critical: c.Critical,
		Caution:  c.Caution,
		Safe:     c.Safe,
		ROP:      c.ROP,
		MaxStock: c.MaxStock,
	}
}

// CostText is the total monthly cost with the currency prefix and two plain
// decimals, e.g. "Rp 980.31".
func (r *CalculationReport) CostText() string {
	return r.Currency + " " + r.Formatted.TotalMonthlyCost
}
