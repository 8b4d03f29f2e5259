package inventory

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// OutputDecimals is the precision used when presenting metrics.
const OutputDecimals = 2

// Formatted holds the metrics as fixed two-decimal strings.
type Formatted struct {
	EOQ              string `json:"eoq"`
	ROP              string `json:"rop"`
	StockOutTime     string `json:"stock_out_time"`
	OrderFrequency   string `json:"order_frequency"`
	TotalMonthlyCost string `json:"total_monthly_cost"`
}

// Format renders every metric with two decimal places.
func Format(m Metrics) Formatted {
	return Formatted{
		EOQ:              FormatFixed(m.EOQ),
		ROP:              FormatFixed(m.ROP),
		StockOutTime:     FormatFixed(m.StockOutTime),
		OrderFrequency:   FormatFixed(m.OrderFrequency),
		TotalMonthlyCost: FormatFixed(m.TotalMonthlyCost),
	}
}

// FormatFixed formats v with two decimal places, e.g. 31.6227 => "31.62".
// Rounding works on the exact binary value, half to even, so 0.125 => "0.12".
// Non-finite values come back as "NaN", "+Inf" or "-Inf".
func FormatFixed(v float64) string {
	if !isFinite(v) {
		return strconv.FormatFloat(v, 'f', OutputDecimals, 64)
	}
	return exactDecimal(v).RoundBank(OutputDecimals).StringFixed(OutputDecimals)
}

// RoundFixed rounds v to two decimal places, matching FormatFixed.
func RoundFixed(v float64) float64 {
	if !isFinite(v) {
		return v
	}
	f, _ := exactDecimal(v).RoundBank(OutputDecimals).Float64()
	return f
}

// exactDecimal expands v to every decimal digit of its binary value;
// 1074 places covers the smallest subnormal.
func exactDecimal(v float64) decimal.Decimal {
	return decimal.RequireFromString(strconv.FormatFloat(v, 'f', 1074, 64))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FormatIDR formats an amount using Indonesian conventions: dot as the
// thousands separator and comma as the decimal separator.
// Example: 1234.5 => "1.234,50"; 1000 => "1.000,00".
func FormatIDR(v float64) string {
	s := FormatFixed(v)
	if !isFinite(v) {
		return s
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	// group integer part with dot as thousands separator
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
