package inventory

import "math"

// BuildSeries models linear depletion from an initial stock of
// shelfLife*dailyDemand units over a fixed 10-day window, clamped at zero.
func BuildSeries(dailyDemand, rop, shelfLife float64) StockSeries {
	maxStock := shelfLife * dailyDemand

	series := StockSeries{
		Days:     make([]int, SeriesHorizon),
		Levels:   make([]float64, SeriesHorizon),
		Bands:    make([]Band, SeriesHorizon),
		Critical: make([]bool, SeriesHorizon),
		Caution:  make([]bool, SeriesHorizon),
		Safe:     make([]bool, SeriesHorizon),
		ROP:      rop,
		MaxStock: maxStock,
	}

	for d := 0; d < SeriesHorizon; d++ {
		level := math.Max(0, maxStock-dailyDemand*float64(d))
		band := Classify(level, rop, maxStock)

		series.Days[d] = d
		series.Levels[d] = level
		series.Bands[d] = band
		switch band {
		case BandCritical:
			series.Critical[d] = true
		case BandCaution:
			series.Caution[d] = true
		default:
			series.Safe[d] = true
		}
	}

	return series
}

// Classify places a stock level into a band. Critical is checked first, so
// when rop exceeds maxStock a level in [maxStock, rop) is critical.
func Classify(level, rop, maxStock float64) Band {
	switch {
	case level < rop:
		return BandCritical
	case level < maxStock:
		return BandCaution
	default:
		return BandSafe
	}
}
