package inventory

import "testing"

func TestBuildSeriesScenario(t *testing.T) {
	s := BuildSeries(10, 30, 7)

	if s.MaxStock != 70 {
		t.Fatalf("Expected max stock 70, got %v", s.MaxStock)
	}
	if len(s.Days) != SeriesHorizon || len(s.Levels) != SeriesHorizon {
		t.Fatalf("Expected %d points, got %d days and %d levels", SeriesHorizon, len(s.Days), len(s.Levels))
	}

	wantLevels := []float64{70, 60, 50, 40, 30, 20, 10, 0, 0, 0}
	for d, want := range wantLevels {
		if s.Days[d] != d {
			t.Errorf("Expected day %d, got %d", d, s.Days[d])
		}
		if s.Levels[d] != want {
			t.Errorf("Expected level[%d] = %v, got %v", d, want, s.Levels[d])
		}
	}

	checks := []struct {
		day  int
		band Band
	}{
		{0, BandSafe},
		{1, BandCaution},
		{4, BandCaution},
		{5, BandCritical},
		{7, BandCritical},
		{9, BandCritical},
	}
	for _, c := range checks {
		if s.Bands[c.day] != c.band {
			t.Errorf("Expected day %d to be %s, got %s", c.day, c.band, s.Bands[c.day])
		}
	}
}

func TestBuildSeriesBandsAreExclusive(t *testing.T) {
	testCases := []struct {
		name        string
		dailyDemand float64
		rop         float64
		shelfLife   float64
	}{
		{"scenario", 10, 30, 7},
		{"short shelf life", 5, 10, 4},
		{"long shelf life", 3, 6, 30},
		{"rop above max stock", 10, 100, 7},
		{"rop equals max stock", 10, 70, 7},
		{"zero demand", 0, 0, 7},
		{"fractional", 2.5, 7.5, 3.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := BuildSeries(tc.dailyDemand, tc.rop, tc.shelfLife)

			for d := range s.Days {
				count := 0
				for _, mask := range [][]bool{s.Critical, s.Caution, s.Safe} {
					if mask[d] {
						count++
					}
				}
				if count != 1 {
					t.Errorf("Expected day %d in exactly one band, got %d", d, count)
				}

				level := s.Levels[d]
				if level < 0 {
					t.Errorf("Expected non-negative level on day %d, got %v", d, level)
				}
				if d > 0 && level > s.Levels[d-1] {
					t.Errorf("Expected non-increasing levels, day %d (%v) > day %d (%v)", d, level, d-1, s.Levels[d-1])
				}
			}
		})
	}
}

func TestBuildSeriesShortShelfLifeTail(t *testing.T) {
	s := BuildSeries(5, 10, 4)

	for d := 4; d < SeriesHorizon; d++ {
		if s.Levels[d] != 0 {
			t.Errorf("Expected zero stock on day %d, got %v", d, s.Levels[d])
		}
		if !s.Critical[d] {
			t.Errorf("Expected day %d to be critical", d)
		}
	}
}

func TestBuildSeriesZeroDemandIsFlat(t *testing.T) {
	s := BuildSeries(0, 0, 7)

	for d, level := range s.Levels {
		if level != 0 {
			t.Errorf("Expected flat zero series, got %v on day %d", level, d)
		}
		if s.Bands[d] != BandSafe {
			t.Errorf("Expected zero level against zero thresholds to be safe, got %s", s.Bands[d])
		}
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		level    float64
		rop      float64
		maxStock float64
		want     Band
	}{
		{"below rop", 20, 30, 70, BandCritical},
		{"at rop", 30, 30, 70, BandCaution},
		{"just below max", 69.99, 30, 70, BandCaution},
		{"at max", 70, 30, 70, BandSafe},
		{"rop above max, level at max", 70, 100, 70, BandCritical},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.level, tc.rop, tc.maxStock); got != tc.want {
				t.Errorf("Classify(%v, %v, %v) = %s, want %s", tc.level, tc.rop, tc.maxStock, got, tc.want)
			}
		})
	}
}
