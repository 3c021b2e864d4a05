package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnuitize(t *testing.T) {
	tests := []struct {
		name     string
		wealth   float64
		g, r     float64
		duration int
		want     float64
	}{
		{"growing payout", 1000, 0.02, 0.05, 10, 119.2164288},
		{"zero duration collapses", 1000, 0.02, 0.05, 0, 1000},
		{"equal rates collapse", 1000, 0.04, 0.04, 20, 1000},
		{"zero wealth", 0, 0.02, 0.05, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Annuitize(tt.wealth, tt.g, tt.r, tt.duration), 1e-6)
		})
	}
}

func TestRemainingPensionDecaysToZero(t *testing.T) {
	const w, g, r, n = 1000.0, 0.02, 0.05, 10
	c := Annuitize(w, g, r, n)
	want := []float64{1000, 930.783571, 855.721992, 774.47532, 686.685658, 591.976244,
		489.950486, 380.190948, 262.258293, 135.69016, 0}

	for k := 0; k <= n; k++ {
		assert.InDelta(t, want[k], RemainingPension(w, c, g, r, n, k), 1e-5, "k=%d", k)
	}
}

func TestRemainingPensionLinearWhenRatesCoincide(t *testing.T) {
	const w, rate, n = 20000.0, 0.03, 20
	c := Annuitize(w, rate, rate, n)
	require.Equal(t, w, c)

	assert.Equal(t, w, RemainingPension(w, c, rate, rate, n, 0))
	assert.Equal(t, w*19, RemainingPension(w, c, rate, rate, n, 1))
	assert.Equal(t, 0.0, RemainingPension(w, c, rate, rate, n, n))
}

func TestDecumulateWindowClippedToHorizon(t *testing.T) {
	p := scenarioParams()
	points := Decumulate(p, 100, 10)
	require.Len(t, points, 21)
	assert.Equal(t, 2055, points[0].Year)
	assert.Equal(t, 2075, points[len(points)-1].Year)
	assert.Equal(t, 100.0, points[0].RemainingPension)

	p.LastYear = 2060
	assert.Len(t, Decumulate(p, 100, 10), 6)

	p.LastYear = 2050
	assert.Empty(t, Decumulate(p, 100, 10))
}

func TestExpectedMonthlyPension(t *testing.T) {
	assert.InDelta(t, 5.825073, ExpectedMonthlyPension(1000, 0.02, 0.05, 10), 1e-6)
	// collapsed rates: wealth * duration / (duration*12) / 12
	assert.InDelta(t, 1000.0/144, ExpectedMonthlyPension(1000, 0.04, 0.04, 10), 1e-9)
	assert.Equal(t, 0.0, ExpectedMonthlyPension(1000, 0.02, 0.05, 0))
}

func TestExpectedMonthlyPensionJustPastRateTolerance(t *testing.T) {
	g, r := 0.05+1.05e-4, 0.05
	want := 1000 * (math.Pow((1+g)/(1+r), 1) - 1) / (g - r) / 12 / 12
	got := ExpectedMonthlyPension(1000, g, r, 1)
	assert.InDelta(t, want, got, 1e-9)
	assert.Less(t, got, 1000.0/144, "the general form discounts by 1+r")
}
