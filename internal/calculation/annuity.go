package calculation

import "math"

// Annuitize returns the scale constant C of a growing annuity that exhausts
// wealth over duration years, the payout growing at g while the balance earns r.
//
//	C = wealth * (g - r) / (((1+g)/(1+r))^duration - 1)
//
// When the denominator collapses (zero duration or g == r) the annuity is flat
// and C is the wealth itself.
func Annuitize(wealth, g, r float64, duration int) float64 {
	denominator := math.Pow((1+g)/(1+r), float64(duration)) - 1
	if math.Abs(denominator) < degenerateTolerance {
		return wealth
	}
	return wealth * (g - r) / denominator
}
