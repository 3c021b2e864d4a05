package calculation

import (
	"math"

	"github.com/pensionview/retirement-projection/internal/domain"
)

// Bounds is the value range of a series, used for chart axis scaling.
type Bounds struct {
	Min   float64
	Max   float64
	Valid bool
}

// AxisBounds returns the range over every defined, finite value of the series.
// NaN and infinite values, which only arise from invalid parameters, are
// skipped rather than propagated into the axis.
func AxisBounds(series domain.ProjectionSeries) Bounds {
	b := Bounds{Min: math.Inf(1), Max: math.Inf(-1)}
	observe := func(v *float64) {
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			return
		}
		b.Min = math.Min(b.Min, *v)
		b.Max = math.Max(b.Max, *v)
		b.Valid = true
	}
	for _, yp := range series.Points {
		observe(yp.InvestedCapital)
		observe(yp.Wealth)
		observe(yp.RemainingPension)
	}
	if !b.Valid {
		return Bounds{}
	}
	return b
}
