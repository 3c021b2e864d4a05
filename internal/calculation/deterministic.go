package calculation

import "time"

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// CurrentYear returns the calendar year used to anchor projections whose
// caller did not supply one.
func CurrentYear() int { return nowFunc().Year() }
