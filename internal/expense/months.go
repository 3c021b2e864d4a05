package expense

import (
	"sort"

	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/pensionview/retirement-projection/pkg/dateutil"
)

// AvailableMonths lists the distinct YYYY-MM months that have bookings,
// newest first.
func AvailableMonths(txs []domain.Transaction) []string {
	seen := make(map[string]bool)
	var months []string
	for _, tx := range txs {
		if tx.BookingDate.IsZero() {
			continue
		}
		key := dateutil.MonthKey(tx.BookingDate)
		if !seen[key] {
			seen[key] = true
			months = append(months, key)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// ResolveMonth returns selected when it has bookings, and the newest
// available month otherwise. It returns "" when there are no bookings.
func ResolveMonth(selected string, available []string) string {
	for _, m := range available {
		if m == selected {
			return selected
		}
	}
	if len(available) == 0 {
		return ""
	}
	return available[0]
}
