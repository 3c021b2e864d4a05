package calculation

import (
	"math"
	"sync"

	"github.com/pensionview/retirement-projection/internal/domain"
)

// Memoizer caches projections keyed by the full parameter set. It sits in
// front of Project for callers that recompute on every input change.
type Memoizer struct {
	mu      sync.Mutex
	entries map[memoKey]domain.ProjectionSeries
	order   []memoKey
	limit   int
	hits    int
	misses  int
}

// NewMemoizer returns a cache holding at most limit projections (FIFO eviction).
// A limit <= 0 means unbounded.
func NewMemoizer(limit int) *Memoizer {
	return &Memoizer{
		entries: make(map[memoKey]domain.ProjectionSeries),
		limit:   limit,
	}
}

// memoKey is the parameter set with every float replaced by its bit pattern,
// so NaN inputs compare equal to themselves and evict like any other key.
type memoKey struct {
	currentYear, lastYear, retirementStartYear, retirementDuration int
	deposit, depositGrowth, marketRate, payoutGrowth, capital      uint64
}

func keyOf(p domain.ProjectionParameters) memoKey {
	return memoKey{
		currentYear:         p.CurrentYear,
		lastYear:            p.LastYear,
		retirementStartYear: p.RetirementStartYear,
		retirementDuration:  p.RetirementDuration,
		deposit:             math.Float64bits(p.MonthlyDeposit),
		depositGrowth:       math.Float64bits(p.DepositGrowthRate.Fraction()),
		marketRate:          math.Float64bits(p.MarketRate.Fraction()),
		payoutGrowth:        math.Float64bits(p.RetirementGrowthRate.Fraction()),
		capital:             math.Float64bits(p.InitialCapital),
	}
}

// Project returns the cached projection for p, computing it on a miss.
// Callers must not mutate the returned Points.
func (m *Memoizer) Project(p domain.ProjectionParameters) domain.ProjectionSeries {
	key := keyOf(p)
	m.mu.Lock()
	if s, ok := m.entries[key]; ok {
		m.hits++
		m.mu.Unlock()
		return s
	}
	m.misses++
	m.mu.Unlock()

	s := Project(p)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok {
		if m.limit > 0 && len(m.order) >= m.limit {
			oldest := m.order[0]
			m.order = m.order[1:]
			delete(m.entries, oldest)
		}
		m.order = append(m.order, key)
		m.entries[key] = s
	}
	return s
}

// Stats returns cache hits and misses.
func (m *Memoizer) Stats() (hits, misses int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}

// Len returns the number of cached projections.
func (m *Memoizer) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
