// Package derive contains the pure derivation functions that turn raw
// persisted records into display-ready aggregates. Every function is a
// stateless fold over a snapshot plus an explicit "today": callers pass
// all inputs, nothing is read from ambient state, and a recomputation is
// always safe to repeat.
package derive

import "finmate/internal/core"

// MonthlyIncome normalizes heterogeneous income entries to a single
// monthly-equivalent total: Weekly x4, Bi-weekly x2, Monthly x1,
// Annually /12. An unknown frequency is treated as already monthly.
// Non-positive amounts contribute nothing rather than aborting the fold.
// An empty set yields 0.
func MonthlyIncome(sources []core.IncomeSource) core.Money {
	var total int64
	for _, s := range sources {
		cents := s.Amount.Cents
		if cents <= 0 {
			continue
		}
		switch s.Frequency {
		case core.Weekly:
			total += cents * 4
		case core.BiWeekly:
			total += cents * 2
		case core.Annually:
			total += divRound(cents, 12)
		default:
			// Monthly and anything unrecognized.
			total += cents
		}
	}
	return core.Money{Cents: total}
}

// divRound divides with half-up rounding, keeping cent totals exact for
// the annual case.
func divRound(cents, by int64) int64 {
	return (cents + by/2) / by
}
