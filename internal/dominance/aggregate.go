// Package dominance derives per-state sales method dominance from
// cleaned sales records.
package dominance

import (
	"sort"

	"go.uber.org/zap"

	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/model"
)

// Aggregate groups cleaned sales by (state, method), computes per-state
// percentage shares over the canonical method set, and derives the
// dominant method and its strength. Ties resolve to the first method in
// canonical order, never data order. Output is sorted by state name;
// one row per distinct state, including states without a code.
func Aggregate(sales []model.Sale, methods []string) []model.StateDominance {
	if len(methods) == 0 {
		methods = model.CanonicalMethods()
	}

	counts := make(map[string]map[string]int)
	for _, s := range sales {
		byMethod, ok := counts[s.State]
		if !ok {
			byMethod = make(map[string]int, len(methods))
			counts[s.State] = byMethod
		}
		byMethod[s.Method]++
	}

	states := make([]string, 0, len(counts))
	for state := range counts {
		states = append(states, state)
	}
	sort.Strings(states)

	rows := make([]model.StateDominance, 0, len(states))
	for _, state := range states {
		byMethod := counts[state]

		var total int
		for _, n := range byMethod {
			total += n
		}

		shares := make(map[string]float64, len(methods))
		dominant := methods[0]
		strength := -1.0
		for _, method := range methods {
			share := 100 * float64(byMethod[method]) / float64(total)
			shares[method] = share
			// Strict > keeps the earliest method on ties.
			if share > strength {
				dominant = method
				strength = share
			}
		}

		code := StateCode(state)
		if code == "" {
			zap.L().Warn("dominance: no code for state, row kept without map placement",
				zap.String("state", state),
			)
		}

		rows = append(rows, model.StateDominance{
			State:          state,
			Code:           code,
			Shares:         shares,
			DominantMethod: dominant,
			Strength:       strength,
		})
	}

	return rows
}
