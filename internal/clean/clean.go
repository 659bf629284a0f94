// Package clean repairs data-quality defects in raw sales records:
// sales method spelling variants, missing revenue, and tenure values
// above the business cap.
package clean

import (
	"strings"

	"go.uber.org/zap"

	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/config"
	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/model"
)

// Cleaner normalizes, imputes, and clamps sales records.
type Cleaner struct {
	aliases   map[string]string
	maxTenure int
}

// New builds a Cleaner from config. The alias map is copied so later
// config mutation cannot affect a running clean.
func New(cfg config.CleanConfig) *Cleaner {
	aliases := make(map[string]string, len(cfg.MethodAliases))
	for raw, canonical := range cfg.MethodAliases {
		aliases[raw] = canonical
	}
	return &Cleaner{
		aliases:   aliases,
		maxTenure: cfg.MaxTenureYears,
	}
}

// Clean returns a cleaned copy of sales. The input is not mutated and
// the output always has the same length: cleaning never drops rows.
//
// Two passes: the first normalizes every method label and accumulates
// per-method revenue sums, the second substitutes method means for
// missing revenue and clamps tenure.
func (c *Cleaner) Clean(sales []model.Sale) ([]model.Sale, error) {
	cleaned := make([]model.Sale, len(sales))

	sums := make(map[string]float64)
	counts := make(map[string]int)

	for i, s := range sales {
		canonical, ok := c.aliases[strings.TrimSpace(s.Method)]
		if !ok {
			return nil, &UnknownMethodError{Raw: s.Method, Row: i + 1}
		}

		cleaned[i] = s
		cleaned[i].Method = canonical
		if s.Revenue != nil {
			r := *s.Revenue
			cleaned[i].Revenue = &r
			sums[canonical] += r
			counts[canonical]++
		}
	}

	means := make(map[string]float64, len(counts))
	for method, n := range counts {
		means[method] = sums[method] / float64(n)
	}

	var clamped, imputed int
	for i := range cleaned {
		if cleaned[i].Revenue == nil {
			mean, ok := means[cleaned[i].Method]
			if !ok {
				return nil, &ImputationError{Method: cleaned[i].Method}
			}
			r := mean
			cleaned[i].Revenue = &r
			imputed++
		}
		if cleaned[i].YearsAsCustomer > c.maxTenure {
			cleaned[i].YearsAsCustomer = c.maxTenure
			clamped++
		}
	}

	if imputed > 0 || clamped > 0 {
		zap.L().Info("clean: repairs applied",
			zap.Int("revenue_imputed", imputed),
			zap.Int("tenure_clamped", clamped),
			zap.Int("rows", len(cleaned)),
		)
	}

	return cleaned, nil
}
