// Package pipeline composes the load, clean, aggregate, and render
// stages into one run over an in-memory table.
package pipeline

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/clean"
	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/config"
	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/dominance"
	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/ingest"
	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/model"
	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/render"
)

// Aggregates runs load, clean, and aggregate, returning one row per
// distinct state. Any fatal cleaning or loading error aborts before
// aggregation; nothing is written to disk.
func Aggregates(cfg *config.Config) ([]model.StateDominance, error) {
	sales, err := ingest.Load(cfg.Input)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: load")
	}
	zap.L().Info("loaded customer records",
		zap.Int("records", len(sales)),
		zap.String("path", cfg.Input.Path),
	)

	cleaned, err := clean.New(cfg.Clean).Clean(sales)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: clean")
	}

	rows := dominance.Aggregate(cleaned, cfg.Clean.Methods)
	zap.L().Info("calculated dominance metrics", zap.Int("states", len(rows)))

	return rows, nil
}

// Run executes the full pipeline and writes the choropleth artifact.
// It returns the aggregate rows backing the artifact.
func Run(cfg *config.Config) ([]model.StateDominance, error) {
	rows, err := Aggregates(cfg)
	if err != nil {
		return nil, err
	}

	if err := render.WriteChoropleth(rows, cfg.Clean.Methods, cfg.Output.Path); err != nil {
		return nil, eris.Wrap(err, "pipeline: render")
	}
	zap.L().Info("interactive choropleth map saved", zap.String("path", cfg.Output.Path))

	return rows, nil
}
