package search

import (
	"log/slog"

	"releasedeck/internal/catalog"
)

// Engine fronts the Ranker with the category pre-filter, forming the single
// entry point hosts call per keystroke (debouncing is the caller's policy).
type Engine struct {
	ranker *Ranker
}

// NewEngine constructs an Engine with the given weight table. A nil logger
// disables scoring diagnostics.
func NewEngine(weights Weights, logger *slog.Logger) *Engine {
	return &Engine{ranker: NewRanker(weights, logger)}
}

// Search filters records to the requested category (catalog.CategoryAll
// keeps everything), then ranks the survivors against query. The returned
// slice holds the same Record values, reordered and possibly reduced; with an
// empty or all-punctuation query the category-filtered records come back in
// their original order.
func (e *Engine) Search(records []catalog.Record, category, query string) []catalog.Record {
	return e.ranker.Rank(catalog.FilterByCategory(records, category), query)
}

// Search is a convenience for one-off calls using the default weight table
// and no logging.
func Search(records []catalog.Record, category, query string) []catalog.Record {
	return NewEngine(DefaultWeights(), nil).Search(records, category, query)
}
