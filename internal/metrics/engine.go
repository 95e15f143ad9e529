// Package metrics computes descriptive statistics, grouped aggregates, and
// business insights over an immutable product catalog. Every operation is a
// pure function of the catalog: no mutation, no hidden state, deterministic
// output for the same input. Report structures are plain data; formatting
// belongs to the report and chart renderers.
package metrics

import "github.com/lumastat/lumastat-cli/internal/catalog"

// Engine exposes query and aggregation operations over one catalog.
type Engine struct {
	cat *catalog.Catalog
}

// New wraps a catalog. The engine holds a reference, not a copy; the catalog
// must not change for the lifetime of the engine (catalogs are immutable
// after construction, so this holds by design of the catalog package).
func New(c *catalog.Catalog) *Engine {
	return &Engine{cat: c}
}

// Catalog returns the underlying catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

func (e *Engine) prices() []float64 {
	out := make([]float64, e.cat.Len())
	for i, p := range e.cat.Products() {
		out[i] = p.Price
	}
	return out
}

func (e *Engine) ratings() []float64 {
	out := make([]float64, e.cat.Len())
	for i, p := range e.cat.Products() {
		out[i] = p.Rating
	}
	return out
}
