package metrics

import (
	"github.com/lumastat/lumastat-cli/internal/catalog"
)

// CategoryStats aggregates one category's products.
type CategoryStats struct {
	Category     catalog.Category
	Count        int
	MeanPrice    float64
	MinPrice     float64
	MaxPrice     float64
	MeanRating   float64
	TotalReviews int
}

// CategoryReport groups the catalog by category. Categories appear in
// first-encounter order, not alphabetical, so output is deterministic and
// matches insertion-order semantics.
type CategoryReport struct {
	Categories []CategoryStats

	// MostProducts is the category with the largest count; ties resolve to
	// the category encountered first in the catalog.
	MostProducts CategoryStats
	// HighestRated is the category with the highest mean rating, same
	// tie-break rule.
	HighestRated CategoryStats
}

// Categories computes per-category aggregates over the whole catalog.
func (e *Engine) Categories() (*CategoryReport, error) {
	if e.cat.Len() == 0 {
		return nil, &EmptyCatalogError{Op: "category analysis"}
	}

	rep := &CategoryReport{}
	for _, cat := range e.cat.Categories() {
		members := e.cat.Select(func(p catalog.Product) bool { return p.Category == cat })
		prices := make([]float64, len(members))
		ratings := make([]float64, len(members))
		reviews := 0
		for i, p := range members {
			prices[i] = p.Price
			ratings[i] = p.Rating
			reviews += p.NumReviews
		}
		cs := CategoryStats{
			Category:     cat,
			Count:        len(members),
			MeanPrice:    mean(prices),
			MeanRating:   mean(ratings),
			TotalReviews: reviews,
		}
		cs.MinPrice, cs.MaxPrice = minMax(prices)
		rep.Categories = append(rep.Categories, cs)
	}

	// Strict > keeps the first-encounter winner on ties.
	rep.MostProducts = rep.Categories[0]
	rep.HighestRated = rep.Categories[0]
	for _, cs := range rep.Categories[1:] {
		if cs.Count > rep.MostProducts.Count {
			rep.MostProducts = cs
		}
		if cs.MeanRating > rep.HighestRated.MeanRating {
			rep.HighestRated = cs
		}
	}

	return rep, nil
}
