package metrics

import (
	"math"
	"sort"

	"github.com/lumastat/lumastat-cli/internal/catalog"
)

// Ranking criteria accepted by TopProducts.
const (
	CriterionRating     = "rating"
	CriterionReviews    = "num_reviews"
	CriterionValueScore = "value_score"
)

// Criteria lists the valid TopProducts criteria.
var Criteria = []string{CriterionRating, CriterionReviews, CriterionValueScore}

// TopProducts returns the top n products by the given criterion, descending.
// The sort is stable, so ties keep catalog insertion order; NaN value scores
// rank last. If n exceeds the catalog size all products are returned.
func (e *Engine) TopProducts(criterion string, n int) ([]catalog.Product, error) {
	var key func(catalog.Product) float64
	switch criterion {
	case CriterionRating:
		key = func(p catalog.Product) float64 { return p.Rating }
	case CriterionReviews:
		key = func(p catalog.Product) float64 { return float64(p.NumReviews) }
	case CriterionValueScore:
		key = func(p catalog.Product) float64 { return p.ValueScore }
	default:
		return nil, &InvalidCriterionError{Criterion: criterion}
	}

	ranked := make([]catalog.Product, e.cat.Len())
	copy(ranked, e.cat.Products())
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := key(ranked[i]), key(ranked[j])
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a > b
	})

	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n], nil
}
