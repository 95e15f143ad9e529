package metrics

import (
	"github.com/lumastat/lumastat-cli/internal/catalog"
)

// DistStats are the descriptive statistics of one numeric series.
type DistStats struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// SummaryReport holds the catalog-wide summary statistics.
type SummaryReport struct {
	Count        int
	Price        DistStats
	Rating       DistStats
	TotalReviews int
	MeanReviews  float64

	// MostExpensive is the highest-priced product; ties resolve to the first
	// product encountered in catalog order.
	MostExpensive catalog.Product
	// BestValue is the product with the highest value score, same tie-break.
	// Products with an undefined (NaN) score never win.
	BestValue catalog.Product
	// BestValueDefined is false when no product has a defined value score.
	BestValueDefined bool
}

// Summary computes the catalog-wide summary statistics.
func (e *Engine) Summary() (*SummaryReport, error) {
	n := e.cat.Len()
	if n == 0 {
		return nil, &EmptyCatalogError{Op: "summary statistics"}
	}

	prices := e.prices()
	ratings := e.ratings()

	rep := &SummaryReport{Count: n}
	rep.Price.Mean = mean(prices)
	rep.Price.Median = median(prices)
	rep.Price.Min, rep.Price.Max = minMax(prices)
	rep.Rating.Mean = mean(ratings)
	rep.Rating.Median = median(ratings)
	rep.Rating.Min, rep.Rating.Max = minMax(ratings)

	for _, p := range e.cat.Products() {
		rep.TotalReviews += p.NumReviews
	}
	rep.MeanReviews = float64(rep.TotalReviews) / float64(n)

	rep.MostExpensive = e.cat.At(0)
	for _, p := range e.cat.Products()[1:] {
		if p.Price > rep.MostExpensive.Price {
			rep.MostExpensive = p
		}
	}

	for _, p := range e.cat.Products() {
		if !p.HasValueScore() {
			continue
		}
		if !rep.BestValueDefined || p.ValueScore > rep.BestValue.ValueScore {
			rep.BestValue = p
			rep.BestValueDefined = true
		}
	}

	return rep, nil
}
