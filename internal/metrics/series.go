package metrics

import (
	"sort"

	"github.com/lumastat/lumastat-cli/internal/catalog"
)

// LabeledValue is one point of a labeled numeric series.
type LabeledValue struct {
	Label string
	Value float64
}

// ScatterSeries is one category's price/rating point cloud. Prices and
// Ratings are parallel slices in catalog order.
type ScatterSeries struct {
	Category catalog.Category
	Prices   []float64
	Ratings  []float64
}

// Heatmap is a metrics-by-categories grid. Raw[m][c] is the mean of metric
// m over category c; Normalized holds the same values min-max scaled per
// metric row into [0, 1]. A constant row normalizes to 0.5 so the scale
// stays defined.
type Heatmap struct {
	Categories []string
	Metrics    []string
	Raw        [][]float64
	Normalized [][]float64
}

// CategoryMeanPrices returns each category's mean price, sorted descending
// by value. The sort is stable, so equal means keep first-encounter order.
func (e *Engine) CategoryMeanPrices() []LabeledValue {
	out := e.categoryMeans(func(p catalog.Product) float64 { return p.Price })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// RatingVsPrice returns one price/rating point series per category, in
// first-encounter category order.
func (e *Engine) RatingVsPrice() []ScatterSeries {
	var out []ScatterSeries
	for _, cat := range e.cat.Categories() {
		s := ScatterSeries{Category: cat}
		for _, p := range e.cat.Products() {
			if p.Category == cat {
				s.Prices = append(s.Prices, p.Price)
				s.Ratings = append(s.Ratings, p.Rating)
			}
		}
		out = append(out, s)
	}
	return out
}

// PriceRangeCounts returns product counts per price tier in fixed semantic
// order, zero-count tiers included.
func (e *Engine) PriceRangeCounts() []LabeledValue {
	counts := make(map[catalog.PriceRange]int)
	for _, p := range e.cat.Products() {
		counts[p.PriceRange]++
	}
	out := make([]LabeledValue, 0, len(catalog.PriceRanges))
	for _, r := range catalog.PriceRanges {
		out = append(out, LabeledValue{Label: string(r), Value: float64(counts[r])})
	}
	return out
}

// TopBrandCounts returns the n brands with the most products, descending;
// equal counts keep brand first-encounter order.
func (e *Engine) TopBrandCounts(n int) []LabeledValue {
	counts := make(map[string]int)
	for _, p := range e.cat.Products() {
		counts[p.Brand]++
	}
	out := make([]LabeledValue, 0, len(counts))
	for _, b := range e.cat.Brands() {
		out = append(out, LabeledValue{Label: b, Value: float64(counts[b])})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// CategoryHeatmap builds the category performance grid over mean price,
// mean rating, and mean review count.
func (e *Engine) CategoryHeatmap() Heatmap {
	cats := e.cat.Categories()
	h := Heatmap{
		Metrics: []string{"Mean Price", "Mean Rating", "Mean Reviews"},
	}
	for _, c := range cats {
		h.Categories = append(h.Categories, string(c))
	}

	rows := [][]LabeledValue{
		e.categoryMeans(func(p catalog.Product) float64 { return p.Price }),
		e.categoryMeans(func(p catalog.Product) float64 { return p.Rating }),
		e.categoryMeans(func(p catalog.Product) float64 { return float64(p.NumReviews) }),
	}

	for _, row := range rows {
		raw := make([]float64, len(row))
		for i, lv := range row {
			raw[i] = lv.Value
		}
		h.Raw = append(h.Raw, raw)
		h.Normalized = append(h.Normalized, normalizeRow(raw))
	}
	return h
}

// categoryMeans computes the mean of a metric per category, in
// first-encounter category order.
func (e *Engine) categoryMeans(metric func(catalog.Product) float64) []LabeledValue {
	var out []LabeledValue
	for _, cat := range e.cat.Categories() {
		var sum float64
		var n int
		for _, p := range e.cat.Products() {
			if p.Category == cat {
				sum += metric(p)
				n++
			}
		}
		if n > 0 {
			out = append(out, LabeledValue{Label: string(cat), Value: sum / float64(n)})
		}
	}
	return out
}

func normalizeRow(raw []float64) []float64 {
	if len(raw) == 0 {
		return nil
	}
	lo, hi := minMax(raw)
	norm := make([]float64, len(raw))
	for i, v := range raw {
		if hi == lo {
			norm[i] = 0.5
			continue
		}
		norm[i] = (v - lo) / (hi - lo)
	}
	return norm
}
