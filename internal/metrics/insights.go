package metrics

import (
	"github.com/lumastat/lumastat-cli/internal/catalog"
)

// Price thresholds used by the insight battery.
const (
	expensivePriceMin  = 50.0 // "premium" comparison: price strictly above
	affordablePriceMax = 30.0 // "affordable" comparison: price at or below
	sweetSpotMin       = 20.0 // optimal range, inclusive
	sweetSpotMax       = 40.0
	topRatingMin       = 4.5 // high-rated cutoff, inclusive
)

// SubsetMean is the mean of a metric over a filtered subset. When Count is
// zero the subset matched nothing and Mean is meaningless: renderers must
// report "no data" instead of using it.
type SubsetMean struct {
	Count int
	Mean  float64
}

// HasData reports whether the subset matched any products.
func (s SubsetMean) HasData() bool { return s.Count > 0 }

// PriceQualityInsight compares mean ratings of expensive (> $50) and
// affordable (<= $30) products.
type PriceQualityInsight struct {
	Expensive  SubsetMean // mean rating
	Affordable SubsetMean // mean rating
}

// CategoryPricingInsight compares mean prices of Skincare against the
// makeup categories (Face, Eyes, Lips).
type CategoryPricingInsight struct {
	Skincare SubsetMean // mean price
	Makeup   SubsetMean // mean price
}

// SweetSpotInsight covers products priced in [$20, $40] inclusive.
type SweetSpotInsight struct {
	Rating  SubsetMean // mean rating; Count is the subset size
	Percent float64    // share of the whole catalog
}

// TopPerformersInsight covers products rated at or above 4.5 stars.
type TopPerformersInsight struct {
	Price SubsetMean // mean price; Count is the subset size
	// ModalCategory is the most common category in the subset; ties resolve
	// to the category encountered first in the catalog. Empty when the
	// subset is empty.
	ModalCategory catalog.Category
}

// InsightReport is the fixed battery of four comparative statistics.
type InsightReport struct {
	PriceQuality    PriceQualityInsight
	CategoryPricing CategoryPricingInsight
	SweetSpot       SweetSpotInsight
	TopPerformers   TopPerformersInsight
}

// Insights computes the four-part insight battery. Each filtered subset may
// be empty; empty subsets carry Count 0 rather than causing an undefined
// mean.
func (e *Engine) Insights() (*InsightReport, error) {
	if e.cat.Len() == 0 {
		return nil, &EmptyCatalogError{Op: "insights"}
	}

	rep := &InsightReport{}

	rep.PriceQuality.Expensive = subsetMeanRating(e.cat, func(p catalog.Product) bool {
		return p.Price > expensivePriceMin
	})
	rep.PriceQuality.Affordable = subsetMeanRating(e.cat, func(p catalog.Product) bool {
		return p.Price <= affordablePriceMax
	})

	rep.CategoryPricing.Skincare = subsetMeanPrice(e.cat, func(p catalog.Product) bool {
		return p.Category == catalog.CategorySkincare
	})
	rep.CategoryPricing.Makeup = subsetMeanPrice(e.cat, func(p catalog.Product) bool {
		switch p.Category {
		case catalog.CategoryFace, catalog.CategoryEyes, catalog.CategoryLips:
			return true
		}
		return false
	})

	rep.SweetSpot.Rating = subsetMeanRating(e.cat, func(p catalog.Product) bool {
		return p.Price >= sweetSpotMin && p.Price <= sweetSpotMax
	})
	rep.SweetSpot.Percent = float64(rep.SweetSpot.Rating.Count) / float64(e.cat.Len()) * 100

	highRated := e.cat.Select(func(p catalog.Product) bool { return p.Rating >= topRatingMin })
	rep.TopPerformers.Price = meanOf(highRated, func(p catalog.Product) float64 { return p.Price })
	rep.TopPerformers.ModalCategory = modalCategory(e.cat, highRated)

	return rep, nil
}

func subsetMeanRating(c *catalog.Catalog, keep func(catalog.Product) bool) SubsetMean {
	return meanOf(c.Select(keep), func(p catalog.Product) float64 { return p.Rating })
}

func subsetMeanPrice(c *catalog.Catalog, keep func(catalog.Product) bool) SubsetMean {
	return meanOf(c.Select(keep), func(p catalog.Product) float64 { return p.Price })
}

func meanOf(ps []catalog.Product, metric func(catalog.Product) float64) SubsetMean {
	if len(ps) == 0 {
		return SubsetMean{}
	}
	var sum float64
	for _, p := range ps {
		sum += metric(p)
	}
	return SubsetMean{Count: len(ps), Mean: sum / float64(len(ps))}
}

// modalCategory finds the most common category among members. Iterating the
// catalog's first-encounter category order makes the tie-break
// deterministic.
func modalCategory(c *catalog.Catalog, members []catalog.Product) catalog.Category {
	if len(members) == 0 {
		return ""
	}
	counts := make(map[catalog.Category]int)
	for _, p := range members {
		counts[p.Category]++
	}
	var best catalog.Category
	bestN := 0
	for _, cat := range c.Categories() {
		if counts[cat] > bestN {
			best = cat
			bestN = counts[cat]
		}
	}
	return best
}
