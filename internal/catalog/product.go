package catalog

import (
	"fmt"
	"math"
)

// Category is a product category label. The known values below cover the
// current dataset, but the set is not closed — new labels pass through
// grouping untouched.
type Category string

const (
	CategoryFace     Category = "Face"
	CategoryLips     Category = "Lips"
	CategoryEyes     Category = "Eyes"
	CategorySkincare Category = "Skincare"
)

// PriceRange is one of four fixed price tiers, or RangeUnbucketed when the
// price falls outside every tier.
type PriceRange string

const (
	RangeBudget     PriceRange = "Budget"
	RangeMidRange   PriceRange = "Mid-Range"
	RangePremium    PriceRange = "Premium"
	RangeLuxury     PriceRange = "Luxury"
	RangeUnbucketed PriceRange = "Unbucketed"
)

// PriceRanges lists the bucketed tiers in their fixed semantic order
// (cheapest first). Reports iterate this slice so bucket ordering never
// depends on the data.
var PriceRanges = []PriceRange{RangeBudget, RangeMidRange, RangePremium, RangeLuxury}

// Bucket edges. Intervals are half-open and right-inclusive, (lo, hi]:
// a price of exactly 20 is Budget, exactly 40 is Mid-Range, exactly 70 is
// Premium. Matches the original right-inclusive binning.
const (
	budgetMax   = 20.0
	midRangeMax = 40.0
	premiumMax  = 70.0
	luxuryMax   = 200.0
)

// BucketFor maps a price to its tier. Prices of zero or below, and prices
// above the Luxury ceiling, return RangeUnbucketed rather than the nearest
// tier.
func BucketFor(price float64) PriceRange {
	switch {
	case price <= 0:
		return RangeUnbucketed
	case price <= budgetMax:
		return RangeBudget
	case price <= midRangeMax:
		return RangeMidRange
	case price <= premiumMax:
		return RangePremium
	case price <= luxuryMax:
		return RangeLuxury
	default:
		return RangeUnbucketed
	}
}

// ZeroPriceError reports a product whose price makes the value score
// undefined. It is surfaced as a construction warning, never as a runtime
// fault: the derived fields degrade to NaN / RangeUnbucketed.
type ZeroPriceError struct {
	Name  string
	Price float64
}

func (e *ZeroPriceError) Error() string {
	return fmt.Sprintf("product %q has non-positive price %.2f: value score undefined", e.Name, e.Price)
}

// Seed is one row of the catalog source data before derived fields exist.
type Seed struct {
	Name       string  `yaml:"name"`
	Brand      string  `yaml:"brand"`
	Category   string  `yaml:"category"`
	Price      float64 `yaml:"price"`
	Rating     float64 `yaml:"rating"`
	NumReviews int     `yaml:"num_reviews"`
}

// Product is a single catalog row. ValueScore and PriceRange are derived at
// construction and immutable afterwards.
type Product struct {
	Name       string
	Brand      string
	Category   Category
	Price      float64
	Rating     float64
	NumReviews int

	// ValueScore is Rating / (Price / 10), a quality-per-cost heuristic.
	// NaN when the price is not positive.
	ValueScore float64
	PriceRange PriceRange
}

// HasValueScore reports whether the value score is defined for this product.
func (p Product) HasValueScore() bool {
	return !math.IsNaN(p.ValueScore)
}

// newProduct derives the computed fields for a seed row. The returned error
// is a *ZeroPriceError warning when the price is non-positive; the product
// is still usable, with sentinel derived fields.
func newProduct(s Seed) (Product, error) {
	p := Product{
		Name:       s.Name,
		Brand:      s.Brand,
		Category:   Category(s.Category),
		Price:      s.Price,
		Rating:     s.Rating,
		NumReviews: s.NumReviews,
		PriceRange: BucketFor(s.Price),
	}
	if s.Price <= 0 {
		p.ValueScore = math.NaN()
		return p, &ZeroPriceError{Name: s.Name, Price: s.Price}
	}
	p.ValueScore = s.Rating / (s.Price / 10)
	return p, nil
}
