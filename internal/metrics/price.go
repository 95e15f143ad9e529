package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/lumastat/lumastat-cli/internal/catalog"
)

// Correlation strength thresholds on |r|. Below weakCorrelationMax the
// price-rating relationship is reported as "weak", below
// moderateCorrelationMax as "moderate", otherwise "strong".
const (
	weakCorrelationMax     = 0.30
	moderateCorrelationMax = 0.70
)

// Correlation verdicts.
const (
	VerdictWeak      = "weak"
	VerdictModerate  = "moderate"
	VerdictStrong    = "strong"
	VerdictUndefined = "undefined"
)

// BucketStats counts one price tier.
type BucketStats struct {
	Range   catalog.PriceRange
	Count   int
	Percent float64
}

// PriceReport describes the price distribution and the price-rating
// relationship.
type PriceReport struct {
	// Buckets are emitted in fixed semantic order (Budget, Mid-Range,
	// Premium, Luxury) regardless of the data; zero-count tiers included.
	Buckets []BucketStats
	// Unbucketed counts rows whose price falls outside every tier.
	Unbucketed int

	// Correlation is the Pearson coefficient between price and rating.
	// When either series is constant the coefficient is undefined:
	// CorrelationDefined is false, Correlation is zero, and the verdict is
	// VerdictUndefined.
	Correlation        float64
	CorrelationDefined bool
	Verdict            string
}

// Prices computes the bucket distribution and the price-rating correlation.
func (e *Engine) Prices() (*PriceReport, error) {
	n := e.cat.Len()
	if n == 0 {
		return nil, &EmptyCatalogError{Op: "price analysis"}
	}

	counts := make(map[catalog.PriceRange]int)
	for _, p := range e.cat.Products() {
		counts[p.PriceRange]++
	}

	rep := &PriceReport{Unbucketed: counts[catalog.RangeUnbucketed]}
	for _, r := range catalog.PriceRanges {
		rep.Buckets = append(rep.Buckets, BucketStats{
			Range:   r,
			Count:   counts[r],
			Percent: float64(counts[r]) / float64(n) * 100,
		})
	}

	r := stat.Correlation(e.prices(), e.ratings(), nil)
	if math.IsNaN(r) {
		rep.Verdict = VerdictUndefined
		return rep, nil
	}
	rep.Correlation = r
	rep.CorrelationDefined = true
	switch abs := math.Abs(r); {
	case abs < weakCorrelationMax:
		rep.Verdict = VerdictWeak
	case abs < moderateCorrelationMax:
		rep.Verdict = VerdictModerate
	default:
		rep.Verdict = VerdictStrong
	}
	return rep, nil
}
