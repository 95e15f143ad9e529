package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// mean wraps the gonum estimator; callers guarantee len(xs) > 0.
func mean(xs []float64) float64 {
	return stat.Mean(xs, nil)
}

// median returns the 0.5 quantile with linear interpolation, so an
// even-length series yields the midpoint of the two central values.
// gonum's empirical quantile picks a single order statistic instead, which
// would shift the median of an even-length series.
func median(xs []float64) float64 {
	cp := make([]float64, len(xs))
	copy(cp, xs)
	sort.Float64s(cp)
	return quantile(cp, 0.5)
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// minMax returns the extremes of a non-empty series.
func minMax(xs []float64) (lo, hi float64) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}
