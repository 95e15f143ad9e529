// Package report turns engine output into the human-readable text report.
// It owns all formatting; the metrics engine only hands over plain data.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lumastat/lumastat-cli/internal/catalog"
	"github.com/lumastat/lumastat-cli/internal/metrics"
)

const bannerWidth = 70

// Renderer writes report sections for one engine.
type Renderer struct {
	engine *metrics.Engine
	topN   int
}

// New creates a renderer. topN controls the length of the top-product
// listings; values below 1 fall back to 5.
func New(e *metrics.Engine, topN int) *Renderer {
	if topN < 1 {
		topN = 5
	}
	return &Renderer{engine: e, topN: topN}
}

// Render writes the complete report: header, all five sections. A failing
// section is reported in place and the remaining sections still render;
// the joined section errors are returned so callers can exit non-zero.
func (r *Renderer) Render(w io.Writer) error {
	fmt.Fprintln(w, banner("="))
	fmt.Fprintln(w, "BEAUTY PRODUCT CATALOG ANALYSIS")
	fmt.Fprintln(w, "Pricing, ratings, and consumer preferences")
	fmt.Fprintf(w, "Run %s at %s\n", uuid.New(), time.Now().Format(time.RFC1123))
	fmt.Fprintln(w, banner("="))

	sections := []struct {
		name string
		fn   func(io.Writer) error
	}{
		{"summary statistics", r.Summary},
		{"category analysis", r.Categories},
		{"price analysis", r.Prices},
		{"top products", r.Top},
		{"business insights", r.Insights},
	}

	var errs []error
	for _, s := range sections {
		if err := s.fn(w); err != nil {
			fmt.Fprintf(w, "\n✗ %s failed: %v\n", s.name, err)
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
		}
	}
	return errors.Join(errs...)
}

// Summary writes the catalog-wide summary statistics section.
func (r *Renderer) Summary(w io.Writer) error {
	rep, err := r.engine.Summary()
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("\n" + banner("=") + "\n")
	b.WriteString("SUMMARY STATISTICS\n")
	b.WriteString(banner("=") + "\n")
	fmt.Fprintf(&b, "\nTotal Products Analyzed: %d\n", rep.Count)
	fmt.Fprintf(&b, "\nPrice Statistics:\n")
	fmt.Fprintf(&b, "  Average Price: $%.2f\n", rep.Price.Mean)
	fmt.Fprintf(&b, "  Median Price: $%.2f\n", rep.Price.Median)
	fmt.Fprintf(&b, "  Price Range: $%.2f - $%.2f\n", rep.Price.Min, rep.Price.Max)
	fmt.Fprintf(&b, "\nRating Statistics:\n")
	fmt.Fprintf(&b, "  Average Rating: %.2f stars\n", rep.Rating.Mean)
	fmt.Fprintf(&b, "  Median Rating: %.2f stars\n", rep.Rating.Median)
	fmt.Fprintf(&b, "  Rating Range: %.2f - %.2f stars\n", rep.Rating.Min, rep.Rating.Max)
	fmt.Fprintf(&b, "\nReview Statistics:\n")
	fmt.Fprintf(&b, "  Total Reviews: %s\n", groupDigits(rep.TotalReviews))
	fmt.Fprintf(&b, "  Average Reviews per Product: %.0f\n", rep.MeanReviews)
	fmt.Fprintf(&b, "\nMost Expensive Product:\n")
	fmt.Fprintf(&b, "  %s - $%.2f\n", rep.MostExpensive.Name, rep.MostExpensive.Price)
	if rep.BestValueDefined {
		fmt.Fprintf(&b, "\nBest Value Product:\n")
		fmt.Fprintf(&b, "  %s - $%.2f (%.1f stars)\n", rep.BestValue.Name, rep.BestValue.Price, rep.BestValue.Rating)
	} else {
		b.WriteString("\nBest Value Product: no data (no product has a defined value score)\n")
	}

	_, err = io.WriteString(w, b.String())
	return err
}

// Categories writes the per-category aggregate section.
func (r *Renderer) Categories(w io.Writer) error {
	rep, err := r.engine.Categories()
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("\n" + banner("-") + "\n")
	b.WriteString("CATEGORY ANALYSIS\n")
	b.WriteString(banner("-") + "\n\n")
	fmt.Fprintf(&b, "%-12s %6s %12s %10s %10s %12s %12s\n",
		"Category", "Count", "Avg Price", "Min", "Max", "Avg Rating", "Reviews")
	for _, cs := range rep.Categories {
		fmt.Fprintf(&b, "%-12s %6d %12s %10s %10s %12.2f %12s\n",
			cs.Category, cs.Count,
			fmt.Sprintf("$%.2f", cs.MeanPrice),
			fmt.Sprintf("$%.2f", cs.MinPrice),
			fmt.Sprintf("$%.2f", cs.MaxPrice),
			cs.MeanRating, groupDigits(cs.TotalReviews))
	}
	fmt.Fprintf(&b, "\nMost Products: %s (%d products)\n", rep.MostProducts.Category, rep.MostProducts.Count)
	fmt.Fprintf(&b, "Highest Rated: %s (%.2f stars)\n", rep.HighestRated.Category, rep.HighestRated.MeanRating)

	_, err = io.WriteString(w, b.String())
	return err
}

// Prices writes the price distribution and correlation section.
func (r *Renderer) Prices(w io.Writer) error {
	rep, err := r.engine.Prices()
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("\n" + banner("-") + "\n")
	b.WriteString("PRICE ANALYSIS\n")
	b.WriteString(banner("-") + "\n")
	b.WriteString("\nPrice Range Distribution:\n")
	for _, bucket := range rep.Buckets {
		fmt.Fprintf(&b, "  %s: %d products (%.1f%%)\n", bucket.Range, bucket.Count, bucket.Percent)
	}
	if rep.Unbucketed > 0 {
		fmt.Fprintf(&b, "  Outside all ranges: %d products\n", rep.Unbucketed)
	}
	if rep.CorrelationDefined {
		fmt.Fprintf(&b, "\nPrice-Rating Correlation: %.3f (%s)\n", rep.Correlation, rep.Verdict)
		if rep.Verdict == metrics.VerdictWeak {
			b.WriteString("  Price does not strongly predict rating\n")
		}
	} else {
		b.WriteString("\nPrice-Rating Correlation: undefined (constant series)\n")
	}

	_, err = io.WriteString(w, b.String())
	return err
}

// Top writes the top-product listings for all three criteria.
func (r *Renderer) Top(w io.Writer) error {
	var b strings.Builder
	b.WriteString("\n" + banner("-") + "\n")
	b.WriteString("TOP PRODUCTS\n")
	b.WriteString(banner("-") + "\n")

	listings := []struct {
		title     string
		criterion string
		line      func(p catalog.Product) string
	}{
		{"Highest Rated", metrics.CriterionRating, func(p catalog.Product) string {
			return fmt.Sprintf("%s (%s) - %.1f stars ($%.2f)", p.Name, p.Brand, p.Rating, p.Price)
		}},
		{"Most Reviewed", metrics.CriterionReviews, func(p catalog.Product) string {
			return fmt.Sprintf("%s (%s) - %s reviews (%.1f stars)", p.Name, p.Brand, groupDigits(p.NumReviews), p.Rating)
		}},
		{"Best Value", metrics.CriterionValueScore, func(p catalog.Product) string {
			if math.IsNaN(p.ValueScore) {
				return fmt.Sprintf("%s - $%.2f (value score undefined)", p.Name, p.Price)
			}
			return fmt.Sprintf("%s - $%.2f (%.1f stars, score %.2f)", p.Name, p.Price, p.Rating, p.ValueScore)
		}},
	}

	for _, l := range listings {
		top, err := r.engine.TopProducts(l.criterion, r.topN)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "\nTop %d %s Products:\n", len(top), l.title)
		for _, p := range top {
			fmt.Fprintf(&b, "  %s\n", l.line(p))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Insights writes the business insight battery.
func (r *Renderer) Insights(w io.Writer) error {
	rep, err := r.engine.Insights()
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("\n" + banner("=") + "\n")
	b.WriteString("KEY BUSINESS INSIGHTS\n")
	b.WriteString(banner("=") + "\n")

	b.WriteString("\n1. PRICE-QUALITY RELATIONSHIP:\n")
	writeSubset(&b, "   Expensive products (>$50): ", rep.PriceQuality.Expensive, "%.2f stars average rating")
	writeSubset(&b, "   Affordable products (<=$30): ", rep.PriceQuality.Affordable, "%.2f stars average rating")
	if rep.PriceQuality.Expensive.HasData() && rep.PriceQuality.Affordable.HasData() &&
		rep.PriceQuality.Expensive.Mean <= rep.PriceQuality.Affordable.Mean {
		b.WriteString("   Higher price does NOT buy higher ratings\n")
	}

	b.WriteString("\n2. CATEGORY PRICING:\n")
	writeSubset(&b, "   Skincare average: ", rep.CategoryPricing.Skincare, "$%.2f")
	writeSubset(&b, "   Makeup average: ", rep.CategoryPricing.Makeup, "$%.2f")
	if rep.CategoryPricing.Skincare.HasData() && rep.CategoryPricing.Makeup.HasData() {
		leader := "Makeup"
		if rep.CategoryPricing.Skincare.Mean > rep.CategoryPricing.Makeup.Mean {
			leader = "Skincare"
		}
		fmt.Fprintf(&b, "   %s products command higher prices\n", leader)
	}

	b.WriteString("\n3. OPTIMAL PRICE RANGE ($20-$40):\n")
	if rep.SweetSpot.Rating.HasData() {
		fmt.Fprintf(&b, "   Products in range: %d (%.1f%%)\n", rep.SweetSpot.Rating.Count, rep.SweetSpot.Percent)
		fmt.Fprintf(&b, "   Average rating: %.2f stars\n", rep.SweetSpot.Rating.Mean)
	} else {
		b.WriteString("   no data\n")
	}

	b.WriteString("\n4. HIGH-RATED PRODUCTS (>=4.5 stars):\n")
	if rep.TopPerformers.Price.HasData() {
		fmt.Fprintf(&b, "   Count: %d products\n", rep.TopPerformers.Price.Count)
		fmt.Fprintf(&b, "   Average price: $%.2f\n", rep.TopPerformers.Price.Mean)
		fmt.Fprintf(&b, "   Most common category: %s\n", rep.TopPerformers.ModalCategory)
	} else {
		b.WriteString("   no data\n")
	}

	_, err = io.WriteString(w, b.String())
	return err
}

func writeSubset(b *strings.Builder, prefix string, s metrics.SubsetMean, format string) {
	b.WriteString(prefix)
	if s.HasData() {
		fmt.Fprintf(b, format+"\n", s.Mean)
	} else {
		b.WriteString("no data\n")
	}
}

func banner(glyph string) string {
	return strings.Repeat(glyph, bannerWidth)
}

// groupDigits renders an integer with comma separators.
func groupDigits(n int) string {
	if n < 0 {
		return "-" + groupDigits(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", groupDigits(n/1000), n%1000)
}
