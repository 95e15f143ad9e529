package report

import (
	"strings"
	"testing"

	"github.com/lumastat/lumastat-cli/internal/catalog"
	"github.com/lumastat/lumastat-cli/internal/metrics"
)

func TestRenderFullReport(t *testing.T) {
	c, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	r := New(metrics.New(c), 5)

	var sb strings.Builder
	if err := r.Render(&sb); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"SUMMARY STATISTICS",
		"CATEGORY ANALYSIS",
		"PRICE ANALYSIS",
		"TOP PRODUCTS",
		"KEY BUSINESS INSIGHTS",
		"Total Products Analyzed: 40",
		"Average Price: $39.58",
		"Average Rating: 4.46 stars",
		"Total Reviews: 307,562",
		"La Mer Cream - $185.00",
		"The Ordinary Serum - $7.00",
		"Most Products: Face (17 products)",
		"Highest Rated: Eyes",
		"Mid-Range: 22 products (55.0%)",
		"Price-Rating Correlation: -0.366 (moderate)",
		"Huda Beauty Palette",
		"Most common category: Face",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderEmptyCatalogContinuesPastFailures(t *testing.T) {
	r := New(metrics.New(catalog.New(nil)), 5)

	var sb strings.Builder
	err := r.Render(&sb)
	if err == nil {
		t.Fatal("Render on empty catalog should report section errors")
	}
	out := sb.String()

	// Every failing section is named; later sections still rendered.
	for _, want := range []string{
		"✗ summary statistics failed",
		"✗ category analysis failed",
		"✗ price analysis failed",
		"✗ business insights failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing failure notice %q", want)
		}
	}
	// Top products is defined on an empty catalog: empty listings, no error.
	if !strings.Contains(out, "TOP PRODUCTS") {
		t.Error("top products section should still render")
	}
	if !strings.Contains(err.Error(), "catalog is empty") {
		t.Errorf("joined error = %v", err)
	}
}

func TestInsightsNoDataRendering(t *testing.T) {
	c := catalog.New([]catalog.Seed{
		{Name: "a", Category: "Face", Price: 35, Rating: 4.0, NumReviews: 5},
	})
	r := New(metrics.New(c), 5)

	var sb strings.Builder
	if err := r.Insights(&sb); err != nil {
		t.Fatalf("Insights: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "Expensive products (>$50): no data") {
		t.Errorf("missing explicit no-data line, got:\n%s", out)
	}
	if !strings.Contains(out, "Skincare average: no data") {
		t.Errorf("missing skincare no-data line, got:\n%s", out)
	}
}
