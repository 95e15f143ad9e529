package metrics

import (
	"math"
	"testing"

	"github.com/lumastat/lumastat-cli/internal/catalog"
)

func TestEmptyCatalogErrors(t *testing.T) {
	e := New(catalog.New(nil))

	if _, err := e.Summary(); err == nil {
		t.Error("Summary on empty catalog: want error")
	} else if _, ok := err.(*EmptyCatalogError); !ok {
		t.Errorf("Summary error type = %T", err)
	}
	if _, err := e.Categories(); err == nil {
		t.Error("Categories on empty catalog: want error")
	}
	if _, err := e.Prices(); err == nil {
		t.Error("Prices on empty catalog: want error")
	}
	if _, err := e.Insights(); err == nil {
		t.Error("Insights on empty catalog: want error")
	}
	// TopProducts on an empty catalog is well defined: nothing to rank.
	got, err := e.TopProducts(CriterionRating, 5)
	if err != nil {
		t.Errorf("TopProducts on empty catalog: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("TopProducts on empty catalog returned %d rows", len(got))
	}
}

func TestCorrelationSentinelForConstantSeries(t *testing.T) {
	e := New(catalog.New([]catalog.Seed{
		{Name: "a", Category: "Face", Price: 10, Rating: 4.5},
		{Name: "b", Category: "Face", Price: 20, Rating: 4.5},
		{Name: "c", Category: "Face", Price: 30, Rating: 4.5},
	}))
	rep, err := e.Prices()
	if err != nil {
		t.Fatalf("Prices: %v", err)
	}
	if rep.CorrelationDefined {
		t.Error("correlation should be undefined for a constant rating series")
	}
	if rep.Verdict != VerdictUndefined {
		t.Errorf("verdict = %q, want %q", rep.Verdict, VerdictUndefined)
	}
	if rep.Correlation != 0 {
		t.Errorf("undefined correlation reported as %v, want 0", rep.Correlation)
	}
}

func TestEmptySubsetInsightsReportNoData(t *testing.T) {
	// Every product sits between $30 and $50, so both price-quality subsets
	// are empty, as is Skincare.
	e := New(catalog.New([]catalog.Seed{
		{Name: "a", Category: "Face", Price: 35, Rating: 4.5, NumReviews: 10},
		{Name: "b", Category: "Lips", Price: 45, Rating: 4.0, NumReviews: 20},
	}))
	rep, err := e.Insights()
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if rep.PriceQuality.Expensive.HasData() {
		t.Error("expensive subset should report no data")
	}
	if rep.PriceQuality.Affordable.HasData() {
		t.Error("affordable subset should report no data")
	}
	if rep.CategoryPricing.Skincare.HasData() {
		t.Error("skincare subset should report no data")
	}
	if !rep.CategoryPricing.Makeup.HasData() {
		t.Error("makeup subset should have data")
	}
	// Only the $35 row is in [$20, $40].
	if rep.SweetSpot.Rating.Count != 1 || !near(rep.SweetSpot.Percent, 50) {
		t.Errorf("sweet spot = %+v / %v%%", rep.SweetSpot.Rating, rep.SweetSpot.Percent)
	}
	// No rating reaches 4.5... except "a": cutoff is inclusive.
	if rep.TopPerformers.Price.Count != 1 || rep.TopPerformers.ModalCategory != catalog.CategoryFace {
		t.Errorf("top performers = %+v modal %v", rep.TopPerformers.Price, rep.TopPerformers.ModalCategory)
	}
}

func TestTopPerformersEmptySubset(t *testing.T) {
	e := New(catalog.New([]catalog.Seed{
		{Name: "a", Category: "Face", Price: 35, Rating: 3.0},
	}))
	rep, err := e.Insights()
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if rep.TopPerformers.Price.HasData() {
		t.Error("top performers should report no data")
	}
	if rep.TopPerformers.ModalCategory != "" {
		t.Errorf("modal category = %q, want empty", rep.TopPerformers.ModalCategory)
	}
}

func TestTopProductsRanksNaNValueScoresLast(t *testing.T) {
	e := New(catalog.New([]catalog.Seed{
		{Name: "freebie", Category: "Face", Price: 0, Rating: 5.0},
		{Name: "cheap", Category: "Face", Price: 10, Rating: 4.0},
		{Name: "dear", Category: "Face", Price: 100, Rating: 4.0},
	}))
	top, err := e.TopProducts(CriterionValueScore, 3)
	if err != nil {
		t.Fatalf("TopProducts: %v", err)
	}
	if top[0].Name != "cheap" || top[1].Name != "dear" {
		t.Errorf("order = %q, %q", top[0].Name, top[1].Name)
	}
	if top[2].Name != "freebie" {
		t.Errorf("NaN score should rank last, got %q", top[2].Name)
	}
	if !math.IsNaN(top[2].ValueScore) {
		t.Errorf("freebie score = %v, want NaN", top[2].ValueScore)
	}
}

func TestSummaryBestValueUndefinedWhenAllScoresNaN(t *testing.T) {
	e := New(catalog.New([]catalog.Seed{
		{Name: "a", Category: "Face", Price: 0, Rating: 4.0},
		{Name: "b", Category: "Face", Price: -1, Rating: 4.5},
	}))
	rep, err := e.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if rep.BestValueDefined {
		t.Error("BestValueDefined = true with only NaN scores")
	}
}

func TestHeatmapNormalization(t *testing.T) {
	e := loadFixture(t)
	h := e.CategoryHeatmap()
	if len(h.Categories) != 4 || len(h.Metrics) != 3 {
		t.Fatalf("grid = %d categories x %d metrics", len(h.Categories), len(h.Metrics))
	}
	for m, row := range h.Normalized {
		sawZero, sawOne := false, false
		for _, v := range row {
			if v < 0 || v > 1 {
				t.Errorf("normalized[%d] value %v outside [0, 1]", m, v)
			}
			if v == 0 {
				sawZero = true
			}
			if v == 1 {
				sawOne = true
			}
		}
		if !sawZero || !sawOne {
			t.Errorf("metric %q: min-max scaling should hit both 0 and 1", h.Metrics[m])
		}
	}
}

func TestHeatmapConstantRowNormalizesToMidpoint(t *testing.T) {
	e := New(catalog.New([]catalog.Seed{
		{Name: "a", Category: "Face", Price: 30, Rating: 4.5, NumReviews: 10},
		{Name: "b", Category: "Lips", Price: 30, Rating: 4.0, NumReviews: 20},
	}))
	h := e.CategoryHeatmap()
	// Metric row 0 is mean price: identical for both categories.
	for _, v := range h.Normalized[0] {
		if v != 0.5 {
			t.Errorf("constant row normalized to %v, want 0.5", v)
		}
	}
}

func TestChartSeriesAgainstFixture(t *testing.T) {
	e := loadFixture(t)

	means := e.CategoryMeanPrices()
	if len(means) != 4 {
		t.Fatalf("CategoryMeanPrices len = %d", len(means))
	}
	if means[0].Label != "Skincare" {
		t.Errorf("priciest category = %q, want Skincare", means[0].Label)
	}
	for i := 1; i < len(means); i++ {
		if means[i].Value > means[i-1].Value {
			t.Errorf("means not descending at %d", i)
		}
	}

	counts := e.PriceRangeCounts()
	wantOrder := []string{"Budget", "Mid-Range", "Premium", "Luxury"}
	for i, w := range wantOrder {
		if counts[i].Label != w {
			t.Errorf("bucket[%d] = %q, want %q", i, counts[i].Label, w)
		}
	}

	brands := e.TopBrandCounts(10)
	if len(brands) != 10 {
		t.Fatalf("TopBrandCounts len = %d", len(brands))
	}
	// Four brands have 3 products each; Fenty Beauty appears first in the
	// catalog so the stable sort keeps it on top.
	if brands[0].Label != "Fenty Beauty" || brands[0].Value != 3 {
		t.Errorf("top brand = %q (%v)", brands[0].Label, brands[0].Value)
	}

	scatter := e.RatingVsPrice()
	if len(scatter) != 4 {
		t.Fatalf("RatingVsPrice series = %d", len(scatter))
	}
	points := 0
	for _, s := range scatter {
		if len(s.Prices) != len(s.Ratings) {
			t.Errorf("series %v: %d prices vs %d ratings", s.Category, len(s.Prices), len(s.Ratings))
		}
		points += len(s.Prices)
	}
	if points != e.Catalog().Len() {
		t.Errorf("scatter points = %d, want %d", points, e.Catalog().Len())
	}
}
