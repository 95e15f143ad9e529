package catalog

import (
	"math"
	"testing"
)

func TestBucketBoundaries(t *testing.T) {
	cases := []struct {
		price float64
		want  PriceRange
	}{
		{0, RangeUnbucketed},
		{-5, RangeUnbucketed},
		{0.01, RangeBudget},
		{19.99, RangeBudget},
		{20, RangeBudget}, // right-inclusive: boundary belongs to the lower tier
		{20.01, RangeMidRange},
		{40, RangeMidRange},
		{40.01, RangePremium},
		{70, RangePremium},
		{70.01, RangeLuxury},
		{200, RangeLuxury},
		{200.01, RangeUnbucketed},
		{1000, RangeUnbucketed},
	}
	for _, c := range cases {
		if got := BucketFor(c.price); got != c.want {
			t.Errorf("BucketFor(%v) = %v, want %v", c.price, got, c.want)
		}
	}
}

func TestValueScoreDerivation(t *testing.T) {
	c := New([]Seed{
		{Name: "Serum", Brand: "A", Category: "Skincare", Price: 7, Rating: 4.4, NumReviews: 100},
	})
	p := c.At(0)
	want := 4.4 / 0.7
	if math.Abs(p.ValueScore-want) > 1e-9 {
		t.Errorf("ValueScore = %v, want %v", p.ValueScore, want)
	}
	if !p.HasValueScore() {
		t.Error("HasValueScore() = false for positive price")
	}
}

func TestZeroPriceDegradesToSentinels(t *testing.T) {
	c := New([]Seed{
		{Name: "Free Sample", Brand: "A", Category: "Face", Price: 0, Rating: 4.0},
		{Name: "Normal", Brand: "B", Category: "Face", Price: 25, Rating: 4.2},
	})
	p := c.At(0)
	if !math.IsNaN(p.ValueScore) {
		t.Errorf("ValueScore = %v, want NaN for zero price", p.ValueScore)
	}
	if p.PriceRange != RangeUnbucketed {
		t.Errorf("PriceRange = %v, want %v", p.PriceRange, RangeUnbucketed)
	}
	warns := c.Warnings()
	if len(warns) != 1 {
		t.Fatalf("Warnings() len = %d, want 1", len(warns))
	}
	zp, ok := warns[0].(*ZeroPriceError)
	if !ok {
		t.Fatalf("warning type = %T, want *ZeroPriceError", warns[0])
	}
	if zp.Name != "Free Sample" {
		t.Errorf("warning names %q, want %q", zp.Name, "Free Sample")
	}
}

func TestCategoriesFirstEncounterOrder(t *testing.T) {
	c := New([]Seed{
		{Name: "a", Category: "Face", Price: 10, Rating: 4},
		{Name: "b", Category: "Lips", Price: 10, Rating: 4},
		{Name: "c", Category: "Face", Price: 10, Rating: 4},
		{Name: "d", Category: "Eyes", Price: 10, Rating: 4},
		{Name: "e", Category: "Skincare", Price: 10, Rating: 4},
		{Name: "f", Category: "Lips", Price: 10, Rating: 4},
	})
	got := c.Categories()
	want := []Category{"Face", "Lips", "Eyes", "Skincare"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLoadEmbedded(t *testing.T) {
	c, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	if c.Len() != 40 {
		t.Fatalf("Len() = %d, want 40", c.Len())
	}
	if len(c.Warnings()) != 0 {
		t.Errorf("Warnings() = %v, want none", c.Warnings())
	}
	// Insertion order is preserved: first and last rows of the table.
	if got := c.At(0).Name; got != "Fenty Beauty Foundation" {
		t.Errorf("first product = %q", got)
	}
	if got := c.At(39).Name; got != "NARS Lipstick" {
		t.Errorf("last product = %q", got)
	}
	cats := c.Categories()
	if len(cats) != 4 || cats[0] != CategoryFace || cats[3] != CategorySkincare {
		t.Errorf("Categories() = %v", cats)
	}
	for _, p := range c.Products() {
		if p.PriceRange == RangeUnbucketed {
			t.Errorf("product %q unexpectedly unbucketed (price %v)", p.Name, p.Price)
		}
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse([]byte("products: []")); err == nil {
		t.Error("Parse accepted an empty product list")
	}
	if _, err := Parse([]byte("{:bad")); err == nil {
		t.Error("Parse accepted malformed yaml")
	}
}
