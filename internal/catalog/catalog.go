package catalog

// Catalog is an ordered, immutable collection of products. Insertion order
// is preserved; grouping and tie-breaking throughout the engine rely on it
// for reproducible output. There are no update or delete operations.
type Catalog struct {
	products []Product
	warnings []error
}

// New builds a Catalog from seed rows, deriving value scores and price
// buckets. Rows with non-positive prices are kept with sentinel derived
// fields and reported via Warnings.
func New(seeds []Seed) *Catalog {
	c := &Catalog{products: make([]Product, 0, len(seeds))}
	for _, s := range seeds {
		p, err := newProduct(s)
		if err != nil {
			c.warnings = append(c.warnings, err)
		}
		c.products = append(c.products, p)
	}
	return c
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// At returns the product at index i, in insertion order.
func (c *Catalog) At(i int) Product { return c.products[i] }

// Products returns all products in insertion order. Callers must treat the
// slice as read-only.
func (c *Catalog) Products() []Product { return c.products }

// Warnings returns construction warnings (e.g. zero-price rows).
func (c *Catalog) Warnings() []error { return c.warnings }

// Categories returns distinct categories in first-encounter order. This
// ordering drives grouped output so it stays stable across runs.
func (c *Catalog) Categories() []Category {
	seen := make(map[Category]bool)
	var out []Category
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Brands returns distinct brand names in first-encounter order.
func (c *Catalog) Brands() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			out = append(out, p.Brand)
		}
	}
	return out
}

// Select returns the products satisfying keep, preserving catalog order.
func (c *Catalog) Select(keep func(Product) bool) []Product {
	var out []Product
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
