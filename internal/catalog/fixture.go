package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var embeddedProducts []byte

type fixtureFile struct {
	Products []Seed `yaml:"products"`
}

// LoadEmbedded builds the catalog from the compiled-in product table.
// Construct once per process (or per test) and pass the catalog explicitly;
// there is no shared global instance.
func LoadEmbedded() (*Catalog, error) {
	return Parse(embeddedProducts)
}

// Parse builds a catalog from YAML bytes with a top-level products list.
func Parse(data []byte) (*Catalog, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("parse catalog yaml: no products defined")
	}
	return New(f.Products), nil
}
