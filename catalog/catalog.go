// Package catalog serves the static product catalog. The catalog is a
// read-only JSON document loaded once at startup; it is not part of the
// mutable data model.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Product keeps the catalog schema-free: whatever fields the JSON file
// carries are passed through to the shop page and the products API.
type Product map[string]interface{}

type Catalog struct {
	products []Product
}

// New wraps an already-loaded product list.
func New(products []Product) *Catalog {
	return &Catalog{products: products}
}

// Load reads and parses the catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return &Catalog{products: products}, nil
}

// Products returns all catalog entries in file order.
func (c *Catalog) Products() []Product {
	return c.products
}
