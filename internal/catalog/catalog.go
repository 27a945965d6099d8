package catalog

import (
	"fmt"
	"os"

	internalErrors "shop-relay/internal/errors"

	"gopkg.in/yaml.v3"
)

type Product struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Price int    `yaml:"price"`
	Asset string `yaml:"asset"`
}

// Catalog is the static product table. Iteration order is insertion
// order, which fixes the keyboard render order.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

func New(products []Product) *Catalog {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &Catalog{
		products: products,
		byID:     byID,
	}
}

func Default() *Catalog {
	return New([]Product{
		{ID: "p1", Title: "محصول ۱", Price: 50, Asset: "USDT"},
		{ID: "p2", Title: "محصول ۲", Price: 80, Asset: "USDT"},
		{ID: "p3", Title: "محصول ۳", Price: 199, Asset: "USDT"},
	})
}

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// Load reads the catalog from a YAML file. An empty path returns the
// built-in default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}

	if len(file.Products) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no products", path)
	}

	for i, p := range file.Products {
		if p.ID == "" || p.Title == "" || p.Price <= 0 {
			return nil, fmt.Errorf("catalog file %s: product %d is missing id, title or price", path, i)
		}
		if p.Asset == "" {
			file.Products[i].Asset = "USDT"
		}
	}

	return New(file.Products), nil
}

func (c *Catalog) Lookup(id string) (Product, error) {
	product, ok := c.byID[id]
	if !ok {
		return Product{}, internalErrors.ErrProductNotFound
	}

	return product, nil
}

func (c *Catalog) All() []Product {
	return c.products
}
