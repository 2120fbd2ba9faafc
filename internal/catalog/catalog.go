package catalog

import (
	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
)

// Catalog is the static, read-only set of purchasable products and
// their categories. It is loaded once at process start and never
// mutated afterwards.
type Catalog struct {
	products   []domain.Product
	categories []domain.Category
	byID       map[int]domain.Product
}

func New() *Catalog {
	c := &Catalog{
		products:   products,
		categories: categories,
		byID:       make(map[int]domain.Product, len(products)),
	}
	for _, p := range products {
		c.byID[p.ID] = p
	}
	return c
}

// Products returns the full catalog in source order. Callers must not
// mutate the returned slice.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

// Categories returns the known categories in source order.
func (c *Catalog) Categories() []domain.Category {
	return c.categories
}

// ProductByID looks up a single product. Returns domain.ErrNotFound
// for unknown ids.
func (c *Catalog) ProductByID(id int) (domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}
