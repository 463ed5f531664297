// Package catalog serves the storefront's product list. The list is built into
// the binary and is read-only, so a Catalog is safe for concurrent use.
package catalog

import (
	"sort"
	"strings"

	"github.com/01moynul/flordelima-golang/internal/models"
	"github.com/gosimple/slug"
)

type Catalog struct {
	products []models.Product
	byID     map[int64]models.Product
}

// New indexes products by id. Later duplicates of an id are ignored.
func New(products []models.Product) *Catalog {
	c := &Catalog{
		products: make([]models.Product, 0, len(products)),
		byID:     make(map[int64]models.Product, len(products)),
	}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.byID[p.ID] = p
		c.products = append(c.products, p)
	}
	return c
}

// Default returns the catalog with the store's products.
func Default() *Catalog {
	return New(storeProducts)
}

// All returns every product in catalog order.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id int64) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ByCategory returns the products tagged with category. Tags are compared in
// slug form, so "Cestas Românticas" finds "cestas-romanticas".
func (c *Catalog) ByCategory(category string) []models.Product {
	want := slug.Make(category)
	out := []models.Product{}
	if want == "" {
		return out
	}
	for _, p := range c.products {
		for _, tag := range p.Category {
			if slug.Make(tag) == want {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Search matches query against name, code and category tags, ignoring case
// and accents. An empty query returns everything.
func (c *Catalog) Search(query string) []models.Product {
	q := slug.Make(query)
	if q == "" {
		return c.All()
	}
	out := []models.Product{}
	for _, p := range c.products {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Product, q string) bool {
	if strings.Contains(slug.Make(p.Name), q) || strings.Contains(slug.Make(p.Code), q) {
		return true
	}
	for _, tag := range p.Category {
		if strings.Contains(slug.Make(tag), q) {
			return true
		}
	}
	return false
}

// Categories lists the distinct tags ordered by slug. Tags that differ only in
// case or accents are merged under the first spelling seen.
func (c *Catalog) Categories() []models.Category {
	bySlug := map[string]*models.Category{}
	for _, p := range c.products {
		for _, tag := range p.Category {
			s := slug.Make(tag)
			if s == "" {
				continue
			}
			cat, ok := bySlug[s]
			if !ok {
				cat = &models.Category{Name: tag, Slug: s}
				bySlug[s] = cat
			}
			cat.ProductCount++
		}
	}
	out := make([]models.Category, 0, len(bySlug))
	for _, cat := range bySlug {
		out = append(out, *cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
