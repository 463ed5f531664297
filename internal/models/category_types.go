package models

// Category is one storefront tag with the number of products carrying it.
// Slug is what ?category= expects.
type Category struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"productCount"`
}
