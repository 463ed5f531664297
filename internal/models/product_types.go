package models

// Product is a catalog entry. Products are compiled into the binary and never
// change at runtime.
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Code          string   `json:"code"`
	Image         string   `json:"image"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Installments  string   `json:"installments"`
	Discount      *int     `json:"discount,omitempty"`
	Category      []string `json:"category"`
}
