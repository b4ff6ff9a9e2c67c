package domain

// Product is a catalog entry. The cart and checkout treat it as an
// immutable snapshot; the catalog owns the authoritative copy.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
}
