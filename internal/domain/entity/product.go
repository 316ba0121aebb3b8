package entity

// Product is a catalog entry as served by the backend. Products are
// immutable on the client: the catalog cache replaces them wholesale on
// load and never mutates individual entries.
type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"` // whole rupiah, never fractional
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Barcode  string `json:"barcode,omitempty"`
}
