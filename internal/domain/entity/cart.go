package entity

import "github.com/google/uuid"

// CartLine is one product entry in the cart with its own quantity.
// Name and UnitPrice are snapshots taken when the product was first added;
// a later catalog reload does not touch existing lines.
//
// Lines carry a synthetic ID assigned at creation. All update/remove
// operations address lines by this ID, never by display position, so a
// concurrent removal cannot redirect a mutation to the wrong line.
type CartLine struct {
	ID        uuid.UUID `json:"line_id"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
}

// Total returns the line total (unit price x quantity).
func (l CartLine) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}
