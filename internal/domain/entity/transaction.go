package entity

import "github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/enum"

// TransactionItem is a cart line in the backend's transaction wire format.
type TransactionItem struct {
	ID    int64  `json:"id"` // product id
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `json:"qty"`
}

// TransactionItemsFromCart converts cart lines into the wire format sent
// to the backend transaction endpoint.
func TransactionItemsFromCart(lines []CartLine) []TransactionItem {
	items := make([]TransactionItem, len(lines))
	for i, l := range lines {
		items[i] = TransactionItem{
			ID:    l.ProductID,
			Name:  l.Name,
			Price: l.UnitPrice,
			Qty:   l.Quantity,
		}
	}
	return items
}

// TransactionSummary is one row of the backend's daily transaction history.
type TransactionSummary struct {
	ID            int64              `json:"id"`
	TotalAmount   int64              `json:"total_amount"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	CreatedAt     string             `json:"created_at"`
}
