package entity

// PricingSnapshot is the derived pricing state for the current cart and
// inputs. It is recomputed after every cart or input mutation, never stored.
type PricingSnapshot struct {
	Subtotal        int64 `json:"subtotal"`
	DiscountPercent int64 `json:"discount_percent"`
	DiscountAmount  int64 `json:"discount_amount"`
	Total           int64 `json:"total"`
	AmountReceived  int64 `json:"amount_received"`
	Change          int64 `json:"change"`
}
