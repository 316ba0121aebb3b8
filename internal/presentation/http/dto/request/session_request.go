package request

// SessionInputsRequest is the request body for updating the cashier inputs.
// All fields are optional so the client can send partial updates.
type SessionInputsRequest struct {
	DiscountPercent *int64  `json:"discount_percent"`
	AmountReceived  *int64  `json:"amount_received"`
	PaymentMethod   *string `json:"payment_method" binding:"omitempty,oneof=cash card transfer qris"`
	Notes           *string `json:"notes"`
}
