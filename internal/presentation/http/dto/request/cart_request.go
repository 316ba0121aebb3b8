package request

// AddItemRequest is the request body for adding a product to the cart.
type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int   `json:"quantity"`
}

// UpdateQuantityRequest is the request body for changing a cart line quantity.
// A quantity of zero or less removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
