package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/application/service"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/dto/request"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/dto/response"
)

// CartHandler exposes the cart store and its derived pricing.
type CartHandler struct {
	cart    *service.CartService
	session *service.SessionService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cart *service.CartService, session *service.SessionService) *CartHandler {
	return &CartHandler{cart: cart, session: session}
}

// Get returns the cart lines together with the current pricing snapshot.
func (h *CartHandler) Get(c *gin.Context) {
	response.OK(c, "Cart retrieved successfully", gin.H{
		"lines":   h.cart.Lines(),
		"pricing": h.session.Snapshot(),
	})
}

// AddItem adds a product to the cart, merging into an existing line when
// the product is already present.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	line, err := h.cart.AddItem(req.ProductID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item added to cart", line)
}

// UpdateQuantity sets a cart line's quantity. Zero or less removes the line.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid line ID")
		return
	}

	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.cart.UpdateQuantity(lineID, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity updated", gin.H{
		"lines":   h.cart.Lines(),
		"pricing": h.session.Snapshot(),
	})
}

// RemoveLine deletes a cart line.
func (h *CartHandler) RemoveLine(c *gin.Context) {
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid line ID")
		return
	}

	if err := h.cart.RemoveLine(lineID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed from cart", nil)
}

// Clear empties the cart.
func (h *CartHandler) Clear(c *gin.Context) {
	h.cart.Clear()
	response.OK(c, "Cart cleared", nil)
}
