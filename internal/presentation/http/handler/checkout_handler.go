package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/application/service"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/dto/response"
)

// CheckoutHandler drives the checkout state machine.
type CheckoutHandler struct {
	checkout *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkout *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Checkout validates the cart and payment, submits the transaction to the
// backend and returns the rendered receipt.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	receipt, err := h.checkout.Checkout(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaksi berhasil!", gin.H{
		"receipt": receipt,
		"state":   h.checkout.State(),
	})
}

// NewTransaction resets the terminal for the next customer: cart, inputs,
// receipt and customer display all return to their idle state.
func (h *CheckoutHandler) NewTransaction(c *gin.Context) {
	h.checkout.NewTransaction()
	response.OK(c, "Ready for next transaction", gin.H{
		"state": h.checkout.State(),
	})
}

// TodayTransactions returns the backend's transactions for the current day.
func (h *CheckoutHandler) TodayTransactions(c *gin.Context) {
	transactions, err := h.checkout.TodayTransactions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transactions retrieved successfully", gin.H{
		"transactions": transactions,
		"count":        len(transactions),
	})
}
