package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/application/service"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/enum"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/dto/request"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/dto/response"
)

// SessionHandler exposes the cashier input store.
type SessionHandler struct {
	session *service.SessionService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(session *service.SessionService) *SessionHandler {
	return &SessionHandler{session: session}
}

// SetInputs applies a partial update to the cashier inputs and returns the
// recomputed pricing snapshot.
func (h *SessionHandler) SetInputs(c *gin.Context) {
	var req request.SessionInputsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	in := h.session.Inputs()
	if req.DiscountPercent != nil {
		in.DiscountPercent = *req.DiscountPercent
	}
	if req.AmountReceived != nil {
		in.AmountReceived = *req.AmountReceived
	}
	if req.PaymentMethod != nil {
		in.PaymentMethod = enum.PaymentMethod(*req.PaymentMethod)
	}
	if req.Notes != nil {
		in.Notes = *req.Notes
	}
	h.session.SetInputs(in)

	response.OK(c, "Inputs updated", gin.H{
		"inputs":  h.session.Inputs(),
		"pricing": h.session.Snapshot(),
	})
}
