package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/application/service"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/dto/response"
)

// QRISHandler generates QRIS payment codes for the current order.
type QRISHandler struct {
	qris *service.QRISService
}

// NewQRISHandler creates a new QRIS handler.
func NewQRISHandler(qris *service.QRISService) *QRISHandler {
	return &QRISHandler{qris: qris}
}

// Generate asks the backend for a QR code covering the current total.
func (h *QRISHandler) Generate(c *gin.Context) {
	result, err := h.qris.GenerateForCurrentTotal(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "QRIS generated", result)
}
