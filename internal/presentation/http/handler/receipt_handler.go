package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/application/service"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/dto/response"
)

// ReceiptHandler serves the last rendered receipt and sends it to the printer.
type ReceiptHandler struct {
	receipts *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(receipts *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts}
}

// Get returns the last rendered receipt.
func (h *ReceiptHandler) Get(c *gin.Context) {
	receipt := h.receipts.Last()
	if receipt == nil {
		response.NotFound(c, "No receipt has been rendered yet")
		return
	}
	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Print sends the last rendered receipt to the configured printer.
func (h *ReceiptHandler) Print(c *gin.Context) {
	if err := h.receipts.Print(); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt sent to printer", gin.H{
		"printer_connected": h.receipts.PrinterConnected(),
	})
}
