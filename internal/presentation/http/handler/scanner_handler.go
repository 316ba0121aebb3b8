package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/application/service"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/dto/request"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/dto/response"
)

// ScannerHandler feeds barcode input into the scanner pipeline and serves
// the transient notifications it produces.
type ScannerHandler struct {
	scanner  *service.ScannerService
	notifier *service.Notifier
}

// NewScannerHandler creates a new scanner handler.
func NewScannerHandler(scanner *service.ScannerService, notifier *service.Notifier) *ScannerHandler {
	return &ScannerHandler{scanner: scanner, notifier: notifier}
}

// Scan processes a complete barcode: lookup, stock check, add to cart.
// The outcome is reported through notifications, so this always succeeds
// at the HTTP level.
func (h *ScannerHandler) Scan(c *gin.Context) {
	var req request.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	h.scanner.Scan(c.Request.Context(), req.Barcode)
	response.OK(c, "Scan processed", gin.H{
		"notifications": h.notifier.Active(),
	})
}

// Keys feeds raw keystrokes through the debouncing buffer. Scanner wedges
// type fast and terminate with a newline; slow human typing is flushed by
// the inter-character timeout instead of being treated as a barcode.
func (h *ScannerHandler) Keys(c *gin.Context) {
	var req request.KeysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	scanned := 0
	for _, ch := range req.Keys {
		if h.scanner.Push(ctx, ch) {
			scanned++
		}
	}

	response.OK(c, "Keys processed", gin.H{
		"scans_triggered": scanned,
		"notifications":   h.notifier.Active(),
	})
}

// Notifications returns the transient notifications that have not expired.
func (h *ScannerHandler) Notifications(c *gin.Context) {
	response.OK(c, "Notifications retrieved successfully", h.notifier.Active())
}
