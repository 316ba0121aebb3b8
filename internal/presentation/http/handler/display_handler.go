package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/application/service"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/dto/response"
)

// DisplayHandler serves the customer display mirror: a polled state
// endpoint, an SSE stream and a close control.
type DisplayHandler struct {
	display *service.DisplayService
}

// NewDisplayHandler creates a new display handler.
func NewDisplayHandler(display *service.DisplayService) *DisplayHandler {
	return &DisplayHandler{display: display}
}

// State returns what the customer display currently shows.
func (h *DisplayHandler) State(c *gin.Context) {
	response.OK(c, "Display state retrieved successfully", h.display.State())
}

// Stream pushes display state changes to the customer screen as
// server-sent events. The current state is delivered first so a freshly
// opened screen renders immediately.
func (h *DisplayHandler) Stream(c *gin.Context) {
	id, updates := h.display.Subscribe()
	defer h.display.Unsubscribe(id)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case state, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("display", state)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// Close disconnects all mirror screens and resets the display to idle.
func (h *DisplayHandler) Close(c *gin.Context) {
	h.display.Close()
	response.OK(c, "Display closed", nil)
}
