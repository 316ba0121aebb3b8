package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/application/service"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/presentation/http/dto/response"
)

// StatusHandler reports backend connectivity as seen by the poller.
type StatusHandler struct {
	status *service.StatusService
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(status *service.StatusService) *StatusHandler {
	return &StatusHandler{status: status}
}

// Get returns the last observed backend status.
func (h *StatusHandler) Get(c *gin.Context) {
	response.OK(c, "Status retrieved successfully", gin.H{
		"online":       h.status.Online(),
		"offline_mode": h.status.OfflineMode(),
	})
}
