package handler

import (
	"agent-battles-gateway/internal/adapter/http/dto"
	"agent-battles-gateway/internal/adapter/http/middleware"
	"agent-battles-gateway/internal/core/ports"
	"agent-battles-gateway/pkg/apperror"
	"agent-battles-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// ConsentHandler serves the risk acknowledgment gate.
type ConsentHandler struct {
	consent ports.ConsentService
}

// NewConsentHandler creates a new ConsentHandler.
func NewConsentHandler(consent ports.ConsentService) *ConsentHandler {
	return &ConsentHandler{consent: consent}
}

// Get handles GET /api/v1/consent.
func (h *ConsentHandler) Get(c *gin.Context) {
	deviceID, ok := requireDevice(c)
	if !ok {
		return
	}
	response.OK(c, dto.NewConsentResponse(h.consent.Mount(c.Request.Context(), deviceID)))
}

// Acknowledge handles POST /api/v1/consent/acknowledge. It always succeeds;
// a storage failure only means the modal returns on the next load.
func (h *ConsentHandler) Acknowledge(c *gin.Context) {
	deviceID, ok := requireDevice(c)
	if !ok {
		return
	}
	response.OK(c, dto.NewConsentResponse(h.consent.Acknowledge(c.Request.Context(), deviceID)))
}

func requireDevice(c *gin.Context) (string, bool) {
	deviceID, ok := middleware.DeviceID(c)
	if !ok {
		response.Error(c, apperror.ErrMissingDevice())
		return "", false
	}
	return deviceID, true
}
