package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"agent-battles-gateway/internal/core/domain"
	"agent-battles-gateway/internal/core/ports"
	"agent-battles-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that records successful consent and
// wallet actions.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method != http.MethodPost {
			return
		}

		action := mapPathToAction(c.FullPath())
		if action == "" {
			return
		}

		deviceID, _ := DeviceID(c)
		details, _ := json.Marshal(map[string]interface{}{
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(response.CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:        uuid.New(),
			DeviceID:  deviceID,
			Action:    action,
			Details:   string(details),
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			CreatedAt: time.Now().UTC(),
		})
	}
}

func mapPathToAction(path string) domain.AuditAction {
	switch path {
	case "/api/v1/consent/acknowledge":
		return domain.AuditActionAcknowledge
	case "/api/v1/wallet/connect":
		return domain.AuditActionConnectRequest
	case "/api/v1/wallet/callback":
		return domain.AuditActionConnectComplete
	case "/api/v1/wallet/disconnect":
		return domain.AuditActionDisconnect
	}
	return ""
}
