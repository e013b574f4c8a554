package handler

import (
	"net/http"

	"agent-battles-gateway/internal/adapter/http/dto"
	"agent-battles-gateway/internal/core/domain"
	"agent-battles-gateway/internal/core/ports"
	"agent-battles-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AppHandler serves the page-level endpoints.
type AppHandler struct {
	app     domain.AppInfo
	consent ports.ConsentService
	wallet  ports.WalletSessionService
	log     zerolog.Logger
}

// NewAppHandler creates a new AppHandler. DeploymentPending is derived from
// the contract address.
func NewAppHandler(app domain.AppInfo, consent ports.ConsentService, wallet ports.WalletSessionService, log zerolog.Logger) *AppHandler {
	app.DeploymentPending = !domain.ContractDeployed(app.ContractAddress)
	return &AppHandler{app: app, consent: consent, wallet: wallet, log: log}
}

// AppInfo handles GET /api/v1/app.
func (h *AppHandler) AppInfo(c *gin.Context) {
	response.OK(c, gin.H{
		"app":        h.app,
		"banner":     domain.DefaultBanner(),
		"disclaimer": domain.DefaultDisclaimer(),
	})
}

// Page handles GET /api/v1/page: one mount of the landing page. The
// disclaimer is attached only when the modal is to be shown. A wallet
// provider outage renders the connect affordance rather than failing the
// page.
func (h *AppHandler) Page(c *gin.Context) {
	deviceID, ok := requireDevice(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	state := domain.PageState{
		App:     h.app,
		Banner:  domain.DefaultBanner(),
		Consent: h.consent.Mount(ctx, deviceID),
	}
	if state.Consent.ModalVisible {
		d := domain.DefaultDisclaimer()
		state.Disclaimer = &d
	}

	view, err := h.wallet.View(ctx, deviceID)
	if err != nil {
		h.log.Warn().Err(err).Str("device_id", deviceID).Msg("wallet provider unavailable, rendering connect")
		view = domain.ViewFor(domain.WalletSession{})
	}
	state.Wallet = view

	response.OK(c, dto.NewPageResponse(state))
}

// HealthCheck returns a deep health check handler that pings all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
