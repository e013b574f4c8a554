package handler

import (
	"context"
	"net/http"
	"time"

	"agent-battles-gateway/internal/adapter/http/dto"
	"agent-battles-gateway/internal/core/ports"
	"agent-battles-gateway/pkg/apperror"
	"agent-battles-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	defaultHeartbeat = 15 * time.Second
	wsWriteTimeout   = 10 * time.Second
)

// WalletHandler serves the wallet call-to-action and the provider callbacks.
type WalletHandler struct {
	wallet    ports.WalletSessionService
	upgrader  websocket.Upgrader
	heartbeat time.Duration
	log       zerolog.Logger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(wallet ports.WalletSessionService, log zerolog.Logger) *WalletHandler {
	return &WalletHandler{
		wallet: wallet,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		heartbeat: defaultHeartbeat,
		log:       log,
	}
}

// Session handles GET /api/v1/wallet/session.
func (h *WalletHandler) Session(c *gin.Context) {
	deviceID, ok := requireDevice(c)
	if !ok {
		return
	}

	view, err := h.wallet.View(c.Request.Context(), deviceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewWalletViewResponse(view))
}

// Connect handles POST /api/v1/wallet/connect. The outcome is observed
// through the session stream, so a started flow answers 202 with the
// challenge to sign.
func (h *WalletHandler) Connect(c *gin.Context) {
	deviceID, ok := requireDevice(c)
	if !ok {
		return
	}

	view, challenge, err := h.wallet.Connect(c.Request.Context(), deviceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ConnectResponse{
		Wallet:    dto.NewWalletViewResponse(view),
		Challenge: dto.NewChallengeResponse(challenge),
	}
	if challenge == nil {
		response.OK(c, resp)
		return
	}
	response.Accepted(c, resp)
}

// Stream handles GET /api/v1/wallet/session/stream as server-sent events.
// The current view is sent first, then one "wallet" event per change.
func (h *WalletHandler) Stream(c *gin.Context) {
	deviceID, ok := requireDevice(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	views, err := h.wallet.Watch(ctx, deviceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-views:
			if !ok {
				return
			}
			c.SSEvent("wallet", dto.NewWalletViewResponse(v))
		case <-ticker.C:
			c.SSEvent("ping", time.Now().Unix())
		}
		c.Writer.Flush()
	}
}

// WebSocket handles GET /api/v1/wallet/session/ws. It pushes the same views
// as Stream as JSON text frames. Client frames are discarded.
func (h *WalletHandler) WebSocket(c *gin.Context) {
	deviceID, ok := requireDevice(c)
	if !ok {
		return
	}
	if !websocket.IsWebSocketUpgrade(c.Request) {
		response.Error(c, apperror.ErrStreamUnsupported())
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	views, err := h.wallet.Watch(ctx, deviceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("device_id", deviceID).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(wsWriteTimeout))
			return
		case v, ok := <-views:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(dto.NewWalletViewResponse(v)); err != nil {
				h.log.Debug().Err(err).Str("device_id", deviceID).Msg("websocket write failed")
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}
		}
	}
}

// Callback handles POST /api/v1/wallet/callback: the provider reports the
// signed challenge for this device.
func (h *WalletHandler) Callback(c *gin.Context) {
	deviceID, ok := requireDevice(c)
	if !ok {
		return
	}

	var req dto.WalletCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	view, err := h.wallet.CompleteConnection(c.Request.Context(), deviceID, req.Address, req.Signature)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewWalletViewResponse(view))
}

// Disconnect handles POST /api/v1/wallet/disconnect.
func (h *WalletHandler) Disconnect(c *gin.Context) {
	deviceID, ok := requireDevice(c)
	if !ok {
		return
	}

	view, err := h.wallet.Disconnect(c.Request.Context(), deviceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewWalletViewResponse(view))
}
