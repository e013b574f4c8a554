package middleware

import (
	"net/http"
	"time"

	"agent-battles-gateway/internal/core/domain"
	"agent-battles-gateway/internal/core/ports"
	"agent-battles-gateway/pkg/apperror"
	"agent-battles-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderDeviceToken carries the device token for clients without cookies.
	HeaderDeviceToken = "X-Device-Token"
	HeaderRequestID   = "X-Request-ID"

	// Context keys
	CtxDeviceID  = "device_id"
	CtxDeviceNew = "device_new"
)

// CookieOptions controls the device cookie. Its lifetime follows the token
// expiry.
type CookieOptions struct {
	Name   string
	Secure bool
}

// RequestID tags every request with an id, reusing the caller's when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set(response.CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// DeviceIdentity resolves the device a request comes from. The device scopes
// every durable value, so a browser without a valid cookie is a new device
// and gets a fresh one. A token sent explicitly in the header must be valid.
// Tokens past half their lifetime are reissued so the device id slides with
// use.
func DeviceIdentity(tokens ports.DeviceTokenService, cookie CookieOptions, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := c.GetHeader(HeaderDeviceToken); token != "" {
			claims, err := tokens.Validate(token)
			if err != nil {
				response.Error(c, apperror.ErrInvalidDeviceToken())
				c.Abort()
				return
			}
			resolveDevice(c, tokens, cookie, claims, log)
			return
		}

		if token, err := c.Cookie(cookie.Name); err == nil && token != "" {
			if claims, err := tokens.Validate(token); err == nil {
				resolveDevice(c, tokens, cookie, claims, log)
				return
			}
			log.Debug().Str("path", c.Request.URL.Path).Msg("stale device cookie, issuing a new device")
		}

		deviceID := uuid.New().String()
		if err := issueDeviceToken(c, tokens, cookie, deviceID); err != nil {
			log.Error().Err(err).Msg("failed to issue device token")
			response.Error(c, apperror.InternalError(err))
			c.Abort()
			return
		}
		c.Set(CtxDeviceID, deviceID)
		c.Set(CtxDeviceNew, true)
		c.Next()
	}
}

// resolveDevice continues with a known device, renewing its token when due.
// A failed renewal keeps the current token, which is still valid.
func resolveDevice(c *gin.Context, tokens ports.DeviceTokenService, cookie CookieOptions, claims domain.DeviceClaims, log zerolog.Logger) {
	if claims.NeedsRenewal(time.Now()) {
		if err := issueDeviceToken(c, tokens, cookie, claims.DeviceID); err != nil {
			log.Warn().Err(err).Str("device_id", claims.DeviceID).Msg("failed to renew device token")
		}
	}
	c.Set(CtxDeviceID, claims.DeviceID)
	c.Next()
}

func issueDeviceToken(c *gin.Context, tokens ports.DeviceTokenService, cookie CookieOptions, deviceID string) error {
	token, expiresAt, err := tokens.Issue(deviceID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookie.Name, token, int(time.Until(expiresAt).Seconds()), "/", "", cookie.Secure, true)
	c.Header(HeaderDeviceToken, token)
	return nil
}

// DeviceID returns the device resolved by DeviceIdentity.
func DeviceID(c *gin.Context) (string, bool) {
	id := c.GetString(CtxDeviceID)
	return id, id != ""
}

// IsNewDevice reports whether DeviceIdentity minted the device for this
// request.
func IsNewDevice(c *gin.Context) bool {
	return c.GetBool(CtxDeviceNew)
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		deviceID, _ := DeviceID(c)
		event.
			Str("request_id", c.GetString(response.CtxRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("device_id", deviceID).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).
					Str("request_id", c.GetString(response.CtxRequestID)).
					Str("path", c.Request.URL.Path).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
