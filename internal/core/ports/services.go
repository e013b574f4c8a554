package ports

import (
	"context"
	"time"

	"agent-battles-gateway/internal/core/domain"
)

// ConsentService resolves and records the risk acknowledgment of a device.
type ConsentService interface {
	// Mount resolves the acknowledgment for one page load.
	Mount(ctx context.Context, deviceID string) domain.ConsentState
	// Acknowledge persists the acknowledgment. It never fails.
	Acknowledge(ctx context.Context, deviceID string) domain.ConsentState
}

// WalletSessionService projects the wallet provider's status onto the
// call-to-action.
type WalletSessionService interface {
	View(ctx context.Context, deviceID string) (domain.WalletView, error)
	// Connect activates the connect affordance. The challenge is nil when the
	// device is already connected.
	Connect(ctx context.Context, deviceID string) (domain.WalletView, *domain.ConnectChallenge, error)
	Watch(ctx context.Context, deviceID string) (<-chan domain.WalletView, error)
	CompleteConnection(ctx context.Context, deviceID, address, signature string) (domain.WalletView, error)
	Disconnect(ctx context.Context, deviceID string) (domain.WalletView, error)
}

// DeviceTokenService signs and validates device identity tokens.
type DeviceTokenService interface {
	Issue(deviceID string) (string, time.Time, error)
	Validate(token string) (domain.DeviceClaims, error)
}

// AuditService records audit entries (fire-and-forget).
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
