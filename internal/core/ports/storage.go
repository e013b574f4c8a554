package ports

import (
	"context"
	"errors"
	"time"

	"agent-battles-gateway/internal/core/domain"
)

// ErrStorageUnavailable is returned by stores that cannot persist anything,
// e.g. when the device has storage disabled.
var ErrStorageUnavailable = errors.New("durable storage unavailable")

// DurableStore is the key-value storage of one browser/device.
type DurableStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// DeviceStorage hands out the durable store scoped to a device.
type DeviceStorage interface {
	ForDevice(deviceID string) DurableStore
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// NonceStore manages single-use connection challenges.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, deviceID string, nonce string, ttl time.Duration) (bool, error)
}
