package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionAcknowledge     AuditAction = "ACKNOWLEDGE_RISK"
	AuditActionConnectRequest  AuditAction = "WALLET_CONNECT_REQUEST"
	AuditActionConnectComplete AuditAction = "WALLET_CONNECTED"
	AuditActionDisconnect      AuditAction = "WALLET_DISCONNECTED"
)

// AuditLog records one audited action taken from a device.
type AuditLog struct {
	ID        uuid.UUID   `json:"id"`
	DeviceID  string      `json:"device_id"`
	Action    AuditAction `json:"action"`
	Details   string      `json:"details,omitempty"` // JSON string
	IPAddress string      `json:"ip_address"`
	UserAgent string      `json:"user_agent,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
