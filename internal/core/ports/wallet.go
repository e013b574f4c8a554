package ports

import (
	"context"
	"errors"

	"agent-battles-gateway/internal/core/domain"
)

var (
	ErrNoPendingChallenge = errors.New("no pending connection challenge")
	ErrChallengeReplayed  = errors.New("connection challenge already used")
	ErrSignatureMismatch  = errors.New("signature does not match address")
)

// WalletSignal is the provider's observable connection status for one device.
type WalletSignal interface {
	Current(ctx context.Context) (domain.WalletSession, error)
	// Subscribe streams every status change until ctx is done, then closes
	// the channel.
	Subscribe(ctx context.Context) (<-chan domain.WalletSession, error)
}

// WalletConnector starts the provider's own connection flow. The outcome is
// only observed through WalletSignal.
type WalletConnector interface {
	RequestConnection(ctx context.Context) error
}

// WalletProvider is the external wallet collaborator.
type WalletProvider interface {
	Signal(deviceID string) WalletSignal
	Connector(deviceID string) WalletConnector
}

// WalletRegistry is the provider side of the connection flow: the wallet
// answers the issued challenge, or drops the session.
type WalletRegistry interface {
	PendingChallenge(ctx context.Context, deviceID string) (*domain.ConnectChallenge, error)
	Complete(ctx context.Context, deviceID, address, signature string) (domain.WalletSession, error)
	Disconnect(ctx context.Context, deviceID string) error
}

// SignatureVerifier checks a personal_sign signature of message by address.
type SignatureVerifier interface {
	Verify(address, message, signature string) bool
}
