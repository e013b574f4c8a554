package domain

import "time"

// WalletSession is the read-only projection of the external wallet
// provider's session for one device. Version increases with every change of
// the session; zero means the provider does not version its sessions.
type WalletSession struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address,omitempty"`
	Version   int64  `json:"version,omitempty"`
}

// OlderThan reports whether s is a versioned session that precedes other.
func (s WalletSession) OlderThan(other WalletSession) bool {
	return s.Version != 0 && s.Version < other.Version
}

// WalletViewKind names the two mutually exclusive call-to-action views.
type WalletViewKind string

const (
	ViewConnect   WalletViewKind = "connect"
	ViewConnected WalletViewKind = "connected"
)

// WalletView is the rendered call-to-action.
type WalletView struct {
	Kind    WalletViewKind `json:"kind"`
	Label   string         `json:"label"`
	Address string         `json:"address,omitempty"`
}

const (
	ConnectLabel   = "Connect Wallet to Start"
	ConnectedLabel = "✓ Wallet Connected - Battles coming soon!"
)

// ViewFor projects a session onto exactly one view.
func ViewFor(s WalletSession) WalletView {
	if s.Connected {
		return WalletView{Kind: ViewConnected, Label: ConnectedLabel, Address: s.Address}
	}
	return WalletView{Kind: ViewConnect, Label: ConnectLabel}
}

// ConnectChallenge is the message a wallet signs to complete a connection
// request.
type ConnectChallenge struct {
	Nonce     string    `json:"nonce"`
	Message   string    `json:"message"`
	ChainID   int64     `json:"chain_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
