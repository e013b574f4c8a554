package dto

import "agent-battles-gateway/internal/core/domain"

// WalletCallbackRequest is posted by the wallet provider once the user has
// signed the connect challenge.
type WalletCallbackRequest struct {
	Address   string `json:"address" binding:"required,evm_address"`
	Signature string `json:"signature" binding:"required,evm_signature"`
}

// ConsentResponse is the resolved gate of one mount.
type ConsentResponse struct {
	Status       string `json:"status"`
	Dismissed    bool   `json:"dismissed"`
	ModalVisible bool   `json:"modal_visible"`
}

// WalletViewResponse is the rendered call-to-action.
type WalletViewResponse struct {
	Kind    string `json:"kind"`
	Label   string `json:"label"`
	Address string `json:"address,omitempty"`
}

// ChallengeResponse is the message the wallet must sign.
type ChallengeResponse struct {
	Nonce     string `json:"nonce"`
	Message   string `json:"message"`
	ChainID   int64  `json:"chain_id"`
	ExpiresAt int64  `json:"expires_at"` // Unix timestamp
}

// ConnectResponse is returned when the connect affordance is activated.
// Challenge is absent when the wallet was already connected.
type ConnectResponse struct {
	Wallet    WalletViewResponse `json:"wallet"`
	Challenge *ChallengeResponse `json:"challenge,omitempty"`
}

// PageResponse is everything one page mount renders.
type PageResponse struct {
	App        domain.AppInfo     `json:"app"`
	Banner     domain.Banner      `json:"banner"`
	Consent    ConsentResponse    `json:"consent"`
	Disclaimer *domain.Disclaimer `json:"disclaimer,omitempty"`
	Wallet     WalletViewResponse `json:"wallet"`
}

// NewConsentResponse converts a gate state.
func NewConsentResponse(s domain.ConsentState) ConsentResponse {
	return ConsentResponse{
		Status:       string(s.Status),
		Dismissed:    s.Dismissed,
		ModalVisible: s.ModalVisible,
	}
}

// NewWalletViewResponse converts a wallet view.
func NewWalletViewResponse(v domain.WalletView) WalletViewResponse {
	return WalletViewResponse{Kind: string(v.Kind), Label: v.Label, Address: v.Address}
}

// NewChallengeResponse converts a connect challenge; nil stays nil.
func NewChallengeResponse(c *domain.ConnectChallenge) *ChallengeResponse {
	if c == nil {
		return nil
	}
	return &ChallengeResponse{
		Nonce:     c.Nonce,
		Message:   c.Message,
		ChainID:   c.ChainID,
		ExpiresAt: c.ExpiresAt.Unix(),
	}
}

// NewPageResponse converts a page state.
func NewPageResponse(p domain.PageState) PageResponse {
	return PageResponse{
		App:        p.App,
		Banner:     p.Banner,
		Consent:    NewConsentResponse(p.Consent),
		Disclaimer: p.Disclaimer,
		Wallet:     NewWalletViewResponse(p.Wallet),
	}
}
