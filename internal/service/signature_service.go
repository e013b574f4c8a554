package service

import (
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// EthSignatureVerifier implements ports.SignatureVerifier for EIP-191
// personal_sign signatures, as produced by browser wallets.
type EthSignatureVerifier struct{}

// NewEthSignatureVerifier creates a personal_sign verifier.
func NewEthSignatureVerifier() *EthSignatureVerifier {
	return &EthSignatureVerifier{}
}

// Verify reports whether signature over message was made by address.
// V may be given as 27/28 (wallets) or 0/1.
func (v *EthSignatureVerifier) Verify(address, message, signature string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	sig, err := hexutil.Decode(signature)
	if err != nil || len(sig) != crypto.SignatureLength {
		return false
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return false
	}
	return crypto.PubkeyToAddress(*pub) == common.HexToAddress(address)
}

