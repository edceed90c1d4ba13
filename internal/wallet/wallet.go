// Package wallet parses the configured blockchain credentials and derives
// the sender addresses shown in receipts.
package wallet

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// ParseEVMKey parses a hex-encoded EVM private key, with or without the 0x
// prefix. This is the Base network credential.
func ParseEVMKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")

	keyBytes, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid hex private key: %w", err)
	}

	privateKey, err := crypto.ToECDSA(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return privateKey, nil
}

// EVMAddress returns the checksummed Ethereum address for a private key.
func EVMAddress(privateKey *ecdsa.PrivateKey) string {
	return crypto.PubkeyToAddress(privateKey.PublicKey).Hex()
}

// ShortAddress truncates an address for display.
// "0x64c2310BD1151266AA2Ad2410447E133b7F84e29" becomes "0x64c2...4e29".
func ShortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
