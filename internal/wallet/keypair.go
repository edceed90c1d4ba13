package wallet

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

const solanaKeypairLen = 64

// ParseSolanaKey parses the Solana network credential from its environment
// string. Both the Solana CLI JSON array format and a base58 encoded private
// key are accepted.
func ParseSolanaKey(value string) (solana.PrivateKey, error) {
	value = strings.TrimSpace(value)

	// Try JSON array format first (Solana CLI format)
	var keyBytes []byte
	if err := json.Unmarshal([]byte(value), &keyBytes); err == nil {
		return validateAndCreateKey(keyBytes)
	}

	// Try base58 encoded string
	decoded, err := base58.Decode(value)
	if err != nil {
		return nil, fmt.Errorf("invalid Solana private key: not a JSON array or base58 string")
	}

	return validateAndCreateKey(decoded)
}

// validateAndCreateKey validates the keypair length and returns the private key.
func validateAndCreateKey(keyBytes []byte) (solana.PrivateKey, error) {
	if len(keyBytes) != solanaKeypairLen {
		return nil, fmt.Errorf("invalid keypair length: expected %d bytes, got %d", solanaKeypairLen, len(keyBytes))
	}
	return solana.PrivateKey(keyBytes), nil
}

// SolanaAddress returns the base58-encoded public key for a Solana private key.
func SolanaAddress(privateKey solana.PrivateKey) string {
	return privateKey.PublicKey().String()
}
