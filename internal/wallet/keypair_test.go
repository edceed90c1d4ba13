package wallet

import (
	"encoding/json"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeypair(t *testing.T) solana.PrivateKey {
	t.Helper()
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return key
}

func TestParseSolanaKey_Base58(t *testing.T) {
	key := testKeypair(t)

	parsed, err := ParseSolanaKey(base58.Encode(key))
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey(), parsed.PublicKey())
}

func TestParseSolanaKey_JSONArray(t *testing.T) {
	key := testKeypair(t)
	ints := make([]int, len(key))
	for i, b := range key {
		ints[i] = int(b)
	}
	jsonKey, err := json.Marshal(ints)
	require.NoError(t, err)

	parsed, err := ParseSolanaKey(string(jsonKey))
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey(), parsed.PublicKey())
}

func TestParseSolanaKey_WhitespaceTolerant(t *testing.T) {
	key := testKeypair(t)

	parsed, err := ParseSolanaKey("  " + base58.Encode(key) + "\n")
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey(), parsed.PublicKey())
}

func TestParseSolanaKey_Invalid(t *testing.T) {
	_, err := ParseSolanaKey("not base58 !!!")
	require.Error(t, err)

	// Base58 but wrong length
	_, err = ParseSolanaKey(base58.Encode([]byte{1, 2, 3}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid keypair length")
}

func TestSolanaAddress(t *testing.T) {
	key := testKeypair(t)
	assert.Equal(t, key.PublicKey().String(), SolanaAddress(key))
}
