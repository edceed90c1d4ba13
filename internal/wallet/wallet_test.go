package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known test vector: private key 0x01 has a fixed address.
const testKeyHex = "0000000000000000000000000000000000000000000000000000000000000001"

func TestParseEVMKey_WithAndWithoutPrefix(t *testing.T) {
	plain, err := ParseEVMKey(testKeyHex)
	require.NoError(t, err)

	prefixed, err := ParseEVMKey("0x" + testKeyHex)
	require.NoError(t, err)

	assert.Equal(t, EVMAddress(plain), EVMAddress(prefixed))
}

func TestParseEVMKey_KnownAddress(t *testing.T) {
	key, err := ParseEVMKey(testKeyHex)
	require.NoError(t, err)
	assert.Equal(t, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", EVMAddress(key))
}

func TestParseEVMKey_Invalid(t *testing.T) {
	_, err := ParseEVMKey("not-hex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid hex")

	// Valid hex but not a valid secp256k1 scalar
	_, err = ParseEVMKey("00")
	require.Error(t, err)
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x64c2...4e29", ShortAddress("0x64c2310BD1151266AA2Ad2410447E133b7F84e29"))
	assert.Equal(t, "short", ShortAddress("short"))
}
