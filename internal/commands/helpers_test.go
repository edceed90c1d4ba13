package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/port402/socialpay-cli/internal/config"
	"github.com/port402/socialpay-cli/internal/network"
)

func TestResolveNetworkFromConfig(t *testing.T) {
	cfg := &config.Config{EVMPrivateKey: "0xabc"}

	choice, err := resolveNetwork("", cfg)
	require.NoError(t, err)
	assert.Equal(t, network.Base, choice)

	_, err = resolveNetwork("solana", cfg)
	var missing *network.MissingCredentialError
	assert.ErrorAs(t, err, &missing)
}

func TestSenderAddressEVM(t *testing.T) {
	cfg := &config.Config{
		EVMPrivateKey: "0x0000000000000000000000000000000000000000000000000000000000000001",
	}

	address, err := senderAddress(network.Base, cfg)
	require.NoError(t, err)
	assert.Equal(t, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", address)
}

func TestSenderAddressBadKey(t *testing.T) {
	cfg := &config.Config{EVMPrivateKey: "not-hex"}

	_, err := senderAddress(network.Base, cfg)
	assert.Error(t, err)
}

func TestExplorerURL(t *testing.T) {
	cfg := &config.Config{ResourceServerURL: "https://api.socialpay.dev"}

	assert.Equal(t, "https://basescan.org/tx/0xabc", explorerURL(network.Base, cfg, "0xabc"))
	assert.Empty(t, explorerURL(network.Base, cfg, ""))

	local := &config.Config{ResourceServerURL: "http://localhost:3000"}
	assert.Equal(t, "https://explorer.solana.com/tx/sig?cluster=devnet",
		explorerURL(network.Solana, local, "sig"))
}
