package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RESOURCE_SERVER_URL", "")
	t.Setenv("EVM_PRIVATE_KEY", "")
	t.Setenv("SVM_PRIVATE_KEY", "")

	cfg := Load()
	assert.Equal(t, DefaultResourceServerURL, cfg.ResourceServerURL)
	assert.False(t, cfg.HasEVMCredential())
	assert.False(t, cfg.HasSVMCredential())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("RESOURCE_SERVER_URL", "http://localhost:3000/")
	t.Setenv("EVM_PRIVATE_KEY", "0xdeadbeef")
	t.Setenv("SVM_PRIVATE_KEY", " base58key ")

	cfg := Load()
	assert.Equal(t, "http://localhost:3000", cfg.ResourceServerURL)
	assert.True(t, cfg.HasEVMCredential())
	assert.True(t, cfg.HasSVMCredential())
	assert.Equal(t, "base58key", cfg.SVMPrivateKey)
}
