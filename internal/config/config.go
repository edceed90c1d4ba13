// Package config builds the process-wide configuration from the environment.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// DefaultResourceServerURL is the hosted payment API endpoint.
const DefaultResourceServerURL = "https://api.socialpay.dev"

// Config holds every environment-derived value. It is read once at process
// start and treated as immutable for the process lifetime; components take
// it explicitly instead of reading the environment themselves.
type Config struct {
	ResourceServerURL string
	EVMPrivateKey     string
	SVMPrivateKey     string
	OpenAIKey         string
	GeminiKey         string
}

// Load reads the environment through viper. Call once from the command layer.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("RESOURCE_SERVER_URL", DefaultResourceServerURL)

	return &Config{
		ResourceServerURL: strings.TrimRight(v.GetString("RESOURCE_SERVER_URL"), "/"),
		EVMPrivateKey:     strings.TrimSpace(v.GetString("EVM_PRIVATE_KEY")),
		SVMPrivateKey:     strings.TrimSpace(v.GetString("SVM_PRIVATE_KEY")),
		OpenAIKey:         strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
		GeminiKey:         strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
	}
}

// HasEVMCredential reports whether a Base (EVM) signer is configured.
func (c *Config) HasEVMCredential() bool {
	return c.EVMPrivateKey != ""
}

// HasSVMCredential reports whether a Solana signer is configured.
func (c *Config) HasSVMCredential() bool {
	return c.SVMPrivateKey != ""
}
