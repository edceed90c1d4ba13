package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionVariables(t *testing.T) {
	// Default values when not set via ldflags
	assert.Equal(t, "dev", Version)
	assert.Equal(t, "none", Commit)
	assert.Equal(t, "unknown", BuildDate)
}

func TestGlobalFlags(t *testing.T) {
	// Default values
	assert.False(t, GetVerbose())
	assert.False(t, GetJSONOutput())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "e0b2c4f", truncate("e0b2c4f9a1d3", 7))
	assert.Equal(t, "none", truncate("none", 7))
}
