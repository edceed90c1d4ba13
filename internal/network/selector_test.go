package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_DecisionTable(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		hasEVM  bool
		hasSVM  bool
		want    Choice
		wantErr error
	}{
		{"flag base with evm", "base", true, false, Base, nil},
		{"flag base with both", "base", true, true, Base, nil},
		{"flag base without evm", "base", false, true, "", &MissingCredentialError{Network: Base}},
		{"flag solana with svm", "solana", false, true, Solana, nil},
		{"flag solana with both", "solana", true, true, Solana, nil},
		{"flag solana without svm", "solana", true, false, "", &MissingCredentialError{Network: Solana}},
		{"no flag both", "", true, true, "", ErrAmbiguous},
		{"no flag evm only", "", true, false, Base, nil},
		{"no flag svm only", "", false, true, Solana, nil},
		{"no flag none", "", false, false, "", ErrNoCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.flag, tt.hasEVM, tt.hasSVM)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_FlagCaseInsensitive(t *testing.T) {
	got, err := Resolve("BASE", true, false)
	require.NoError(t, err)
	assert.Equal(t, Base, got)

	got, err = Resolve("Solana", false, true)
	require.NoError(t, err)
	assert.Equal(t, Solana, got)
}

func TestResolve_InvalidFlagBeforeCredentialChecks(t *testing.T) {
	// Invalid value fails even when no credential is configured at all.
	_, err := Resolve("ethereum", false, false)

	var invalid *InvalidNetworkError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "ethereum", invalid.Raw)
}
