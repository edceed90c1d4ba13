// Package network resolves which blockchain network, and therefore which
// credential, a CLI invocation uses.
package network

import (
	"fmt"
	"strings"
)

// Choice is the resolved blockchain network for one CLI invocation.
// It is derived at most once per run and tied 1:1 to a credential:
// Base uses the EVM private key, Solana the SVM private key.
type Choice string

const (
	Base   Choice = "base"
	Solana Choice = "solana"
)

// InvalidNetworkError reports a --network value that is neither base nor solana.
type InvalidNetworkError struct {
	Raw string
}

func (e *InvalidNetworkError) Error() string {
	return fmt.Sprintf("invalid network %q (accepted: base, solana)", e.Raw)
}

// MissingCredentialError reports an explicitly requested network whose
// credential is not configured.
type MissingCredentialError struct {
	Network Choice
}

func (e *MissingCredentialError) Error() string {
	env := "EVM_PRIVATE_KEY"
	if e.Network == Solana {
		env = "SVM_PRIVATE_KEY"
	}
	return fmt.Sprintf("network %s requested but %s is not set", e.Network, env)
}

// ErrAmbiguous is returned when both credentials are configured and no flag
// disambiguates between them.
var ErrAmbiguous = fmt.Errorf("both EVM_PRIVATE_KEY and SVM_PRIVATE_KEY are set; pass --network base or --network solana")

// ErrNoCredential is returned when neither credential is configured.
var ErrNoCredential = fmt.Errorf("no private key configured (set EVM_PRIVATE_KEY for Base or SVM_PRIVATE_KEY for Solana)")

// Resolve applies the network selection policy: an explicit flag wins but
// requires its credential; with no flag, a single configured credential
// auto-detects the network, two is ambiguous, zero is an error.
// An invalid flag value fails before any credential check.
func Resolve(flag string, hasEVM, hasSVM bool) (Choice, error) {
	if flag != "" {
		var choice Choice
		switch strings.ToLower(flag) {
		case string(Base):
			choice = Base
		case string(Solana):
			choice = Solana
		default:
			return "", &InvalidNetworkError{Raw: flag}
		}

		if choice == Base && !hasEVM {
			return "", &MissingCredentialError{Network: Base}
		}
		if choice == Solana && !hasSVM {
			return "", &MissingCredentialError{Network: Solana}
		}
		return choice, nil
	}

	switch {
	case hasEVM && hasSVM:
		return "", ErrAmbiguous
	case hasEVM:
		return Base, nil
	case hasSVM:
		return Solana, nil
	default:
		return "", ErrNoCredential
	}
}
