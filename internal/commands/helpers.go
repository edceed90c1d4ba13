package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/port402/socialpay-cli/internal/api"
	"github.com/port402/socialpay-cli/internal/config"
	"github.com/port402/socialpay-cli/internal/network"
	"github.com/port402/socialpay-cli/internal/wallet"
)

// newClient builds the payment API client from the loaded configuration.
// No settler is attached: when the server answers 402 the accepted options
// are surfaced to the user instead of being satisfied in-process.
func newClient(cfg *config.Config) *api.Client {
	return api.New(cfg.ResourceServerURL)
}

// resolveNetwork applies the selection policy to the --network flag and the
// configured credentials.
func resolveNetwork(flag string, cfg *config.Config) (network.Choice, error) {
	return network.Resolve(flag, cfg.HasEVMCredential(), cfg.HasSVMCredential())
}

// senderAddress derives the on-chain address tied to the chosen network's
// credential. Used as the sender identity for batch payments and shown in
// verbose output.
func senderAddress(choice network.Choice, cfg *config.Config) (string, error) {
	switch choice {
	case network.Solana:
		key, err := wallet.ParseSolanaKey(cfg.SVMPrivateKey)
		if err != nil {
			return "", fmt.Errorf("SVM_PRIVATE_KEY: %w", err)
		}
		return wallet.SolanaAddress(key), nil
	default:
		key, err := wallet.ParseEVMKey(cfg.EVMPrivateKey)
		if err != nil {
			return "", fmt.Errorf("EVM_PRIVATE_KEY: %w", err)
		}
		return wallet.EVMAddress(key), nil
	}
}

// explorerURL returns the block-explorer link for a settled transaction, or
// "" when the receipt carried no transaction.
func explorerURL(choice network.Choice, cfg *config.Config, tx string) string {
	if tx == "" {
		return ""
	}
	cluster := network.SolanaCluster(cfg.ResourceServerURL)
	return network.ExplorerTxURL(choice, cluster, tx)
}

// watchInterrupt installs a Ctrl+C handler. Once *sent is true the request
// has already reached the server, so cancelling locally cannot undo it.
func watchInterrupt(sent *bool) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr)
		if *sent {
			fmt.Fprintln(os.Stderr, "⚠ Warning: the payment request was already sent to the server.")
			fmt.Fprintln(os.Stderr, "  It may still be processed. Check the transaction before retrying.")
		} else {
			fmt.Fprintln(os.Stderr, "Cancelled by user. No payment was made.")
		}
		os.Exit(1)
	}()
}
