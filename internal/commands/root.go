// Package commands implements the CLI commands using Cobra.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set at build time via ldflags)
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Global flags
var (
	verbose    bool
	jsonOutput bool
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "socialpay",
	Short: "Send USDC micropayments to social identities",
	Long: `socialpay sends USDC micropayments to people identified by their social
handle: an X username, a Farcaster handle, a GitHub login, an email address,
or a web domain. Payments go through a hosted payment API that settles them
on Base or Solana.

Commands:
  send       Send one payment to a platform/receiver target
  batch      Send one payment batch from a descriptor
  agent      Turn a natural-language request into payments
  campaign   Manage engagement campaigns
  platforms  List supported platforms and their aliases
  version    Show version information

Examples:
  # Send half a dollar to an X user
  socialpay send x/alice 0.5

  # Cents notation avoids shell expansion of $
  socialpay send github/octocat 50¢

  # Batch from an inline compact descriptor
  socialpay batch "x/alice:0.05,bob:0.5"

  # Natural language
  socialpay agent "send 0.5 USDC to @alice on farcaster"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
}

// GetVerbose returns the verbose flag value.
func GetVerbose() bool {
	return verbose
}

// GetJSONOutput returns the json output flag value.
func GetJSONOutput() bool {
	return jsonOutput
}
