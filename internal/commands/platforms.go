package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/port402/socialpay-cli/internal/output"
	"github.com/port402/socialpay-cli/internal/pay"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms",
	Long: `List every platform that can receive payments, with the aliases
accepted on the command line and the expected receiver format.

Examples:
  socialpay platforms
  socialpay platforms --json`,
	Args: cobra.NoArgs,
	RunE: runPlatforms,
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}

// receiverHints describes the handle format each platform expects.
var receiverHints = map[pay.Platform]string{
	pay.PlatformX:         "username, 1-15 chars (letters, digits, _)",
	pay.PlatformFarcaster: "handle, up to 16 chars",
	pay.PlatformGitHub:    "login, up to 39 chars, no leading/trailing/double hyphen",
	pay.PlatformEmail:     "email address",
	pay.PlatformWeb:       "domain name",
}

type platformEntry struct {
	Platform string   `json:"platform"`
	Aliases  []string `json:"aliases"`
	Receiver string   `json:"receiver"`
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	entries := make([]platformEntry, 0, len(pay.Platforms()))
	for _, platform := range pay.Platforms() {
		entries = append(entries, platformEntry{
			Platform: string(platform),
			Aliases:  pay.Aliases(platform),
			Receiver: receiverHints[platform],
		})
	}

	if GetJSONOutput() {
		return output.PrintJSON(entries)
	}

	fmt.Println("Supported Platforms")
	fmt.Println()
	for _, e := range entries {
		aliases := "-"
		if len(e.Aliases) > 0 {
			aliases = strings.Join(e.Aliases, ", ")
		}
		fmt.Printf("  %-10s aliases: %-28s %s\n", e.Platform, aliases, e.Receiver)
	}
	fmt.Println()
	return nil
}
