// socialpay is a CLI for sending USDC micropayments to social identities.
//
// Receivers are identified by platform and handle (x/alice, github/octocat,
// email/dev@example.com). Payments go through a hosted payment API that
// settles on Base or Solana.
//
// Usage:
//
//	socialpay send <platform/receiver> <amount>   Send one payment
//	socialpay batch <descriptor>                  Send one payment batch
//	socialpay agent <prompt>                      Natural-language payments
//	socialpay campaign create                     Create a cookie campaign
//	socialpay platforms                           List supported platforms
//	socialpay version                             Show version info
//
// For more information, visit: https://github.com/port402/socialpay-cli
package main

import "github.com/port402/socialpay-cli/internal/commands"

func main() {
	commands.Execute()
}
