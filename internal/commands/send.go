package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/port402/socialpay-cli/internal/api"
	"github.com/port402/socialpay-cli/internal/config"
	"github.com/port402/socialpay-cli/internal/output"
	"github.com/port402/socialpay-cli/internal/pay"
	"github.com/port402/socialpay-cli/internal/wallet"
)

// Send command flags
var (
	sendDescription string
	sendNetwork     string
	sendDryRun      bool
	sendYes         bool
)

var sendCmd = &cobra.Command{
	Use:   "send <platform/receiver> <amount>",
	Short: "Send one USDC payment to a social identity",
	Long: `Send a single USDC payment to a receiver identified by platform and handle.

The target is platform/receiver, where platform is a canonical name or any
accepted alias (twitter, fc, gh, mail, domain, ...). The amount is plain
USDC (0.5), cents (50¢), or a dollar form with a fractional part ($0.50).

Examples:
  socialpay send x/alice 0.5
  socialpay send twitter/alice 50¢
  socialpay send github/octocat 0.25 --description "thanks for the fix"
  socialpay send email/dev@example.com 1 --network solana
  socialpay send farcaster/bob 5¢ --dry-run`,
	Args: cobra.ExactArgs(2),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVarP(&sendDescription, "description", "d", "", "Free-text note attached to the payment")
	sendCmd.Flags().StringVar(&sendNetwork, "network", "", "Settlement network: base or solana")
	sendCmd.Flags().BoolVar(&sendDryRun, "dry-run", false, "Show the payment without sending it")
	sendCmd.Flags().BoolVarP(&sendYes, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(sendCmd)
}

// buildInstruction validates one target/amount pair into a submittable
// payment instruction.
func buildInstruction(target, rawAmount, description string) (pay.PaymentInstruction, error) {
	platform, receiver, err := pay.ParseTarget(target)
	if err != nil {
		return pay.PaymentInstruction{}, err
	}

	amount, err := pay.ParseAmount(rawAmount)
	if err != nil {
		return pay.PaymentInstruction{}, err
	}

	return pay.PaymentInstruction{
		Platform:    platform,
		Receiver:    receiver,
		Amount:      amount,
		Description: description,
	}, nil
}

func runSend(cmd *cobra.Command, args []string) error {
	instruction, err := buildInstruction(args[0], args[1], sendDescription)
	if err != nil {
		return err
	}

	cfg := config.Load()
	choice, err := resolveNetwork(sendNetwork, cfg)
	if err != nil {
		return err
	}

	result := &output.PaymentResult{
		Platform:    string(instruction.Platform),
		Receiver:    instruction.Receiver,
		Amount:      instruction.Amount.String(),
		Currency:    api.USDCCurrency,
		Description: instruction.Description,
		Network:     string(choice),
		DryRun:      sendDryRun,
	}

	if sendDryRun {
		if GetJSONOutput() {
			return output.PrintJSON(result)
		}
		output.PrintPaymentResult(result)
		return nil
	}

	if GetVerbose() && !GetJSONOutput() {
		if sender, err := senderAddress(choice, cfg); err == nil {
			fmt.Fprintf(os.Stderr, "  Sender: %s\n", wallet.ShortAddress(sender))
		}
	}

	if !sendYes && output.IsTTY() {
		prompt := fmt.Sprintf("Send %s USDC to %s/%s on %s?",
			result.Amount, result.Platform, result.Receiver, result.Network)
		if !output.PromptConfirm(prompt) {
			fmt.Println("Cancelled by user. No payment was made.")
			return nil
		}
	}

	sent := false
	watchInterrupt(&sent)

	if GetVerbose() && !GetJSONOutput() {
		fmt.Fprintln(os.Stderr, "• Sending payment...")
	}

	sent = true
	receipt, err := newClient(cfg).Pay(cmd.Context(), instruction)
	if err != nil {
		var paymentRequired *api.PaymentRequiredError
		if errors.As(err, &paymentRequired) && !GetJSONOutput() {
			output.PrintPaymentOptions(paymentRequired.Options)
		}
		return err
	}

	result.Transaction = receipt.Transaction
	result.TransactionURL = explorerURL(choice, cfg, receipt.Transaction)

	if GetJSONOutput() {
		return output.PrintJSON(result)
	}
	if !output.IsTTY() {
		return output.PrintJSONCompact(result)
	}
	output.PrintPaymentResult(result)
	return nil
}
