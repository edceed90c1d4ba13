package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/port402/socialpay-cli/internal/api"
	"github.com/port402/socialpay-cli/internal/config"
	"github.com/port402/socialpay-cli/internal/output"
	"github.com/port402/socialpay-cli/internal/pay"
	"github.com/port402/socialpay-cli/internal/wallet"
)

// Batch command flags
var (
	batchNetwork string
	batchSender  string
	batchDryRun  bool
	batchYes     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <descriptor>",
	Short: "Send one payment batch from a descriptor",
	Long: `Send a batch of USDC payments on a single platform.

The descriptor is resolved in order: an http(s) URL is fetched, a path
ending in .json (or prefixed with file:) is read from disk, text starting
with { is parsed as an inline JSON document, anything else is the compact
form platform/receiver:amount,receiver:amount,...

The JSON document shape:
  {"platform": "x", "payments": [{"receiver": "alice", "amount": "0.05"}]}

Examples:
  socialpay batch "x/alice:0.05,bob:0.5"
  socialpay batch payroll.json
  socialpay batch https://example.com/payroll.json
  socialpay batch '{"platform":"github","payments":[{"receiver":"octocat","amount":1}]}'`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchNetwork, "network", "", "Settlement network: base or solana")
	batchCmd.Flags().StringVar(&batchSender, "sender", "", "Sender username reported to receivers (default: wallet address)")
	batchCmd.Flags().BoolVar(&batchDryRun, "dry-run", false, "Show the batch without sending it")
	batchCmd.Flags().BoolVarP(&batchYes, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(batchCmd)
}

// batchTotal sums every payment of a descriptor.
func batchTotal(descriptor *pay.BatchDescriptor) decimal.Decimal {
	total := decimal.Zero
	for _, p := range descriptor.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

func runBatch(cmd *cobra.Command, args []string) error {
	descriptor, err := pay.NewBatchParser().Parse(args[0])
	if err != nil {
		return err
	}

	cfg := config.Load()
	choice, err := resolveNetwork(batchNetwork, cfg)
	if err != nil {
		return err
	}

	sender := batchSender
	if sender == "" {
		address, err := senderAddress(choice, cfg)
		if err != nil {
			return err
		}
		sender = wallet.ShortAddress(address)
	}

	receivers := make([]string, len(descriptor.Payments))
	for i, p := range descriptor.Payments {
		receivers[i] = p.Receiver
	}

	result := &output.BatchResult{
		Platform:  string(descriptor.Platform),
		Receivers: receivers,
		Total:     batchTotal(descriptor).String(),
		Currency:  api.USDCCurrency,
		Network:   string(choice),
		DryRun:    batchDryRun,
	}

	if batchDryRun {
		if GetJSONOutput() {
			return output.PrintJSON(result)
		}
		output.PrintBatchResult(result)
		return nil
	}

	if !batchYes && output.IsTTY() {
		prompt := fmt.Sprintf("Send %s USDC to %d receivers on %s/%s?",
			result.Total, len(receivers), result.Platform, result.Network)
		if !output.PromptConfirm(prompt) {
			fmt.Println("Cancelled by user. No payments were made.")
			return nil
		}
	}

	sent := false
	watchInterrupt(&sent)

	if GetVerbose() && !GetJSONOutput() {
		fmt.Fprintf(os.Stderr, "• Sending batch of %d payments as %s...\n", len(receivers), sender)
	}

	sent = true
	receipt, err := newClient(cfg).BatchPay(cmd.Context(), *descriptor, sender)
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
	output.PrintBatchResult(result)
	return nil
}
