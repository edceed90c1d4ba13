package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/port402/socialpay-cli/internal/agent"
	"github.com/port402/socialpay-cli/internal/api"
	"github.com/port402/socialpay-cli/internal/config"
	"github.com/port402/socialpay-cli/internal/output"
)

// Agent command flags
var (
	agentNetwork string
	agentDryRun  bool
	agentYes     bool
)

var agentCmd = &cobra.Command{
	Use:   "agent <prompt>",
	Short: "Turn a natural-language request into payments",
	Long: `Extract payment instructions from a natural-language prompt and send them.

With OPENAI_API_KEY or GEMINI_API_KEY configured, a language model does the
extraction. Without a key, a small set of phrase templates is used instead;
these understand forms like:

  send 0.5 USDC to @alice on farcaster
  pay @octocat 1 USDC on github
  tip @bob on x 0.25 USDC

Every extracted payment is shown before anything is sent.

Examples:
  socialpay agent "send 0.5 USDC to @alice on farcaster"
  socialpay agent "pay @octocat 1 USDC on github and @bob 0.5 USDC on x" --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runAgent,
}

func init() {
	agentCmd.Flags().StringVar(&agentNetwork, "network", "", "Settlement network: base or solana")
	agentCmd.Flags().BoolVar(&agentDryRun, "dry-run", false, "Show extracted payments without sending them")
	agentCmd.Flags().BoolVarP(&agentYes, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(agentCmd)
}

func runAgent(cmd *cobra.Command, args []string) error {
	prompt := strings.TrimSpace(args[0])
	ctx := cmd.Context()

	cfg := config.Load()
	choice, err := resolveNetwork(agentNetwork, cfg)
	if err != nil {
		return err
	}

	model, err := agent.NewModel(ctx, cfg)
	if err != nil {
		return err
	}
	if GetVerbose() && !GetJSONOutput() {
		if model != nil {
			fmt.Fprintf(os.Stderr, "• Extracting with %s...\n", model.Name())
		} else {
			fmt.Fprintln(os.Stderr, "• No model key configured, using phrase templates...")
		}
	}

	extractor := &agent.Extractor{Model: model}
	instructions := extractor.Extract(ctx, prompt)
	if len(instructions) == 0 {
		return fmt.Errorf("nothing understood from the prompt; try a form like %q",
			"send 0.5 USDC to @alice on farcaster")
	}

	// Show the plan before sending anything.
	if !GetJSONOutput() {
		fmt.Printf("Understood %d payment(s):\n", len(instructions))
		for i, instruction := range instructions {
			fmt.Printf("  [%d] %s USDC → %s/%s\n", i+1,
				instruction.Amount.String(), instruction.Platform, instruction.Receiver)
		}
		fmt.Println()
	}

	if agentDryRun {
		if GetJSONOutput() {
			planned := make([]*output.PaymentResult, len(instructions))
			for i, instruction := range instructions {
				planned[i] = &output.PaymentResult{
					Platform:    string(instruction.Platform),
					Receiver:    instruction.Receiver,
					Amount:      instruction.Amount.String(),
					Currency:    api.USDCCurrency,
					Description: instruction.Description,
					Network:     string(choice),
					DryRun:      true,
				}
			}
			return output.PrintJSON(planned)
		}
		fmt.Println("No payments were made (dry run)")
		return nil
	}

	if !agentYes && output.IsTTY() {
		if !output.PromptConfirm(fmt.Sprintf("Send %d payment(s) on %s?", len(instructions), choice)) {
			fmt.Println("Cancelled by user. No payments were made.")
			return nil
		}
	}

	sent := false
	watchInterrupt(&sent)

	// Payments go out one at a time; the first failure stops the run so the
	// user can see exactly how far it got.
	client := newClient(cfg)
	results := make([]*output.PaymentResult, 0, len(instructions))
	for i, instruction := range instructions {
		sent = true
		receipt, err := client.Pay(ctx, instruction)
		if err != nil {
			var paymentRequired *api.PaymentRequiredError
			if errors.As(err, &paymentRequired) && !GetJSONOutput() {
				output.PrintPaymentOptions(paymentRequired.Options)
			}
			if !GetJSONOutput() {
				output.PrintError(fmt.Errorf("payment %d of %d (%s/%s): %w",
					i+1, len(instructions), instruction.Platform, instruction.Receiver, err))
			}
			printAgentResults(results)
			return fmt.Errorf("stopped after %d of %d payments", len(results), len(instructions))
		}

		result := &output.PaymentResult{
			Platform:       string(instruction.Platform),
			Receiver:       instruction.Receiver,
			Amount:         instruction.Amount.String(),
			Currency:       api.USDCCurrency,
			Description:    instruction.Description,
			Network:        string(choice),
			Transaction:    receipt.Transaction,
			TransactionURL: explorerURL(choice, cfg, receipt.Transaction),
		}
		results = append(results, result)

		if GetVerbose() && !GetJSONOutput() {
			fmt.Fprintf(os.Stderr, "• Sent %d of %d\n", i+1, len(instructions))
		}
	}

	printAgentResults(results)
	return nil
}

func printAgentResults(results []*output.PaymentResult) {
	if GetJSONOutput() {
		output.PrintJSON(results)
		return
	}
	for _, result := range results {
		output.PrintPaymentResult(result)
		fmt.Println()
	}
}
