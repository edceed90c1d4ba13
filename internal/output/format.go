package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/port402/socialpay-cli/internal/api"
)

// PaymentResult contains the complete result of a single payment.
type PaymentResult struct {
	Platform       string `json:"platform"`
	Receiver       string `json:"receiver"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	Description    string `json:"description,omitempty"`
	Network        string `json:"network"`
	Transaction    string `json:"transaction,omitempty"`
	TransactionURL string `json:"transactionUrl,omitempty"`
	DryRun         bool   `json:"dryRun,omitempty"`
	ExitCode       int    `json:"exitCode"`
	Error          string `json:"error,omitempty"`
}

// BatchResult contains the result of a batch payment.
type BatchResult struct {
	Platform       string   `json:"platform"`
	Receivers      []string `json:"receivers"`
	Total          string   `json:"total"`
	Currency       string   `json:"currency"`
	Network        string   `json:"network"`
	Transaction    string   `json:"transaction,omitempty"`
	TransactionURL string   `json:"transactionUrl,omitempty"`
	DryRun         bool     `json:"dryRun,omitempty"`
	ExitCode       int      `json:"exitCode"`
	Error          string   `json:"error,omitempty"`
}

// CampaignResult contains the result of a campaign creation.
type CampaignResult struct {
	ID       string `json:"id,omitempty"`
	Platform string `json:"platform"`
	Name     string `json:"name"`
	Cookies  int    `json:"cookies"`
	Cost     string `json:"cost"`
	Status   string `json:"status,omitempty"`
	URL      string `json:"url,omitempty"`
	ExitCode int    `json:"exitCode"`
	Error    string `json:"error,omitempty"`
}

// PrintPaymentResult outputs a payment result in human-readable format.
func PrintPaymentResult(result *PaymentResult) {
	if result.Error != "" {
		fmt.Println("✗ Payment failed")
	} else if result.DryRun {
		fmt.Println("• Dry run complete")
	} else {
		fmt.Println("✓ Payment sent")
	}

	fmt.Println()
	fmt.Printf("  To:       %s/%s\n", result.Platform, result.Receiver)
	fmt.Printf("  Amount:   %s %s\n", result.Amount, result.Currency)
	if result.Description != "" {
		fmt.Printf("  Note:     %s\n", truncateText(result.Description, 60))
	}
	fmt.Printf("  Network:  %s\n", result.Network)

	if result.Transaction != "" {
		fmt.Printf("  TxHash:   %s\n", result.Transaction)
		if result.TransactionURL != "" {
			fmt.Printf("  View:     %s\n", result.TransactionURL)
		}
	}

	if result.DryRun {
		fmt.Println()
		fmt.Println("No payment was made (dry run)")
	}

	if result.Error != "" {
		fmt.Println()
		fmt.Printf("Error: %s\n", result.Error)
	}
}

// PrintBatchResult outputs a batch payment result in human-readable format.
func PrintBatchResult(result *BatchResult) {
	if result.Error != "" {
		fmt.Println("✗ Batch payment failed")
	} else if result.DryRun {
		fmt.Println("• Dry run complete")
	} else {
		fmt.Println("✓ Batch payment sent")
	}

	fmt.Println()
	fmt.Printf("  Platform: %s\n", result.Platform)
	fmt.Printf("  Payees:   %d\n", len(result.Receivers))
	fmt.Printf("  Total:    %s %s\n", result.Total, result.Currency)
	fmt.Printf("  Network:  %s\n", result.Network)

	if result.Transaction != "" {
		fmt.Printf("  TxHash:   %s\n", result.Transaction)
		if result.TransactionURL != "" {
			fmt.Printf("  View:     %s\n", result.TransactionURL)
		}
	}

	if result.DryRun {
		fmt.Println()
		fmt.Println("No payments were made (dry run)")
	}

	if result.Error != "" {
		fmt.Println()
		fmt.Printf("Error: %s\n", result.Error)
	}
}

// PrintCampaignResult outputs a campaign creation result in human-readable format.
func PrintCampaignResult(result *CampaignResult) {
	if result.Error != "" {
		fmt.Println("✗ Campaign creation failed")
	} else {
		fmt.Println("✓ Campaign created")
	}

	fmt.Println()
	if result.ID != "" {
		fmt.Printf("  ID:       %s\n", result.ID)
	}
	fmt.Printf("  Platform: %s\n", result.Platform)
	fmt.Printf("  Name:     %s\n", result.Name)
	fmt.Printf("  Cookies:  %d\n", result.Cookies)
	fmt.Printf("  Cost:     %s USDC\n", result.Cost)
	if result.Status != "" {
		fmt.Printf("  Status:   %s\n", result.Status)
	}
	if result.URL != "" {
		fmt.Printf("  View:     %s\n", result.URL)
	}

	if result.Error != "" {
		fmt.Println()
		fmt.Printf("Error: %s\n", result.Error)
	}
}

// PrintPaymentOptions lists the settlement options a server offered, for the
// case where no wallet is configured to satisfy them.
func PrintPaymentOptions(options []api.PaymentOption) {
	fmt.Println()
	fmt.Println("  The server requires payment. Accepted options:")
	for i, opt := range options {
		fmt.Printf("    [%d] %s → %s\n", i+1, opt.Network, opt.PayTo)
	}
}

// PrintError outputs an error message to stderr.
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// PrintWarning outputs a warning message to stderr.
func PrintWarning(msg string) {
	fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
}

// PrintInfo outputs an info message to stderr (for TTY vs pipe awareness).
func PrintInfo(msg string) {
	fmt.Fprintf(os.Stderr, "%s\n", msg)
}

// PromptConfirm prompts the user for yes/no confirmation.
// Returns true if user enters y/Y/yes.
func PromptConfirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)

	var response string
	fmt.Scanln(&response)

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// truncateText truncates a string to maxLen characters, adding "..." if truncated.
func truncateText(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return s[:maxLen-3] + "..."
}
