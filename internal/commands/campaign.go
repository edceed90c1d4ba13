package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/port402/socialpay-cli/internal/api"
	"github.com/port402/socialpay-cli/internal/campaign"
	"github.com/port402/socialpay-cli/internal/config"
	"github.com/port402/socialpay-cli/internal/output"
	"github.com/port402/socialpay-cli/internal/pay"
)

// Campaign create flags
var (
	campaignPlatform      string
	campaignName          string
	campaignDescription   string
	campaignCookies       int
	campaignSponsorName   string
	campaignSponsorHandle string
	campaignSponsorURL    string
	campaignNetwork       string
	campaignYes           bool
)

var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Manage engagement campaigns",
	Long: `Campaigns pre-fund a pool of cookie rewards that engaged users can claim.
Each cookie costs a fixed amount of USDC, paid up front when the campaign
is created. Campaigns run on X or Farcaster.`,
}

var campaignCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a pre-funded cookie campaign",
	Long: `Create a campaign. The total cost is cookies × the unit cookie price,
charged through the payment API when the campaign is created.

Examples:
  socialpay campaign create --platform x --name "Launch week" \
    --description "Reward early adopters with cookies" --cookies 5 \
    --sponsor-name "Acme" --sponsor-handle acme`,
	Args: cobra.NoArgs,
	RunE: runCampaignCreate,
}

func init() {
	campaignCreateCmd.Flags().StringVar(&campaignPlatform, "platform", "", "Campaign platform: x or farcaster")
	campaignCreateCmd.Flags().StringVar(&campaignName, "name", "", "Campaign name")
	campaignCreateCmd.Flags().StringVar(&campaignDescription, "description", "", "Campaign description")
	campaignCreateCmd.Flags().IntVar(&campaignCookies, "cookies", 0, "Total cookies to fund")
	campaignCreateCmd.Flags().StringVar(&campaignSponsorName, "sponsor-name", "", "Sponsor display name")
	campaignCreateCmd.Flags().StringVar(&campaignSponsorHandle, "sponsor-handle", "", "Sponsor handle on the campaign platform")
	campaignCreateCmd.Flags().StringVar(&campaignSponsorURL, "sponsor-url", "", "Sponsor website (optional)")
	campaignCreateCmd.Flags().StringVar(&campaignNetwork, "network", "", "Settlement network: base or solana")
	campaignCreateCmd.Flags().BoolVarP(&campaignYes, "yes", "y", false, "Skip the confirmation prompt")

	campaignCmd.AddCommand(campaignCreateCmd)
	rootCmd.AddCommand(campaignCmd)
}

func runCampaignCreate(cmd *cobra.Command, args []string) error {
	// An unknown platform resolves to "" and surfaces as a validation
	// violation below, aggregated with any other field problems.
	platform, _ := pay.ResolvePlatform(campaignPlatform)

	descriptor, err := campaign.Validate(campaign.Descriptor{
		Platform:     platform,
		Name:         campaignName,
		Description:  campaignDescription,
		TotalCookies: campaignCookies,
		Sponsor: campaign.Sponsor{
			Name:   campaignSponsorName,
			Handle: campaignSponsorHandle,
			URL:    campaignSponsorURL,
		},
	})
	if err != nil {
		return err
	}

	cfg := config.Load()
	choice, err := resolveNetwork(campaignNetwork, cfg)
	if err != nil {
		return err
	}

	cost := campaign.Cost(descriptor, campaign.StaticPricing{})

	result := &output.CampaignResult{
		Platform: string(descriptor.Platform),
		Name:     descriptor.Name,
		Cookies:  descriptor.TotalCookies,
		Cost:     cost.String(),
	}

	if !campaignYes && output.IsTTY() {
		prompt := fmt.Sprintf("Fund %d cookies for %s USDC on %s?",
			descriptor.TotalCookies, cost.String(), choice)
		if !output.PromptConfirm(prompt) {
			fmt.Println("Cancelled by user. No campaign was created.")
			return nil
		}
	}

	sent := false
	watchInterrupt(&sent)

	sent = true
	record, err := newClient(cfg).CreateCampaign(cmd.Context(), descriptor.Platform, api.CampaignRequest{
		Name:         descriptor.Name,
		Description:  descriptor.Description,
		TotalCookies: descriptor.TotalCookies,
		Sponsor: api.Sponsor{
			Name:   descriptor.Sponsor.Name,
			Handle: descriptor.Sponsor.Handle,
			URL:    descriptor.Sponsor.URL,
		},
	})
	if err != nil {
		var paymentRequired *api.PaymentRequiredError
		if errors.As(err, &paymentRequired) && !GetJSONOutput() {
			output.PrintPaymentOptions(paymentRequired.Options)
		}
		return err
	}

	result.ID = record.ID
	result.Status = record.Status
	result.URL = record.URL

	if GetJSONOutput() {
		return output.PrintJSON(result)
	}
	output.PrintCampaignResult(result)
	return nil
}
