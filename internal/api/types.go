// Package api is the client for the hosted payment API. The API gates its
// operations behind HTTP 402 responses; completing the demanded on-chain
// payment is delegated to a Settler.
package api

import "github.com/shopspring/decimal"

// USDCCurrency is the only currency the payment API deals in.
const USDCCurrency = "USDC"

// PayRequest is the body of POST /payments/{platform}/pay.
type PayRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Receiver    string          `json:"receiver"`
	Description string          `json:"description,omitempty"`
}

// BatchReceiver is one receiver/amount entry of a batch-pay body.
type BatchReceiver struct {
	Receiver string          `json:"receiver"`
	Amount   decimal.Decimal `json:"amount"`
}

// BatchPayRequest is the body of POST /payments/{platform}/batch-pay.
type BatchPayRequest struct {
	Currency       string          `json:"currency"`
	Type           string          `json:"type"`
	SenderUsername string          `json:"sender_username"`
	Receivers      []BatchReceiver `json:"receivers"`
}

// Sponsor is the sponsor sub-object of a campaign-creation body.
type Sponsor struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
	URL    string `json:"url,omitempty"`
}

// CampaignRequest is the body of POST /campaigns/{platform}/create.
type CampaignRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	TotalCookies int     `json:"totalCookies"`
	Sponsor      Sponsor `json:"sponsor"`
}

// PaymentOption is one entry of a 402 response's accepts[] array.
type PaymentOption struct {
	Network string `json:"network"`
	PayTo   string `json:"payTo"`
}

// PaymentRequired is the decoded body of a 402 response.
type PaymentRequired struct {
	Error   string          `json:"error,omitempty"`
	Accepts []PaymentOption `json:"accepts"`
}

// Receipt is returned by the payment API after a successful operation.
// Network and Transaction describe the on-chain settlement when the
// operation required one.
type Receipt struct {
	Success     bool   `json:"success"`
	Transaction string `json:"transaction,omitempty"`
	Network     string `json:"network,omitempty"`
	Message     string `json:"message,omitempty"`
}

// CampaignRecord is the created campaign returned by the API.
type CampaignRecord struct {
	ID           string `json:"id"`
	Platform     string `json:"platform"`
	Name         string `json:"name"`
	TotalCookies int    `json:"totalCookies"`
	Status       string `json:"status,omitempty"`
	URL          string `json:"url,omitempty"`
}
