package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/port402/socialpay-cli/internal/pay"
)

// Settler completes an on-chain payment demanded by a 402 response. The
// production implementation comes from the external payment SDK; tests
// substitute a fake so no real keys or networks are touched.
type Settler interface {
	// Satisfy signs and settles one of the accepted options and returns the
	// header to attach to the retried request.
	Satisfy(ctx context.Context, required *PaymentRequired) (header, value string, err error)

	// DecodeReceipt extracts the settlement receipt from a successful
	// response, if the server attached one. A nil receipt with nil error
	// means no settlement information was present.
	DecodeReceipt(resp *http.Response) (*Receipt, error)
}

// Client talks to the hosted payment API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	settler    Settler
}

// Option configures the Client.
type Option func(*Client)

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithSettler attaches the on-chain payment collaborator. Without one, a 402
// response surfaces its payment options as a PaymentRequiredError.
func WithSettler(settler Settler) Option {
	return func(c *Client) {
		c.settler = settler
	}
}

// New creates a Client for the given resource server base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pay submits a single validated payment instruction.
func (c *Client) Pay(ctx context.Context, instruction pay.PaymentInstruction) (*Receipt, error) {
	body := PayRequest{
		Amount:      instruction.Amount,
		Currency:    USDCCurrency,
		Receiver:    instruction.Receiver,
		Description: instruction.Description,
	}

	var receipt Receipt
	settlement, err := c.postJSON(ctx, fmt.Sprintf("/payments/%s/pay", instruction.Platform), body, &receipt)
	if err != nil {
		return nil, err
	}
	mergeSettlement(&receipt, settlement)
	return &receipt, nil
}

// BatchPay submits one batch descriptor as a single batch-pay call.
func (c *Client) BatchPay(ctx context.Context, descriptor pay.BatchDescriptor, senderUsername string) (*Receipt, error) {
	receivers := make([]BatchReceiver, len(descriptor.Payments))
	for i, p := range descriptor.Payments {
		receivers[i] = BatchReceiver{Receiver: p.Receiver, Amount: p.Amount}
	}

	body := BatchPayRequest{
		Currency:       USDCCurrency,
		Type:           "social-network",
		SenderUsername: senderUsername,
		Receivers:      receivers,
	}

	var receipt Receipt
	settlement, err := c.postJSON(ctx, fmt.Sprintf("/payments/%s/batch-pay", descriptor.Platform), body, &receipt)
	if err != nil {
		return nil, err
	}
	mergeSettlement(&receipt, settlement)
	return &receipt, nil
}

// CreateCampaign creates a pre-funded cookie campaign.
func (c *Client) CreateCampaign(ctx context.Context, platform pay.Platform, request CampaignRequest) (*CampaignRecord, error) {
	var record CampaignRecord
	if _, err := c.postJSON(ctx, fmt.Sprintf("/campaigns/%s/create", platform), request, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// postJSON performs one POST, transparently satisfying a single 402 round
// when a settler is configured. The settlement receipt, if any, is returned
// alongside the decoded response body.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) (*Receipt, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	// One idempotency key per logical operation, reused across the 402 retry.
	idempotencyKey := uuid.NewString()

	resp, err := c.doPost(ctx, path, payload, idempotencyKey, "", "")
	if err != nil {
		return nil, &RemoteRequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		required, err := decodePaymentRequired(resp)
		if err != nil {
			return nil, err
		}
		resp.Body.Close()

		if c.settler == nil {
			return nil, &PaymentRequiredError{Message: required.Error, Options: required.Accepts}
		}

		header, value, err := c.settler.Satisfy(ctx, required)
		if err != nil {
			return nil, fmt.Errorf("payment settlement failed: %w", err)
		}

		resp, err = c.doPost(ctx, path, payload, idempotencyKey, header, value)
		if err != nil {
			return nil, &RemoteRequestError{Err: err}
		}
		defer resp.Body.Close()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, remoteError(resp)
	}

	var settlement *Receipt
	if c.settler != nil {
		settlement, _ = c.settler.DecodeReceipt(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteRequestError{Err: err}
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return nil, &RemoteRequestError{Status: resp.StatusCode, Message: "invalid response body", Err: err}
		}
	}
	return settlement, nil
}

func (c *Client) doPost(ctx context.Context, path string, payload []byte, idempotencyKey, paymentHeader, paymentValue string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)
	if paymentHeader != "" {
		req.Header.Set(paymentHeader, paymentValue)
	}
	return c.httpClient.Do(req)
}

// decodePaymentRequired parses the accepts[] body of a 402 response.
func decodePaymentRequired(resp *http.Response) (*PaymentRequired, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteRequestError{Status: resp.StatusCode, Err: err}
	}

	var required PaymentRequired
	if err := json.Unmarshal(data, &required); err != nil {
		return nil, &RemoteRequestError{Status: resp.StatusCode, Message: "invalid 402 body", Err: err}
	}
	if len(required.Accepts) == 0 {
		return nil, &RemoteRequestError{Status: resp.StatusCode, Message: "402 response with no payment options in accepts[]"}
	}
	return &required, nil
}

// remoteError builds a RemoteRequestError from a non-2xx response,
// preferring the server's error message.
func remoteError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	message := ""
	if json.Unmarshal(data, &body) == nil {
		if body.Error != "" {
			message = body.Error
		} else {
			message = body.Message
		}
	}
	return &RemoteRequestError{Status: resp.StatusCode, Message: message}
}

func mergeSettlement(receipt *Receipt, settlement *Receipt) {
	if settlement == nil {
		return
	}
	if receipt.Transaction == "" {
		receipt.Transaction = settlement.Transaction
	}
	if receipt.Network == "" {
		receipt.Network = settlement.Network
	}
}
