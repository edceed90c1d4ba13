package pay

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// batchDocument is the JSON wire form of a batch descriptor.
// Amounts stay raw until normalized: they may be numbers or notation strings.
type batchDocument struct {
	Platform string              `json:"platform"`
	Payments []batchPaymentEntry `json:"payments"`
}

type batchPaymentEntry struct {
	Receiver string          `json:"receiver"`
	Amount   json.RawMessage `json:"amount"`
}

// BatchParser parses batch payment specifications from their four input
// shapes: remote URL, local file, inline JSON object, and the compact
// comma-separated form.
type BatchParser struct {
	HTTPClient *http.Client
}

// NewBatchParser returns a parser with a default HTTP client.
func NewBatchParser() *BatchParser {
	return &BatchParser{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Parse sniffs the descriptor shape and produces one canonical
// BatchDescriptor. Parsing is all-or-nothing: any invalid entry fails the
// whole descriptor and nothing partial is returned.
func (p *BatchParser) Parse(descriptor string) (*BatchDescriptor, error) {
	s := strings.TrimSpace(descriptor)

	switch {
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return p.parseURL(s)
	case strings.HasPrefix(s, "file:"), strings.HasSuffix(s, ".json"):
		return p.parseFile(strings.TrimPrefix(s, "file:"))
	case strings.HasPrefix(s, "{"):
		return parseJSONDocument("inline JSON", []byte(s))
	default:
		return parseCompact(s)
	}
}

func (p *BatchParser) parseURL(url string) (*BatchDescriptor, error) {
	resp, err := p.HTTPClient.Get(url)
	if err != nil {
		return nil, &BatchParseError{Source: url, Reason: "unreachable URL", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &BatchParseError{Source: url, Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &BatchParseError{Source: url, Reason: "unreachable URL", Err: err}
	}
	return parseJSONDocument(url, body)
}

func (p *BatchParser) parseFile(path string) (*BatchDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &BatchParseError{Source: path, Reason: "unreadable file", Err: err}
	}
	return parseJSONDocument(path, data)
}

// parseJSONDocument validates a {platform, payments[]} object into a
// canonical descriptor.
func parseJSONDocument(source string, data []byte) (*BatchDescriptor, error) {
	var doc batchDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &BatchParseError{Source: source, Reason: "invalid JSON", Err: err}
	}

	if doc.Platform == "" {
		return nil, &BatchParseError{Source: source, Reason: `missing required field "platform"`}
	}
	if len(doc.Payments) == 0 {
		return nil, &BatchParseError{Source: source, Reason: `missing required field "payments"`}
	}

	platform, err := ResolvePlatform(doc.Platform)
	if err != nil {
		return nil, &BatchParseError{Source: source, Reason: "invalid platform", Err: err}
	}

	out := &BatchDescriptor{
		Platform: platform,
		Payments: make([]BatchPayment, 0, len(doc.Payments)),
	}
	for i, entry := range doc.Payments {
		if entry.Receiver == "" {
			return nil, &BatchParseError{Source: source, Reason: fmt.Sprintf(`payment %d: missing required field "receiver"`, i+1)}
		}
		if err := ValidateReceiver(platform, entry.Receiver); err != nil {
			return nil, &BatchParseError{Source: source, Reason: fmt.Sprintf("payment %d", i+1), Err: err}
		}
		if len(entry.Amount) == 0 {
			return nil, &BatchParseError{Source: source, Reason: fmt.Sprintf(`payment %d: missing required field "amount"`, i+1)}
		}
		amount, err := AmountFromJSON(entry.Amount)
		if err != nil {
			return nil, &BatchParseError{Source: source, Reason: fmt.Sprintf("payment %d", i+1), Err: err}
		}
		out.Payments = append(out.Payments, BatchPayment{Receiver: entry.Receiver, Amount: amount})
	}
	return out, nil
}

// parseCompact parses the platform/receiver1:amount1,receiver2:amount2 form.
// Each pair splits on its last colon, so receiver values must not contain one.
func parseCompact(s string) (*BatchDescriptor, error) {
	platformToken, rest, found := strings.Cut(s, "/")
	if !found || rest == "" {
		return nil, &BatchParseError{Source: s, Reason: "expected platform/receiver1:amount1,receiver2:amount2,..."}
	}

	platform, err := ResolvePlatform(platformToken)
	if err != nil {
		return nil, &BatchParseError{Source: s, Reason: "invalid platform", Err: err}
	}

	pairs := strings.Split(rest, ",")
	out := &BatchDescriptor{
		Platform: platform,
		Payments: make([]BatchPayment, 0, len(pairs)),
	}
	for _, pair := range pairs {
		idx := strings.LastIndex(pair, ":")
		if idx < 0 {
			return nil, &BatchParseError{Source: s, Reason: fmt.Sprintf("entry %q: expected receiver:amount", pair)}
		}
		receiver, amountToken := pair[:idx], pair[idx+1:]

		if err := ValidateReceiver(platform, receiver); err != nil {
			return nil, &BatchParseError{Source: s, Reason: fmt.Sprintf("entry %q", pair), Err: err}
		}
		amount, err := ParseAmount(amountToken)
		if err != nil {
			return nil, &BatchParseError{Source: s, Reason: fmt.Sprintf("entry %q", pair), Err: err}
		}
		out.Payments = append(out.Payments, BatchPayment{Receiver: receiver, Amount: amount})
	}
	return out, nil
}
