package agent

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/port402/socialpay-cli/internal/pay"
)

// systemInstruction constrains the model to emit machine-readable output.
const systemInstruction = `You translate natural-language payment requests into structured data.
Respond with ONLY a JSON array. Each element is an object with these fields:
  "receiver": string, the handle without any leading @
  "amount": number, the USDC amount
  "platform": string, one of: x, farcaster, github, email, web
  "description": string, optional free-text note
If the request mentions Twitter, use platform "x". Do not include any prose,
explanation, or markdown outside the JSON array.`

// Extractor turns a free-text prompt into payment instructions.
// A nil Model means only the phrase templates are used.
type Extractor struct {
	Model Model
}

// Extract returns every payment instruction found in the prompt. An empty
// result means nothing was understood; that is a caller-visible outcome,
// not an error. Any model failure, unparseable response, or invalid record
// silently falls back to the phrase templates.
func (e *Extractor) Extract(ctx context.Context, prompt string) []pay.PaymentInstruction {
	if e.Model != nil {
		if instructions, ok := e.extractWithModel(ctx, prompt); ok {
			return instructions
		}
	}
	return templateExtract(prompt)
}

// modelRecord is one element of the JSON array a model emits. Amount stays
// raw: models emit numbers, but a notation string is tolerated.
type modelRecord struct {
	Receiver    string          `json:"receiver"`
	Amount      json.RawMessage `json:"amount"`
	Platform    string          `json:"platform"`
	Description string          `json:"description,omitempty"`
}

func (e *Extractor) extractWithModel(ctx context.Context, prompt string) ([]pay.PaymentInstruction, bool) {
	text, err := e.Model.Complete(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, false
	}

	records, ok := firstJSONArray(text)
	if !ok {
		return nil, false
	}

	instructions := make([]pay.PaymentInstruction, 0, len(records))
	for _, record := range records {
		instruction, err := record.normalize()
		if err != nil {
			return nil, false
		}
		instructions = append(instructions, instruction)
	}
	return instructions, true
}

func (r modelRecord) normalize() (pay.PaymentInstruction, error) {
	platform, err := pay.ResolvePlatform(r.Platform)
	if err != nil {
		return pay.PaymentInstruction{}, err
	}

	receiver := strings.TrimPrefix(strings.TrimSpace(r.Receiver), "@")
	if err := pay.ValidateReceiver(platform, receiver); err != nil {
		return pay.PaymentInstruction{}, err
	}

	amount, err := pay.AmountFromJSON(r.Amount)
	if err != nil {
		return pay.PaymentInstruction{}, err
	}

	return pay.PaymentInstruction{
		Platform:    platform,
		Receiver:    receiver,
		Amount:      amount,
		Description: strings.TrimSpace(r.Description),
	}, nil
}

// firstJSONArray finds the first well-formed bracketed JSON array in the
// text, tolerating surrounding prose and markdown fencing.
func firstJSONArray(text string) ([]modelRecord, bool) {
	for i := 0; i < len(text); i++ {
		if text[i] != '[' {
			continue
		}
		var records []modelRecord
		decoder := json.NewDecoder(strings.NewReader(text[i:]))
		if err := decoder.Decode(&records); err == nil {
			return records, true
		}
	}
	return nil, false
}

// Phrase templates for the no-model fallback. Each captures receiver,
// amount, and platform in some order.
var (
	sendToTemplate   = regexp.MustCompile(`(?i)\bsend\s+(\d+(?:\.\d+)?)\s*usdc\s+to\s+@([A-Za-z0-9_.+@-]+)\s+on\s+([A-Za-z][A-Za-z0-9.-]*)`)
	payTemplate      = regexp.MustCompile(`(?i)\bpay\s+@([A-Za-z0-9_.+@-]+)\s+(\d+(?:\.\d+)?)\s*usdc\s+on\s+([A-Za-z][A-Za-z0-9.-]*)`)
	onSuffixTemplate = regexp.MustCompile(`(?i)@([A-Za-z0-9_.+@-]+)\s+on\s+([A-Za-z][A-Za-z0-9.-]*)\s+(\d+(?:\.\d+)?)\s*usdc`)
)

// templateExtract scans the whole prompt with every template and collects
// all non-overlapping matches. Matches naming an unknown platform or an
// invalid receiver are dropped.
func templateExtract(prompt string) []pay.PaymentInstruction {
	var instructions []pay.PaymentInstruction

	collect := func(receiver, amountToken, platformToken string) {
		platform, err := pay.ResolvePlatform(strings.TrimRight(platformToken, "."))
		if err != nil {
			return
		}
		if err := pay.ValidateReceiver(platform, receiver); err != nil {
			return
		}
		amount, err := pay.ParseAmount(amountToken)
		if err != nil {
			return
		}
		instructions = append(instructions, pay.PaymentInstruction{
			Platform: platform,
			Receiver: receiver,
			Amount:   amount,
		})
	}

	for _, m := range sendToTemplate.FindAllStringSubmatch(prompt, -1) {
		collect(m[2], m[1], m[3])
	}
	for _, m := range payTemplate.FindAllStringSubmatch(prompt, -1) {
		collect(m[1], m[2], m[3])
	}
	for _, m := range onSuffixTemplate.FindAllStringSubmatch(prompt, -1) {
		collect(m[1], m[3], m[2])
	}

	return instructions
}
