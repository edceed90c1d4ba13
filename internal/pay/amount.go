package pay

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CentsSign terminates the cents notation: "5¢" is 0.05 USDC.
const CentsSign = "¢"

// ParseAmount converts a user-supplied amount token into a USDC quantity.
//
// Three notations are recognized, tried in this order:
//
//	5¢      cents suffix, value divided by 100
//	$0.50   dollar prefix with a fractional part
//	0.05    plain decimal
//
// A dollar-prefixed bare integer such as $1 is rejected: most shells expand
// $1 to a positional parameter before the CLI ever sees it, so the token is
// probably not what the user typed. The error suggests the cents notation.
func ParseAmount(raw string) (decimal.Decimal, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return decimal.Zero, &InvalidAmountError{Raw: raw}
	}

	// Cents notation
	if prefix, found := strings.CutSuffix(token, CentsSign); found {
		cents, err := decimal.NewFromString(prefix)
		if err != nil || cents.IsNegative() {
			return decimal.Zero, &InvalidAmountError{Raw: raw}
		}
		return cents.Shift(-2), nil
	}

	// Dollar notation
	if rest, found := strings.CutPrefix(token, "$"); found {
		value, err := decimal.NewFromString(rest)
		if err != nil || value.IsNegative() {
			return decimal.Zero, &InvalidAmountError{Raw: raw}
		}
		if !strings.Contains(rest, ".") {
			return decimal.Zero, &InvalidAmountError{
				Raw: raw,
				Reason: fmt.Sprintf("$%s is expanded by the shell before the CLI sees it; quote it or write %s%s instead",
					rest, value.Shift(2), CentsSign),
			}
		}
		return value, nil
	}

	// Plain decimal
	value, err := decimal.NewFromString(token)
	if err != nil || value.IsNegative() {
		return decimal.Zero, &InvalidAmountError{Raw: raw}
	}
	return value, nil
}

// AmountFromJSON normalizes a batch amount field, which may be a JSON number
// or a string in any ParseAmount notation. Numbers pass through at their
// literal precision; no float conversion happens.
func AmountFromJSON(raw json.RawMessage) (decimal.Decimal, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ParseAmount(s)
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		value, err := decimal.NewFromString(n.String())
		if err != nil || value.IsNegative() {
			return decimal.Zero, &InvalidAmountError{Raw: n.String()}
		}
		return value, nil
	}

	return decimal.Zero, &InvalidAmountError{Raw: string(raw)}
}
