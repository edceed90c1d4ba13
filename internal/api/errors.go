package api

import (
	"fmt"
	"strings"
)

// PaymentRequiredError is a structured 402 outcome: the server will perform
// the operation once one of the accepted payment options is satisfied. The
// options are surfaced to the user when no settler completes the payment.
type PaymentRequiredError struct {
	Message string
	Options []PaymentOption
}

func (e *PaymentRequiredError) Error() string {
	var b strings.Builder
	if e.Message != "" {
		b.WriteString(e.Message)
	} else {
		b.WriteString("payment required")
	}
	b.WriteString(" (accepted:")
	for _, opt := range e.Options {
		fmt.Fprintf(&b, " %s→%s", opt.Network, opt.PayTo)
	}
	b.WriteString(")")
	return b.String()
}

// RemoteRequestError wraps any non-2xx or transport failure from the payment
// API, preferring the server-provided message when present.
type RemoteRequestError struct {
	Status  int
	Message string
	Err     error
}

func (e *RemoteRequestError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("payment API error: %s", e.Message)
	case e.Status != 0:
		return fmt.Sprintf("payment API error: status %d", e.Status)
	default:
		return fmt.Sprintf("payment API request failed: %v", e.Err)
	}
}

func (e *RemoteRequestError) Unwrap() error {
	return e.Err
}
