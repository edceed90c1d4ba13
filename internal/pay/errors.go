package pay

import (
	"fmt"
	"strings"
)

// InvalidAmountError reports an amount token that matches no recognized notation.
type InvalidAmountError struct {
	Raw    string
	Reason string
}

func (e *InvalidAmountError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid amount %q: %s", e.Raw, e.Reason)
	}
	return fmt.Sprintf("invalid amount %q (use cents like 5¢, dollars like $0.50, or a decimal like 0.05)", e.Raw)
}

// UnknownPlatformError reports a platform token with no canonical identity.
type UnknownPlatformError struct {
	Raw string
}

func (e *UnknownPlatformError) Error() string {
	return fmt.Sprintf("unknown platform %q (accepted: %s)", e.Raw, strings.Join(acceptedAliases(), ", "))
}

// InvalidReceiverError reports a receiver handle that violates its platform grammar.
type InvalidReceiverError struct {
	Platform Platform
	Raw      string
	Rule     string
}

func (e *InvalidReceiverError) Error() string {
	return fmt.Sprintf("invalid %s receiver %q: %s", e.Platform, e.Raw, e.Rule)
}

// MalformedTargetError reports a descriptor that is not platform/receiver shaped.
type MalformedTargetError struct {
	Raw string
}

func (e *MalformedTargetError) Error() string {
	return fmt.Sprintf("malformed target %q: expected exactly one '/' separating platform and receiver", e.Raw)
}

// BatchParseError names the offending batch source and why parsing failed.
type BatchParseError struct {
	Source string
	Reason string
	Err    error
}

func (e *BatchParseError) Error() string {
	msg := fmt.Sprintf("batch descriptor %s: %s", e.Source, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *BatchParseError) Unwrap() error {
	return e.Err
}
