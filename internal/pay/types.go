// Package pay implements parsing and normalization of human-facing payment
// descriptors: amount notations, platform aliases, receiver handles, single
// payment targets, and batch specifications.
package pay

import "github.com/shopspring/decimal"

// Platform is a canonical social platform identity.
type Platform string

const (
	PlatformX         Platform = "x"
	PlatformFarcaster Platform = "farcaster"
	PlatformGitHub    Platform = "github"
	PlatformEmail     Platform = "email"
	PlatformWeb       Platform = "web"
)

// Platforms returns every canonical platform in display order.
func Platforms() []Platform {
	return []Platform{PlatformX, PlatformFarcaster, PlatformGitHub, PlatformEmail, PlatformWeb}
}

// PaymentInstruction is a fully validated payment ready to submit.
// Amount is always USDC, kept at the precision it was parsed with.
type PaymentInstruction struct {
	Platform    Platform
	Receiver    string
	Amount      decimal.Decimal
	Description string
}

// BatchPayment is one receiver/amount entry of a batch descriptor.
type BatchPayment struct {
	Receiver string
	Amount   decimal.Decimal
}

// BatchDescriptor is one platform plus an ordered list of payments.
// A single batch call targets exactly one platform.
type BatchDescriptor struct {
	Platform Platform
	Payments []BatchPayment
}
