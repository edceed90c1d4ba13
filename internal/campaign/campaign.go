// Package campaign validates cookie-campaign descriptors and computes their
// funding cost. A cookie campaign is a sponsor-funded pool of fixed-size
// USDC payouts distributed to platform users.
package campaign

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/port402/socialpay-cli/internal/pay"
)

// Field bounds, all inclusive.
const (
	NameMinLen        = 3
	NameMaxLen        = 100
	DescriptionMinLen = 10
	DescriptionMaxLen = 500
	MinCookies        = 3
	MaxCookies        = 10
	SponsorNameMaxLen = 100
	SponsorHandleMax  = 50
)

// Sponsor funds the campaign.
type Sponsor struct {
	Name   string
	Handle string
	URL    string
}

// Descriptor is a validated campaign-creation request.
type Descriptor struct {
	Platform     pay.Platform
	Name         string
	Description  string
	TotalCookies int
	Sponsor      Sponsor
}

// ValidationError aggregates every field violation found in one descriptor.
// Validation never stops at the first problem.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid campaign: %s", strings.Join(e.Violations, "; "))
}

// Validate checks a raw descriptor field by field and either returns it
// unchanged or reports every violation in one aggregate error.
func Validate(raw Descriptor) (*Descriptor, error) {
	var violations []string

	if raw.Platform != pay.PlatformX && raw.Platform != pay.PlatformFarcaster {
		violations = append(violations, fmt.Sprintf("platform must be %s or %s, got %q", pay.PlatformX, pay.PlatformFarcaster, raw.Platform))
	}
	if n := len(raw.Name); n < NameMinLen || n > NameMaxLen {
		violations = append(violations, fmt.Sprintf("name must be %d-%d characters, got %d", NameMinLen, NameMaxLen, n))
	}
	if n := len(raw.Description); n < DescriptionMinLen || n > DescriptionMaxLen {
		violations = append(violations, fmt.Sprintf("description must be %d-%d characters, got %d", DescriptionMinLen, DescriptionMaxLen, n))
	}
	if raw.TotalCookies < MinCookies || raw.TotalCookies > MaxCookies {
		violations = append(violations, fmt.Sprintf("totalCookies must be between %d and %d, got %d", MinCookies, MaxCookies, raw.TotalCookies))
	}
	if n := len(raw.Sponsor.Name); n < 1 || n > SponsorNameMaxLen {
		violations = append(violations, fmt.Sprintf("sponsor name must be 1-%d characters, got %d", SponsorNameMaxLen, n))
	}
	if n := len(raw.Sponsor.Handle); n < 1 || n > SponsorHandleMax {
		violations = append(violations, fmt.Sprintf("sponsor handle must be 1-%d characters, got %d", SponsorHandleMax, n))
	}
	if raw.Sponsor.URL != "" {
		if u, err := url.Parse(raw.Sponsor.URL); err != nil || !u.IsAbs() || u.Host == "" {
			violations = append(violations, fmt.Sprintf("sponsor url %q is not a well-formed absolute URL", raw.Sponsor.URL))
		}
	}

	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	return &raw, nil
}
