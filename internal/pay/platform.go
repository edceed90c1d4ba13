package pay

import (
	"regexp"
	"sort"
	"strings"
)

// platformAliases maps every accepted alias or domain spelling to its
// canonical platform. Lookup is case-insensitive.
var platformAliases = map[string]Platform{
	"x":             PlatformX,
	"x.com":         PlatformX,
	"twitter":       PlatformX,
	"twitter.com":   PlatformX,
	"farcaster":     PlatformFarcaster,
	"farcaster.xyz": PlatformFarcaster,
	"github":        PlatformGitHub,
	"github.com":    PlatformGitHub,
	"email":         PlatformEmail,
	"web":           PlatformWeb,
}

// ResolvePlatform normalizes a free-form platform token to its canonical
// identity. Resolution is idempotent: canonical names resolve to themselves.
func ResolvePlatform(token string) (Platform, error) {
	if platform, ok := platformAliases[strings.ToLower(strings.TrimSpace(token))]; ok {
		return platform, nil
	}
	return "", &UnknownPlatformError{Raw: token}
}

// Aliases returns the accepted spellings for a canonical platform.
func Aliases(platform Platform) []string {
	var aliases []string
	for alias, p := range platformAliases {
		if p == platform {
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	return aliases
}

func acceptedAliases() []string {
	aliases := make([]string, 0, len(platformAliases))
	for alias := range platformAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// receiverRule pairs a validation regexp with its human-readable description.
type receiverRule struct {
	re   *regexp.Regexp
	desc string
}

var receiverRules = map[Platform]receiverRule{
	PlatformX: {
		re:   regexp.MustCompile(`^[A-Za-z0-9_]{1,15}$`),
		desc: "1-15 characters: letters, digits, and underscore",
	},
	PlatformFarcaster: {
		re:   regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,15}$`),
		desc: "1-16 characters starting with a letter or digit, then letters, digits, underscore, or hyphen",
	},
	PlatformEmail: {
		re:   regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`),
		desc: "local@domain.tld shape",
	},
	PlatformWeb: {
		re:   regexp.MustCompile(`^([A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?\.)+[A-Za-z0-9]{2,}$`),
		desc: "dot-separated domain labels ending in a top-level label of at least 2 characters",
	},
}

// ValidateReceiver checks a receiver handle against its platform grammar.
// Validation is purely syntactic; no network lookups happen here.
func ValidateReceiver(platform Platform, receiver string) error {
	if platform == PlatformGitHub {
		return validateGitHubLogin(receiver)
	}

	rule, ok := receiverRules[platform]
	if !ok {
		return &UnknownPlatformError{Raw: string(platform)}
	}
	if !rule.re.MatchString(receiver) {
		return &InvalidReceiverError{Platform: platform, Raw: receiver, Rule: rule.desc}
	}
	return nil
}

var githubLoginRe = regexp.MustCompile(`^[A-Za-z0-9-]{1,39}$`)

// validateGitHubLogin enforces the GitHub username grammar: the hyphen
// placement rules don't fit a single regexp cleanly.
func validateGitHubLogin(receiver string) error {
	const rule = "1-39 characters: letters, digits, and non-consecutive hyphens, not at the start or end"

	if !githubLoginRe.MatchString(receiver) ||
		strings.HasPrefix(receiver, "-") ||
		strings.HasSuffix(receiver, "-") ||
		strings.Contains(receiver, "--") {
		return &InvalidReceiverError{Platform: PlatformGitHub, Raw: receiver, Rule: rule}
	}
	return nil
}
