package pay

import "strings"

// ParseTarget parses a single platform/receiver descriptor.
// Exactly one '/' must separate the two segments. Amount parsing is the
// caller's concern: the same target grammar is reused inside batch
// descriptors where the amount lives elsewhere.
func ParseTarget(descriptor string) (Platform, string, error) {
	if strings.Count(descriptor, "/") != 1 {
		return "", "", &MalformedTargetError{Raw: descriptor}
	}

	platformToken, receiver, _ := strings.Cut(descriptor, "/")

	platform, err := ResolvePlatform(platformToken)
	if err != nil {
		return "", "", err
	}
	if err := ValidateReceiver(platform, receiver); err != nil {
		return "", "", err
	}

	return platform, receiver, nil
}
