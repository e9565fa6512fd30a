package services

import (
	"strings"
	"unicode"
)

// EmailDomains are offered as one-click completions next to email inputs
var EmailDomains = []string{"gmail.com", "yahoo.com", "outlook.com"}

// FormatPhoneNumber renders a US phone number progressively as it is typed.
// Non-digits are dropped and input is capped at 10 digits:
//
//	"619"            -> "619"
//	"619555"         -> "(619) 555"
//	"6195551234999"  -> "(619) 555-1234"
func FormatPhoneNumber(raw string) string {
	digits := make([]rune, 0, 10)
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
			if len(digits) == 10 {
				break
			}
		}
	}

	d := string(digits)
	switch {
	case len(d) < 4:
		return d
	case len(d) < 7:
		return "(" + d[:3] + ") " + d[3:]
	default:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	}
}

// ApplyEmailDomain replaces whatever follows the first "@" with domain.
// Blank input, or input with nothing before the "@", comes back trimmed and otherwise unchanged.
func ApplyEmailDomain(current, domain string) string {
	trimmed := strings.TrimSpace(current)
	if trimmed == "" {
		return trimmed
	}

	local, _, _ := strings.Cut(trimmed, "@")
	if local == "" {
		return trimmed
	}

	return local + "@" + strings.TrimLeftFunc(domain, func(r rune) bool { return r == '@' || unicode.IsSpace(r) })
}

// IsEmailDomainOption reports whether domain is one of EmailDomains
func IsEmailDomainOption(domain string) bool {
	for _, d := range EmailDomains {
		if d == domain {
			return true
		}
	}
	return false
}
