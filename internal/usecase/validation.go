package usecase

import "regexp"

// Compiled patterns for identifier validation. Matching is ASCII-only and
// case-sensitive in the LinkedIn scheme and host.
var (
	// One label of 1-63 alphanumerics/hyphens, a dot, then an alphabetic TLD
	domainPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{0,61}[A-Za-z0-9]?\.[A-Za-z]{2,}$`)

	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// Person (/in/) and company (/company/) profile URLs
	linkedInPattern = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/(in|company)/[A-Za-z0-9-]+/?$`)
)

// ValidateDomain reports whether s looks like a registrable company domain
func ValidateDomain(s string) bool {
	if s == "" {
		return false
	}
	return domainPattern.MatchString(s)
}

// ValidateEmail reports whether s looks like an email address
func ValidateEmail(s string) bool {
	if s == "" {
		return false
	}
	return emailPattern.MatchString(s)
}

// ValidateLinkedInURL reports whether s is a LinkedIn profile or company URL.
// The field is optional, so an empty string is valid.
func ValidateLinkedInURL(s string) bool {
	if s == "" {
		return true
	}
	return linkedInPattern.MatchString(s)
}
