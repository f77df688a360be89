package comments

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxTextLength      = 2000
	maxGuestNameLength = 50
)

// tagPattern matches anything that looks like an HTML/XML tag. Sanitization
// happens at write time: tag-like substrings are removed outright (not
// escaped) so stored text is always safe to render verbatim.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripMarkup removes all tag-like substrings from s.
func StripMarkup(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// CleanText trims and strips markup from comment text, enforcing the 1-2000
// character bound on the cleaned result. Bounds count characters, not bytes,
// so non-ASCII text gets the full limit.
func CleanText(raw string) (string, error) {
	clean := StripMarkup(strings.TrimSpace(raw))
	length := utf8.RuneCountInString(clean)
	if length < 1 {
		return "", &ValidationError{Field: "text", Reason: "text is required"}
	}
	if length > maxTextLength {
		return "", &ValidationError{Field: "text", Reason: "text must be 1-2000 characters"}
	}
	return clean, nil
}

// CleanGuestName trims and strips markup from a guest display name,
// enforcing the 1-50 character bound on the cleaned result.
func CleanGuestName(raw string) (string, error) {
	clean := StripMarkup(strings.TrimSpace(raw))
	length := utf8.RuneCountInString(clean)
	if length < 1 {
		return "", &ValidationError{Field: "guest_name", Reason: "guest_name is required for unauthenticated users"}
	}
	if length > maxGuestNameLength {
		return "", &ValidationError{Field: "guest_name", Reason: "guest_name must be 1-50 characters"}
	}
	return clean, nil
}
