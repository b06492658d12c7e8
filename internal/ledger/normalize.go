package ledger

import (
	"regexp"
	"strings"
)

var (
	nullTokenRe  = regexp.MustCompile(`(?i)\bnull\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeDescription canonicalizes free-form description text for
// fingerprinting: lowercase, literal "null" tokens removed, whitespace runs
// collapsed to a single space, leading/trailing whitespace trimmed.
//
// Some exporters write the string "null" for missing sub-fields, so
// "Payment null null" and "Payment" describe the same transaction and must
// normalize identically. The raw text is kept verbatim on the transaction;
// only the fingerprint sees this form.
func NormalizeDescription(desc string) string {
	s := strings.ToLower(desc)
	s = nullTokenRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
