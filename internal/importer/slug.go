package importer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slug lowercases s, strips accents and collapses every run of
// non-alphanumerics into a single hyphen.
func Slug(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range norm.NFKD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(unicode.ToLower(r))
		default:
			pendingDash = true
		}
	}
	return b.String()
}

func leadID(l LeadImport) string {
	if l.ID != "" {
		return l.ID
	}
	return Slug(l.Name)
}
