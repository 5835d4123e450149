package validation

import (
	"regexp"
	"strings"
)

// Character classes of the accepted email grammar. The unicode ranges admit
// internationalised local parts and domains.
const (
	uni        = `\x{00A0}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFEF}`
	atomChar   = `[a-z\d!#$%&'*+\-/=?^_` + "`" + `{|}~` + uni + `]`
	dotAtom    = atomChar + `+(?:\.` + atomChar + `+)*`
	qtext      = `[\x01-\x08\x0b\x0c\x0e-\x1f\x7f\x21\x23-\x5b\x5d-\x7e` + uni + `]`
	quotedPair = `\\[\x01-\x09\x0b\x0c\x0d-\x7f` + uni + `]`
	fws        = `(?:(?:[ \t]*\r\n)?[ \t]+)?`
	quoted     = `"(?:` + fws + `(?:` + qtext + `|` + quotedPair + `))*` + fws + `"`
	labelChar  = `[a-z\d` + uni + `]`
	labelMid   = `[a-z\d\-._~` + uni + `]`
	label      = `(?:` + labelChar + `|` + labelChar + labelMid + `*` + labelChar + `)`
	tldChar    = `[a-z` + uni + `]`
	tld        = `(?:` + tldChar + `|` + tldChar + labelMid + `*` + tldChar + `)`
)

var emailRe = regexp.MustCompile(`(?i)^(?:` + dotAtom + `|` + quoted + `)@(?:` + label + `\.)+` + tld + `\.?$`)

// ValidEmail reports whether s is an acceptable email address.
// Consecutive dots are rejected anywhere in the address.
func ValidEmail(s string) bool {
	if s == "" || strings.Contains(s, "..") {
		return false
	}
	return emailRe.MatchString(s)
}
