package token

import (
	"strings"
)

const hexDigits = "0123456789abcdef"

// Quote returns the canonical double-quoted form of v. Escapes are
// minimal: backslash, double quote, \n \r \t, and \u00xx for any
// other control character below 0x20. Everything else, including
// non-ASCII, is written verbatim.
func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[r>>4])
				b.WriteByte(hexDigits[r&0xf])
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// QuoteIfNeeded returns v bare when BareSafe allows it, else the
// quoted form. This is the canonical text of an ordinary string and
// also the text map keys sort by.
func QuoteIfNeeded(v, nullToken string) string {
	if BareSafe(v, nullToken) {
		return v
	}
	return Quote(v)
}
