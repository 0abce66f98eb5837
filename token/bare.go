package token

import (
	"unicode"
	"unicode/utf8"
)

// BareSafe reports whether v can be emitted in canonical form without
// quotes. nullToken is the configured null spelling; it is reserved
// alongside the fixed keywords so a bare string can never collide with
// a scalar token.
func BareSafe(v, nullToken string) bool {
	if v == "" {
		return false
	}
	switch v {
	case "t", "f", "true", "false", "null", nullToken:
		return false
	}
	first, size := utf8.DecodeRuneInString(v)
	if first == utf8.RuneError && size <= 1 {
		return false
	}
	switch {
	case first >= '0' && first <= '9':
		return false
	case first == '"', first == '\'', first == '-':
		return false
	}
	for _, r := range v {
		if !bareRune(r) {
			return false
		}
	}
	return true
}

// RefBareSafe reports whether a ref id value can be emitted without
// quotes. Refs are more permissive than strings: a leading digit is
// fine, but the char set is narrower (no / @ :).
func RefBareSafe(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if r > unicode.MaxASCII {
			continue
		}
		if isASCIIAlnum(r) || r == '_' || r == '-' || r == '.' {
			continue
		}
		return false
	}
	return true
}

func bareRune(r rune) bool {
	if r > unicode.MaxASCII {
		return true
	}
	if isASCIIAlnum(r) {
		return true
	}
	switch r {
	case '_', '-', '.', '/', '@', ':':
		return true
	}
	return false
}

func isASCIIAlnum(r rune) bool {
	return r >= '0' && r <= '9' ||
		r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z'
}
