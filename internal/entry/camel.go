package entry

import "strings"

// Camelize turns a directory base name into a lowerCamelCase identifier.
//
// A character starts a token when it is a word character ([A-Za-z0-9_]) and
// it is the first character, an uppercase letter, or follows a non-word
// character. The token start at offset zero is lowercased, every other one
// is uppercased. Whitespace, hyphens and underscores are removed afterwards.
//
//	Camelize("my-cool_Package") == "myCoolPackage"
//	Camelize("valid-package")   == "validPackage"
func Camelize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevWord := false
	for i, r := range s {
		word := isWordChar(r)
		if word && (i == 0 || isUpper(r) || !prevWord) {
			if i == 0 {
				r = toLower(r)
			} else {
				r = toUpper(r)
			}
		}
		prevWord = word

		if r == '-' || r == '_' || isSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isWordChar(r rune) bool {
	return r == '_' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || isUpper(r)
}

func isUpper(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

func toLower(r rune) rune {
	if isUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}

func toUpper(r rune) rune {
	if 'a' <= r && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// isSpace matches the ECMAScript \s class
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return '\u2000' <= r && r <= '\u200a'
}
