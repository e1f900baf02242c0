package thaiword

import (
	"unicode"
	"unicode/utf8"
)

// requiresSegmentation reports whether term starts with a Thai character.
// Only the first character is checked: mixed-script tokens are segmented if they start in Thai.
func requiresSegmentation(term []byte) bool {
	if len(term) == 0 {
		return false
	}
	r, _ := utf8.DecodeRune(term)
	return unicode.Is(unicode.Thai, r)
}
