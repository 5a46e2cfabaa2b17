// Package shared provides small string helpers used by the core and the
// output adapters.
package shared

import (
	"strings"
	"unicode/utf8"
)

// UnquoteDefineValue strips the escaped (\"...\") or plain ("...")
// quotes that wrap string-valued defines.  Values without surrounding
// quotes are returned unchanged.
func UnquoteDefineValue(value string) string {
	for _, quote := range []string{`\"`, `"`} {
		if len(value) >= 2*len(quote) && strings.HasPrefix(value, quote) && strings.HasSuffix(value, quote) {
			return value[len(quote) : len(value)-len(quote)]
		}
	}
	return value
}

// DisplayWidth counts the characters a string occupies on a
// character LCD, one per rune.
func DisplayWidth(value string) int {
	return utf8.RuneCountInString(value)
}

// JoinIDs renders platform ids space separated on one line, the form
// build scripts split on.
func JoinIDs(ids []string) string {
	return strings.Join(ids, " ")
}
