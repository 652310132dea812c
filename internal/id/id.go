package id

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultJournalPrefix is the prefix carried by textual journal codes, e.g. "MY-00042".
const DefaultJournalPrefix = "MY-"

// FormatJournalCode returns a journal code like "MY-00042".
func FormatJournalCode(prefix string, number int) string {
	return fmt.Sprintf("%s%05d", prefix, number)
}

// ParseJournalNumber extracts the number from a code carrying DefaultJournalPrefix.
func ParseJournalNumber(code string) (int, bool) {
	return ParseJournalNumberPrefix(code, DefaultJournalPrefix)
}

// ParseJournalNumberPrefix strips prefix (case-insensitive) and parses the rest
// as an integer. Empty input or a non-numeric remainder yields false.
func ParseJournalNumberPrefix(code, prefix string) (int, bool) {
	s := strings.TrimSpace(code)
	if s == "" {
		return 0, false
	}
	if prefix != "" && len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		s = strings.TrimSpace(s[len(prefix):])
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
