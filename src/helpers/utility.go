package helpers

import (
	"strings"

	"github.com/google/uuid"
)

// NewRunID returns a fresh identifier for one batch run or interactive
// session, stamped into analysis reports and logs.
func NewRunID() string {
	return uuid.New().String()
}

// StripQuotes removes one matching pair of surrounding quotes.
func StripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
