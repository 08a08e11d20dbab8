package service

import "strings"

// cleanModelText drops invalid UTF-8 (PostgreSQL rejects it), normalises line
// endings and trims the reply.
func cleanModelText(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}
