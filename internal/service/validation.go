package service

import (
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)

// NormalizeEmail lowercases and trims the address, punycodes an
// internationalized domain, and checks the overall shape. It returns the
// normalized address and whether it is usable.
func NormalizeEmail(raw string) (string, bool) {
	addr := strings.ToLower(strings.TrimSpace(raw))
	if addr == "" {
		return "", false
	}

	at := strings.LastIndex(addr, "@")
	if at <= 0 || at == len(addr)-1 {
		return "", false
	}

	domain, err := idna.Lookup.ToASCII(addr[at+1:])
	if err != nil {
		return "", false
	}
	addr = addr[:at+1] + domain

	if !emailPattern.MatchString(addr) {
		return "", false
	}
	return addr, true
}
