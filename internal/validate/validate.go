package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reName   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _'\-]{0,49}$`)
	reTrader = regexp.MustCompile(`^[A-Za-z0-9_\-]{1,30}$`)
)

// Price parses a listing price: a positive whole number of credits.
func Price(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Amount parses a non-negative credit amount (bids, transfers).
func Amount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ID parses a numeric entity id.
func ID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Name validates a displayable item name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return "", false
	}
	return s, reName.MatchString(s)
}

// TraderName validates a login/profile name.
func TraderName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reTrader.MatchString(s)
}

// Description trims and caps free-form text.
func Description(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 500 {
		s = s[:500]
	}
	return s
}

// AuctionHours parses an auction duration in whole hours, clamped to a
// week.
func AuctionHours(s string) (time.Duration, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 24*7 {
		return 0, false
	}
	return time.Duration(n) * time.Hour, true
}

// Password enforces the registration policy: length window plus mixed
// character classes.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 64 {
		return false
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}
