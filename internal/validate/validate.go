package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reCategory = regexp.MustCompile(`^(mono|mixed|composition|toys|sweets|balloons)$`)
	reToken    = regexp.MustCompile(`^[^\s]{1,128}$`)
)

// Category validates the closed category set.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reCategory.MatchString(s)
}

// Price coerces a price field to a non-negative integer. Unparsable or
// negative input becomes 0 instead of an error (permissive-parse policy).
func Price(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Token checks an admin token has a sane shape before it is stored.
func Token(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reToken.MatchString(s)
}

// ID parses a positive product id.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil && n > 0
}

// Name validates a displayable product name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 200 {
		return "", false
	}
	return s, true
}
