package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{4,18}[0-9]$`)
)

var paymentMethods = map[string]bool{
	"transfer":    true,
	"cod":         true,
	"ewallet":     true,
	"credit_card": true,
}

// Name validates a displayable customer name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 60 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 20 {
		return "", false
	}
	return s, rePhone.MatchString(s)
}

func Address(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 200 {
		return "", false
	}
	return s, true
}

func PaymentMethod(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, paymentMethods[s]
}

// ID parses a positive numeric resource id (product/order ids).
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Stock validates an administrative stock value.
func Stock(n int) bool { return n >= 0 }
