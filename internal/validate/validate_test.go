package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"jordan@example.com", true},
		{"  jordan@example.com  ", true},
		{"j.o-r_dan+tag@sub.example.co", true},
		{"", false},
		{"jordan", false},
		{"jordan@", false},
		{"@example.com", false},
		{strings.Repeat("a", 60) + "@example.com", false},
	}
	for _, tc := range cases {
		_, ok := Email(tc.in)
		assert.Equal(t, tc.ok, ok, "email %q", tc.in)
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"+1 555 0100", true},
		{"08123456789", true},
		{"+62 (21) 555-0100", true},
		{"", false},
		{"12345", false},
		{"call me", false},
		{"+123456789012345678901", false},
	}
	for _, tc := range cases {
		_, ok := Phone(tc.in)
		assert.Equal(t, tc.ok, ok, "phone %q", tc.in)
	}
}

func TestPaymentMethod(t *testing.T) {
	for _, good := range []string{"transfer", "cod", "ewallet", "credit_card", " Transfer "} {
		_, ok := PaymentMethod(good)
		assert.True(t, ok, "method %q", good)
	}
	for _, bad := range []string{"", "cash", "bitcoin"} {
		_, ok := PaymentMethod(bad)
		assert.False(t, ok, "method %q", bad)
	}
}

func TestID(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1", 1, true},
		{" 42 ", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ID(tc.in)
		assert.Equal(t, tc.ok, ok, "id %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "id %q", tc.in)
		}
	}
}

func TestNameAndAddress(t *testing.T) {
	_, ok := Name("Jordan Driver")
	assert.True(t, ok)
	_, ok = Name("")
	assert.False(t, ok)
	_, ok = Name(strings.Repeat("x", 61))
	assert.False(t, ok)

	_, ok = Address("12 Garage Lane")
	assert.True(t, ok)
	_, ok = Address("")
	assert.False(t, ok)
	_, ok = Address(strings.Repeat("x", 201))
	assert.False(t, ok)
}
