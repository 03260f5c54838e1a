package holding

import (
	"strings"
	"testing"
)

func TestMoneySignedString(t *testing.T) {
	if got := M(0, "EUR").SignedString(); got != "-" {
		t.Errorf("M(0).SignedString() = %q, want %q", got, "-")
	}
	if got := M(1500, "EUR").SignedString(); !strings.HasPrefix(got, "+") {
		t.Errorf("M(1500).SignedString() = %q, want a + prefix", got)
	}
	neg := M(-1500, "EUR")
	if !neg.IsNegative() {
		t.Error("M(-1500).IsNegative() = false, want true")
	}
	if got := neg.SignedString(); strings.HasPrefix(got, "+") {
		t.Errorf("M(-1500).SignedString() = %q, want no + prefix", got)
	}
}

func TestMoneyEqual(t *testing.T) {
	testCases := []struct {
		name string
		a, b Money
		want bool
	}{
		{"Same value and currency", M(45000, "EUR"), M(45000, "EUR"), true},
		{"Different value", M(45000, "EUR"), M(45001, "EUR"), false},
		{"Different currency", M(45000, "EUR"), M(45000, "USD"), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPercentStrings(t *testing.T) {
	testCases := []struct {
		in     Percent
		str    string
		signed string
	}{
		{10, "10.00%", "+10.00%"},
		{-10, "-10.00%", "-10.00%"},
		{0, "0.00%", "-"},
		{0.025, "0.03%", "+0.03%"},
	}
	for _, tc := range testCases {
		t.Run(tc.str, func(t *testing.T) {
			if got := tc.in.String(); got != tc.str {
				t.Errorf("String() = %q, want %q", got, tc.str)
			}
			if got := tc.in.SignedString(); got != tc.signed {
				t.Errorf("SignedString() = %q, want %q", got, tc.signed)
			}
		})
	}
}
