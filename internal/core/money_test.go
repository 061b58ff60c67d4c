package core

import (
	"errors"
	"strings"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		err error
	}{
		{"1", "1", nil},
		{"12.50", "12.5", nil},
		{"12,50", "12.5", nil},
		{" 2.50 ", "2.5", nil},
		{"0", "0", nil},
		{"1e2", "100", nil},
		{"0.1", "0.1", nil},
		{"-1", "", ErrNegativeAmount},
		{"abc", "", ErrInvalidAmount},
		{"1.2.3", "", ErrInvalidAmount},
		{"1,234.5", "", ErrInvalidAmount},
		{"", "", ErrMissingAmount},
		{"1e12", "1000000000000", nil},
		{"0.00000001", "0.00000001", nil},
		{"1e13", "", ErrAmountOutOfRange},
		{"1e2000000000", "", ErrAmountOutOfRange},
		{"1e-1000000", "", ErrAmountOutOfRange},
		{"0.000000001", "", ErrAmountOutOfRange},
		{"123456789012345678901", "", ErrAmountOutOfRange},
		{"1" + strings.Repeat("0", 100000), "", ErrAmountOutOfRange},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Fatalf("%q expected error %v, got %v", tc.in, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q unexpected error: %v", tc.in, err)
		}
		if got.String() != tc.out {
			t.Fatalf("%q expected %s, got %s", tc.in, tc.out, got.String())
		}
	}
}
