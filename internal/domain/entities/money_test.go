package entities

import "testing"

func TestFormatCLP(t *testing.T) {
	cases := []struct {
		amount int
		want   string
	}{
		{55000, "$55.000"},
		{599990, "$599.990"},
		{1250000, "$1.250.000"},
		{900, "$900"},
		{0, "$0"},
	}
	for _, tc := range cases {
		if got := FormatCLP(tc.amount); got != tc.want {
			t.Fatalf("%d: expected %q, got %q", tc.amount, tc.want, got)
		}
	}
}
