package domains_test

import (
	"brandkit/internal/domains"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "append suffix", in: "foo", out: "foo.cv"},
		{name: "lowercase existing suffix", in: "BAR.cv", out: "bar.cv"},
		{name: "uppercase suffix", in: "Bar.CV", out: "bar.cv"},
		{name: "trim whitespace", in: " baz ", out: "baz.cv"},
		{name: "drop trailing root dot", in: "qux.cv.", out: "qux.cv"},
		{name: "subdomain keeps labels", in: "Shop.Example", out: "shop.example.cv"},
		{name: "blank", in: "   ", out: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := domains.Normalize(tc.in)
			if got != tc.out {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.out)
			}
			if again := domains.Normalize(got); again != got {
				t.Fatalf("Normalize is not idempotent: %q -> %q", got, again)
			}
		})
	}
}
