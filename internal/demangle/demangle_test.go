package demangle

import (
	"errors"
	"testing"
)

func TestRustDemangle(t *testing.T) {
	d := NewRust()

	tests := []struct {
		input string
		want  string
	}{
		{"_RNvC6_123foo3bar", "123foo::bar"},
		// Extra leading underscore, as on Mach-O.
		{"__RNvC6_123foo3bar", "123foo::bar"},
	}

	for _, tt := range tests {
		got, err := d.Demangle(tt.input)
		if err != nil {
			t.Errorf("Demangle(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Demangle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRustRejects(t *testing.T) {
	d := NewRust()

	inputs := []string{
		"",
		"plain_symbol",
		"_ZN3foo3barEv", // Itanium, not Rust v0
		"_R",            // truncated
		"_R$$$",
	}

	for _, input := range inputs {
		if _, err := d.Demangle(input); !errors.Is(err, ErrNotMangled) {
			t.Errorf("Demangle(%q) err = %v, want ErrNotMangled", input, err)
		}
	}
}

func TestCppDemangle(t *testing.T) {
	tests := []struct {
		detail Detail
		input  string
		want   string
	}{
		{Full, "_ZN3foo3barEv", "foo::bar()"},
		{Simplified, "_ZN3foo3barEv", "foo::bar"},
		{Templates, "_ZN3foo3barEv", "foo::bar"},
	}

	for _, tt := range tests {
		d := NewCpp(tt.detail)
		got, err := d.Demangle(tt.input)
		if err != nil {
			t.Errorf("Demangle(%q) at detail %d failed: %v", tt.input, tt.detail, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Demangle(%q) at detail %d = %q, want %q", tt.input, tt.detail, got, tt.want)
		}
	}
}

func TestCppRejects(t *testing.T) {
	d := NewCpp(Full)

	inputs := []string{
		"",
		"plain_symbol",
		"junk$$$",
		"_RNvC6_123foo3bar", // Rust v0 is not C++
		"__RNvC6_123foo3bar",
	}

	for _, input := range inputs {
		if _, err := d.Demangle(input); !errors.Is(err, ErrNotMangled) {
			t.Errorf("Demangle(%q) err = %v, want ErrNotMangled", input, err)
		}
	}
}
