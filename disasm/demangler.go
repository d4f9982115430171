package disasm

import (
	"github.com/skdltmxn/disasm-go/internal/demangle"
)

// Demangler converts a mangled symbol name to its human-readable form.
//
// A Demangler answers for a single mangling scheme. Any non-nil error
// means "not a name of this language"; symbol construction recovers
// from it by moving on to the next scheme. Implementations must be
// pure functions of their input and safe for concurrent use.
type Demangler interface {
	Demangle(name string) (string, error)
}

// Default collaborators, tried in order at construction. Rust first:
// its v0 scheme is strictly identifiable, while the Itanium grammar is
// permissive enough to accept names it should not.
var (
	defaultRust Demangler = demangle.NewRust()
	defaultCpp  Demangler = demangle.NewCpp(demangle.Full)
)

type config struct {
	rust Demangler
	cpp  Demangler
}

// Option configures symbol construction.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{rust: defaultRust, cpp: defaultCpp}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRustDemangler replaces the Rust demangler used during symbol
// construction. A nil demangler disables the Rust step.
func WithRustDemangler(d Demangler) Option {
	return func(c *config) { c.rust = d }
}

// WithCppDemangler replaces the C++ demangler used during symbol
// construction. A nil demangler disables the C++ step.
func WithCppDemangler(d Demangler) Option {
	return func(c *config) { c.cpp = d }
}
