// Package demangle adapts the ianlancetaylor/demangle library to the
// per-language demangler contract used by the disasm package.
//
// Each adapter answers for exactly one mangling scheme and rejects
// everything else, so callers can probe languages in a fixed order.
package demangle

import (
	"errors"
	"strings"

	"github.com/ianlancetaylor/demangle"
)

// ErrNotMangled indicates the input is not a mangled name of the
// language the adapter handles.
var ErrNotMangled = errors.New("demangle: not a mangled name")

// Detail selects how much of a demangled C++ name is rendered.
type Detail int

const (
	// Full renders the complete name, parameters included.
	Full Detail = iota

	// Simplified renders the bare qualified name without parameters
	// or template arguments.
	Simplified

	// Templates renders template arguments but no parameters.
	Templates
)

func (d Detail) options() []demangle.Option {
	switch d {
	case Simplified:
		return []demangle.Option{demangle.NoParams, demangle.NoEnclosingParams, demangle.NoTemplateParams}
	case Templates:
		return []demangle.Option{demangle.NoParams, demangle.NoEnclosingParams}
	default:
		return []demangle.Option{demangle.NoClones}
	}
}

// Rust demangles Rust v0 symbol names (the "_R" scheme).
//
// Legacy Rust names use the Itanium scheme plus a hash suffix and are
// left for the C++ demangler to handle.
type Rust struct{}

// NewRust returns a Rust demangler.
func NewRust() Rust { return Rust{} }

// Demangle returns the demangled form of a Rust v0 mangled name,
// or ErrNotMangled.
func (Rust) Demangle(name string) (string, error) {
	// Some platforms prepend an extra underscore to every symbol.
	if strings.HasPrefix(name, "__R") {
		name = name[1:]
	}
	if !strings.HasPrefix(name, "_R") {
		return "", ErrNotMangled
	}

	out, err := demangle.ToString(name)
	if err != nil {
		return "", ErrNotMangled
	}
	return out, nil
}

// Cpp demangles Itanium C++ symbol names (the "_Z" scheme).
type Cpp struct {
	opts []demangle.Option
}

// NewCpp returns a C++ demangler rendering at the given detail level.
func NewCpp(detail Detail) Cpp {
	return Cpp{opts: detail.options()}
}

// Demangle returns the demangled form of an Itanium-mangled C++ name,
// or ErrNotMangled.
func (c Cpp) Demangle(name string) (string, error) {
	// Rust v0 names are never C++, even though the library would
	// happily demangle them.
	if strings.HasPrefix(name, "_R") || strings.HasPrefix(name, "__R") {
		return "", ErrNotMangled
	}

	out, err := demangle.ToString(name, c.opts...)
	if err != nil {
		return "", ErrNotMangled
	}
	return out, nil
}
