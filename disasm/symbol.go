// Package disasm provides a uniform in-memory representation of named
// code and data entities discovered in native binaries, whether they
// come from an object file's symbol table, DWARF debug data or a PDB.
//
// Mangled Rust and C++ names are demangled at construction, and the
// source language is inferred when the caller did not supply one.
package disasm

import (
	"errors"
	"strings"
	"unicode/utf8"
	"unsafe"
)

var errNoDemangler = errors.New("disasm: no demangler configured")

// Symbol is a named code or data entity in a binary.
//
// A Symbol is immutable once constructed and safe to share between
// goroutines. Symbols built with NewFromBytes may alias the caller's
// buffer until Owned is called.
type Symbol struct {
	// The demangled name of the symbol, or the raw name if it could
	// not be demangled.
	name string

	// The virtual address of the symbol in its loaded image.
	addr uint64

	// Byte offset and length of the symbol within its binary file.
	bpos uint
	blen uint

	typ    SymbolType
	source SymbolSource
	lang   SymbolLang

	// name aliases a caller-owned buffer.
	borrowed bool
}

// New constructs a symbol from a raw symbol-table name.
//
// The name is demangled if it is a mangled Rust or C++ name; otherwise
// it is stored verbatim. When lang is SymbolLangUnknown and a demangler
// accepts the name, the language is inferred from the mangling scheme.
// A caller-supplied language always wins over inference.
func New(name string, addr uint64, bpos, blen uint, typ SymbolType, source SymbolSource, lang SymbolLang, opts ...Option) Symbol {
	return newSymbol(newConfig(opts), name, false, addr, bpos, blen, typ, source, lang)
}

// NewFromBytes constructs a symbol whose name is read directly from a
// larger buffer, such as a string table section.
//
// When the bytes are valid UTF-8 the symbol borrows them without
// copying; the buffer must then stay live and unmodified until Owned
// is called. Invalid UTF-8 is replaced with the Unicode replacement
// character, which forces a copy.
func NewFromBytes(name []byte, addr uint64, bpos, blen uint, typ SymbolType, source SymbolSource, lang SymbolLang, opts ...Option) Symbol {
	if utf8.Valid(name) {
		view := unsafe.String(unsafe.SliceData(name), len(name))
		return newSymbol(newConfig(opts), view, true, addr, bpos, blen, typ, source, lang)
	}
	clean := strings.ToValidUTF8(string(name), "�")
	return newSymbol(newConfig(opts), clean, false, addr, bpos, blen, typ, source, lang)
}

// TODO: demangle C names (e.g. stdcall and fastcall naming conventions).
func newSymbol(cfg config, name string, borrowed bool, addr uint64, bpos, blen uint, typ SymbolType, source SymbolSource, lang SymbolLang) Symbol {
	if demangled, err := tryDemangle(cfg.rust, name); err == nil {
		name, borrowed = demangled, false
		lang = lang.Update(SymbolLangRust)
	} else if demangled, err := tryDemangle(cfg.cpp, name); err == nil {
		name, borrowed = demangled, false
		lang = lang.Update(SymbolLangCpp)
	}

	return Symbol{
		name:     name,
		addr:     addr,
		bpos:     bpos,
		blen:     blen,
		typ:      typ,
		source:   source,
		lang:     lang,
		borrowed: borrowed,
	}
}

func tryDemangle(d Demangler, name string) (string, error) {
	if d == nil {
		return "", errNoDemangler
	}
	return d.Demangle(name)
}

// Address returns the virtual address of the symbol in its loaded image.
func (s Symbol) Address() uint64 {
	return s.addr
}

// Offset returns the byte offset of the symbol within its binary file.
func (s Symbol) Offset() uint {
	return s.bpos
}

// End returns the byte offset one past the symbol within its binary
// file. The offset and length must not overflow when summed; that is a
// contract on construction, not a checked condition.
func (s Symbol) End() uint {
	return s.bpos + s.blen
}

// Size returns the length in bytes of the symbol within its binary file.
func (s Symbol) Size() uint {
	return s.blen
}

// Name returns the demangled name of the symbol, or the raw name if it
// could not be demangled.
func (s Symbol) Name() string {
	return s.name
}

// Lang returns the source language of the symbol, if known.
func (s Symbol) Lang() SymbolLang {
	return s.lang
}

// Source returns where the symbol record came from.
func (s Symbol) Source() SymbolSource {
	return s.source
}

// Type returns what kind of entity the symbol names.
func (s Symbol) Type() SymbolType {
	return s.typ
}

// Owned returns a symbol whose name storage is independent of any
// caller-owned buffer. Symbols that already own their name are
// returned unchanged.
func (s Symbol) Owned() Symbol {
	if !s.borrowed {
		return s
	}
	s.name = strings.Clone(s.name)
	s.borrowed = false
	return s
}

// Equal reports whether two symbols have the same name and attributes.
// Borrowed and owned symbols compare equal when their contents match.
func (s Symbol) Equal(other Symbol) bool {
	return s.name == other.name &&
		s.addr == other.addr &&
		s.bpos == other.bpos &&
		s.blen == other.blen &&
		s.typ == other.typ &&
		s.source == other.source &&
		s.lang == other.lang
}
