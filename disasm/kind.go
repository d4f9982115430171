package disasm

// SymbolType identifies what kind of entity a symbol names.
type SymbolType int

const (
	// SymbolTypeFunction is executable code.
	SymbolTypeFunction SymbolType = iota

	// SymbolTypeStatic is static data.
	SymbolTypeStatic
)

func (t SymbolType) String() string {
	switch t {
	case SymbolTypeStatic:
		return "static"
	default:
		return "function"
	}
}

// SymbolSource identifies where a symbol record came from.
type SymbolSource int

const (
	// SymbolSourceObject means the symbol was stored as part of the
	// object file's (ELF, Mach-O, PE, archive, ...) structure.
	SymbolSourceObject SymbolSource = iota

	// SymbolSourceDwarf means the symbol was stored in DWARF debug data.
	SymbolSourceDwarf

	// SymbolSourcePDB means the symbol was found in a PDB.
	SymbolSourcePDB
)

func (s SymbolSource) String() string {
	switch s {
	case SymbolSourceDwarf:
		return "DWARF"
	case SymbolSourcePDB:
		return "PDB"
	default:
		return "object"
	}
}

// SymbolLang is the possible source language of a symbol.
type SymbolLang int

const (
	// SymbolLangUnknown means the language could not be determined.
	SymbolLangUnknown SymbolLang = iota

	// SymbolLangRust is the Rust language.
	SymbolLangRust

	// SymbolLangCpp is the C++ language.
	SymbolLangCpp

	// SymbolLangC is the C language.
	SymbolLangC
)

func (l SymbolLang) String() string {
	switch l {
	case SymbolLangRust:
		return "Rust"
	case SymbolLangCpp:
		return "C++"
	case SymbolLangC:
		return "C"
	default:
		return "unknown"
	}
}

// Update fills in the language if it is unknown. A caller-supplied
// language is authoritative and is never overwritten.
func (l SymbolLang) Update(incoming SymbolLang) SymbolLang {
	if l == SymbolLangUnknown {
		return incoming
	}
	return l
}
