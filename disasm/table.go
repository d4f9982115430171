package disasm

import (
	"iter"
	"sort"
	"sync"
)

// SymbolTable is an address-sorted collection of symbols aggregated
// from one or more sources.
//
// The table is immutable after construction and safe for concurrent
// use. Lookup indexes are built lazily on first use.
type SymbolTable struct {
	syms []Symbol

	// Name lookup index (lazy-built)
	nameIndex     map[string][]int
	nameIndexOnce sync.Once
}

// NewSymbolTable builds a table from the given symbols.
//
// Borrowed symbols are converted to owned copies so the table never
// aliases a caller's buffer. The input slice is not retained.
func NewSymbolTable(syms []Symbol) *SymbolTable {
	owned := make([]Symbol, len(syms))
	for i, s := range syms {
		owned[i] = s.Owned()
	}

	// Stable, so symbols sharing an address keep their input order.
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].addr < owned[j].addr
	})

	return &SymbolTable{syms: owned}
}

// Count returns the number of symbols in the table.
func (st *SymbolTable) Count() int {
	return len(st.syms)
}

// All returns an iterator over all symbols in address order.
func (st *SymbolTable) All() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for _, s := range st.syms {
			if !yield(s) {
				return
			}
		}
	}
}

// Functions returns an iterator over function symbols in address order.
func (st *SymbolTable) Functions() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for _, s := range st.syms {
			if s.typ != SymbolTypeFunction {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// FromSource returns an iterator over the symbols that came from the
// given source, in address order.
func (st *SymbolTable) FromSource(source SymbolSource) iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for _, s := range st.syms {
			if s.source != source {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// ByName returns an iterator over the symbols with the given demangled
// name. Distinct entities may legitimately share a name (static
// functions in different compilation units, for example).
func (st *SymbolTable) ByName(name string) iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		st.buildNameIndex()

		for _, i := range st.nameIndex[name] {
			if !yield(st.syms[i]) {
				return
			}
		}
	}
}

// FindByName finds the first symbol with the given demangled name.
func (st *SymbolTable) FindByName(name string) (Symbol, bool) {
	st.buildNameIndex()

	indices := st.nameIndex[name]
	if len(indices) == 0 {
		return Symbol{}, false
	}
	return st.syms[indices[0]], true
}

func (st *SymbolTable) buildNameIndex() {
	st.nameIndexOnce.Do(func() {
		idx := make(map[string][]int, len(st.syms))
		for i, s := range st.syms {
			idx[s.name] = append(idx[s.name], i)
		}
		st.nameIndex = idx
	})
}

// ByAddress finds the symbol containing the given virtual address.
//
// The result is the symbol with the greatest address at or below addr.
// A symbol of known size only matches addresses within its extent; a
// zero-size symbol matches any address up to the next symbol.
func (st *SymbolTable) ByAddress(addr uint64) (Symbol, bool) {
	// First index with an address strictly above addr; the candidate
	// is the entry just before it.
	i := sort.Search(len(st.syms), func(i int) bool {
		return st.syms[i].addr > addr
	})
	if i == 0 {
		return Symbol{}, false
	}

	sym := st.syms[i-1]
	if sym.blen > 0 && addr >= sym.addr+uint64(sym.blen) {
		return Symbol{}, false
	}
	return sym, true
}
