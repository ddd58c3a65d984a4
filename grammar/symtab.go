package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/lfactor"
)

// --- Symbols ---------------------------------------------------------------

// Symbol is a grammar symbol, either a terminal or a non-terminal.
// Symbols are identified by their name.
type Symbol struct {
	name     string
	Value    int  // token value for terminals, serial number for non-terminals
	terminal bool // is this a terminal?
}

var _ lfactor.Element = (*Symbol)(nil)

// Name returns the name of a symbol. It is part of interface lfactor.Element.
func (A *Symbol) Name() string {
	return A.name
}

// IsTerminal returns true if A is a terminal symbol.
func (A *Symbol) IsTerminal() bool {
	return A.terminal
}

// TokenType returns the token value of a terminal.
func (A *Symbol) TokenType() lfactor.TokType {
	return lfactor.TokType(A.Value)
}

func (A *Symbol) String() string {
	return A.name
}

// === Symbol Tables =========================================================

// SymbolTable stores the symbols of a grammar (map-like semantics), remembering
// the order in which symbols have been defined.
type SymbolTable struct {
	table *linkedhashmap.Map // name -> *Symbol
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		table: linkedhashmap.New(),
	}
}

// ResolveSymbol checks for a symbol in the symbol table.
// Returns a symbol or nil.
func (t *SymbolTable) ResolveSymbol(name string) *Symbol {
	if A, found := t.table.Get(name); found {
		return A.(*Symbol)
	}
	return nil
}

// ResolveOrDefineSymbol finds a symbol in the table, inserting a new one if not
// found. Returns the symbol and a flag, signalling whether the symbol has already
// been present.
//
// A symbol may not change its kind: resolving a terminal as a non-terminal (or
// vice versa) is an error.
func (t *SymbolTable) ResolveOrDefineSymbol(name string, terminal bool) (*Symbol, bool, error) {
	if len(name) == 0 {
		return nil, false, fmt.Errorf("grammar symbol must have a name")
	}
	if A := t.ResolveSymbol(name); A != nil {
		if A.terminal != terminal {
			return A, true, fmt.Errorf("symbol %q used as terminal and as non-terminal", name)
		}
		return A, true, nil
	}
	A := &Symbol{name: name, terminal: terminal}
	t.table.Put(name, A)
	return A, false, nil
}

// Size counts the symbols in a symbol table.
func (t *SymbolTable) Size() int {
	return t.table.Size()
}

// Each iterates over each symbol in the table in order of definition, executing a
// mapper function.
func (t *SymbolTable) Each(mapper func(*Symbol)) {
	t.table.Each(func(_, A interface{}) {
		mapper(A.(*Symbol))
	})
}
