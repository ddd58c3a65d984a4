package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/lfactor"
)

// ErrEmptyGrammar is returned by a grammar builder without any rules.
var ErrEmptyGrammar = errors.New("grammar has no rules")

// --- Rules -----------------------------------------------------------------

// Rule is a grammar rule  LHS ::= RHS. The right hand side of a rule is an
// alternative of the LHS non-terminal; *Rule implements lfactor.Alternative.
type Rule struct {
	Serial int     // ordinal number of this rule within its grammar
	LHS    *Symbol // left hand side non-terminal
	rhs    []*Symbol
}

var _ lfactor.Alternative = (*Rule)(nil)

// RHS returns the symbols of the right hand side of a rule.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsEps returns true for epsilon-rules.
func (r *Rule) IsEps() bool {
	return len(r.rhs) == 0
}

// Len is part of interface lfactor.Alternative.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// Element is part of interface lfactor.Alternative.
func (r *Rule) Element(i int) lfactor.Element {
	return r.rhs[i]
}

func (r *Rule) String() string {
	names := make([]string, len(r.rhs))
	for i, A := range r.rhs {
		names[i] = A.Name()
	}
	return fmt.Sprintf("[%s] ::= [%s]", r.LHS.Name(), strings.Join(names, " "))
}

// --- Grammars --------------------------------------------------------------

// Grammar is a context-free grammar. Create one with a GrammarBuilder.
type Grammar struct {
	Name         string
	rules        *arraylist.List // all the rules, in order of definition
	symbols      *SymbolTable
	nonterminals []*NonTerm // in order of first rule
}

// Rule returns rule number n, or nil.
func (g *Grammar) Rule(n int) *Rule {
	if r, ok := g.rules.Get(n); ok {
		return r.(*Rule)
	}
	return nil
}

// Rules returns all rules of the grammar, in order of definition.
func (g *Grammar) Rules() []*Rule {
	rules := make([]*Rule, 0, g.rules.Size())
	it := g.rules.Iterator()
	for it.Next() {
		rules = append(rules, it.Value().(*Rule))
	}
	return rules
}

// Symbol returns the grammar symbol for a name, or nil.
func (g *Grammar) Symbol(name string) *Symbol {
	return g.symbols.ResolveSymbol(name)
}

// EachSymbol iterates over all symbols of the grammar, terminals and non-terminals.
func (g *Grammar) EachSymbol(mapper func(*Symbol)) {
	g.symbols.Each(mapper)
}

// NonTerminal returns the non-terminal with a given name, if it has any rules.
func (g *Grammar) NonTerminal(name string) (*NonTerm, bool) {
	for _, N := range g.nonterminals {
		if N.Symbol.Name() == name {
			return N, true
		}
	}
	return nil, false
}

// NonTerminals returns the non-terminals of the grammar which have rules, in order
// of their first rule.
func (g *Grammar) NonTerminals() []*NonTerm {
	return g.nonterminals
}

// EachNonTerminal iterates over the non-terminals of the grammar which have rules.
func (g *Grammar) EachNonTerminal(mapper func(*NonTerm)) {
	for _, N := range g.nonterminals {
		mapper(N)
	}
}

// AsNonTerminals returns the non-terminals as a list of lfactor.NonTerminal, ready
// for factoring them all at once.
func (g *Grammar) AsNonTerminals() []lfactor.NonTerminal {
	nts := make([]lfactor.NonTerminal, len(g.nonterminals))
	for i, N := range g.nonterminals {
		nts[i] = N
	}
	return nts
}

// Dump is a debugging helper. It traces the rules of a grammar at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ----------------", g.Name)
	for _, r := range g.Rules() {
		tracer().Debugf("%3d: %v", r.Serial, r)
	}
	g.EachSymbol(func(A *Symbol) {
		if A.IsTerminal() {
			tracer().Debugf("     T %s = %d", A.Name(), A.Value)
		} else {
			tracer().Debugf("     N %s", A.Name())
		}
	})
	tracer().Debugf("-------------------------------")
}

// NonTerm is a non-terminal of a grammar, together with its rules.
// It implements lfactor.NonTerminal.
type NonTerm struct {
	Symbol *Symbol
	rules  []*Rule
}

var _ lfactor.NonTerminal = (*NonTerm)(nil)

// Name is part of interface lfactor.NonTerminal.
func (N *NonTerm) Name() string {
	return N.Symbol.Name()
}

// Rules returns the rules for N, in order of definition.
func (N *NonTerm) Rules() []*Rule {
	return N.rules
}

// EachAlternative is part of interface lfactor.NonTerminal.
func (N *NonTerm) EachAlternative(f func(lfactor.Alternative)) {
	for _, r := range N.rules {
		f(r)
	}
}

// === Grammar Builder =======================================================

// GrammarBuilder is a helper for building grammars. Rules are added by chaining
// symbols to a left hand side:
//
//     b := NewGrammarBuilder("G")
//     b.LHS("A").N("B").T("a", 1).End()    // A → B a
//     b.LHS("B").Epsilon()                 // B →
//     g, err := b.Grammar()
//
type GrammarBuilder struct {
	g   *Grammar
	err error // first error while building
}

// NewGrammarBuilder creates a grammar builder for a grammar with a given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		g: &Grammar{
			Name:    name,
			rules:   arraylist.New(),
			symbols: NewSymbolTable(),
		},
	}
}

// RuleBuilder collects the right hand side of a rule.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs *Symbol
	rhs []*Symbol
}

// LHS starts a new rule for a non-terminal.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: gb.symbol(name, false)}
}

func (gb *GrammarBuilder) symbol(name string, terminal bool) *Symbol {
	A, found, err := gb.g.symbols.ResolveOrDefineSymbol(name, terminal)
	if err != nil {
		tracer().Errorf(err.Error())
		if gb.err == nil {
			gb.err = err
		}
		return A
	}
	if !found && !terminal {
		A.Value = gb.g.symbols.Size()
	}
	return A
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.gb.symbol(name, false))
	return rb
}

// T appends a terminal with a token value to the right hand side.
func (rb *RuleBuilder) T(name string, tokval int) *RuleBuilder {
	A := rb.gb.symbol(name, true)
	if A != nil && A.terminal {
		A.Value = tokval
	}
	rb.rhs = append(rb.rhs, A)
	return rb
}

// End completes a rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	g := rb.gb.g
	if rb.lhs == nil {
		return nil
	}
	r := &Rule{Serial: g.rules.Size(), LHS: rb.lhs, rhs: rb.rhs}
	g.rules.Add(r)
	N, ok := g.NonTerminal(rb.lhs.Name())
	if !ok {
		N = &NonTerm{Symbol: rb.lhs}
		g.nonterminals = append(g.nonterminals, N)
	}
	N.rules = append(N.rules, r)
	tracer().Debugf("rule %d: %v", r.Serial, r)
	return r
}

// Epsilon adds an epsilon-rule to the grammar.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rhs = nil
	return rb.End()
}

// Grammar returns the grammar built so far, or the first error which occured
// while building it.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if gb.g.rules.Size() == 0 {
		return nil, fmt.Errorf("grammar %s: %w", gb.g.Name, ErrEmptyGrammar)
	}
	return gb.g, nil
}
