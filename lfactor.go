package lfactor

import (
	"errors"
	"fmt"
	"strings"
)

// --- Grammar elements and alternatives --------------------------------------

// Element is a symbol within the right hand side of a grammar rule. Elements are
// identified by their name only: two elements are the same symbol iff their names
// are equal.
type Element interface {
	Name() string
}

// Alternative is one right hand side choice of a grammar rule, i.e. an ordered
// sequence of grammar elements. Well-formed alternatives are non-empty.
type Alternative interface {
	Len() int
	Element(i int) Element
}

// NonTerminal is a non-terminal of a grammar, seen as the collection of its
// alternatives. EachAlternative calls f for every alternative in grammar order.
type NonTerminal interface {
	Name() string
	EachAlternative(f func(Alternative))
}

// ErrInvalidAlternative is returned for malformed alternatives, most notably
// alternatives without any element.
var ErrInvalidAlternative = errors.New("invalid alternative")

// Name is a string type implementing Element.
type Name string

// Name is part of interface Element.
func (n Name) Name() string {
	return string(n)
}

// Sequence is a simple implementation of Alternative. Construct one with
//
//     seq := Symbols("a", "b", "c")   // alternative  a b c
//
type Sequence []Element

// Symbols creates a sequence of Name elements.
func Symbols(names ...string) Sequence {
	seq := make(Sequence, len(names))
	for i, n := range names {
		seq[i] = Name(n)
	}
	return seq
}

// Len is part of interface Alternative.
func (seq Sequence) Len() int {
	return len(seq)
}

// Element is part of interface Alternative.
func (seq Sequence) Element(i int) Element {
	return seq[i]
}

func (seq Sequence) String() string {
	return fmt.Sprintf("[%s]", strings.Join(Names(seq), " "))
}

// Names returns the names of the elements of an alternative, in order.
func Names(alt Alternative) []string {
	if alt == nil {
		return nil
	}
	names := make([]string, alt.Len())
	for i := range names {
		names[i] = alt.Element(i).Name()
	}
	return names
}

// Signature returns the concatenation of the names of the elements of an alternative.
func Signature(alt Alternative) string {
	return strings.Join(Names(alt), "")
}

// Alternatives is a non-terminal consisting of a fixed list of alternatives.
// It is mainly useful for tests and ad-hoc use.
type Alternatives struct {
	Label string
	Alts  []Alternative
}

// NewAlternatives creates a non-terminal from a list of alternatives, each given
// as a list of symbol names.
func NewAlternatives(label string, alts ...[]string) *Alternatives {
	nt := &Alternatives{Label: label}
	for _, a := range alts {
		nt.Alts = append(nt.Alts, Symbols(a...))
	}
	return nt
}

// Name is part of interface NonTerminal.
func (nt *Alternatives) Name() string {
	return nt.Label
}

// EachAlternative is part of interface NonTerminal.
func (nt *Alternatives) EachAlternative(f func(Alternative)) {
	for _, alt := range nt.Alts {
		f(alt)
	}
}

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to grammar readers to define them.
type TokType int

// Tokens represent input tokens of grammar readers.
//
//    TokType = Ident       // identifier for this kind of tokens (reader specific)
//    Lexeme  = "Expr"      // lexeme how it appeared in the input stream
//    Span    = 67…71       // occured from position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is the extent of a token or a rule within the source text of a grammar,
// given as byte offsets: the first byte and the byte just behind the end.
// The zero Span means "no position".
type Span [2]uint64 // (x…y)

// From is the offset of the first byte.
func (s Span) From() uint64 {
	return s[0]
}

// To is the offset behind the last byte.
func (s Span) To() uint64 {
	return s[1]
}

// Len is the number of bytes covered.
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero Span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
