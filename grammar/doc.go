/*
Package grammar implements a small model for context-free grammars, suitable
as input for left-factoring.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals
carry a token value of type int. Grammars may contain epsilon-productions.

Example:

    b := grammar.NewGrammarBuilder("G")
    b.LHS("S").T("if", 1).N("E").T("then", 2).N("S").End()                  // S → if E then S
    b.LHS("S").T("if", 1).N("E").T("then", 2).N("S").T("else", 3).N("S").End() // S → if E then S else S
    b.LHS("S").T("x", 4).End()                                              // S → x
    b.LHS("E").T("b", 5).End()                                              // E → b
    g, err := b.Grammar()

Non-terminals of a grammar implement lfactor.NonTerminal, with rules as
alternatives:

    S, _ := g.NonTerminal("S")
    plan, err := prefix.Factor(S)

Plan entries may be type-asserted to *grammar.Rule.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lfactor.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("lfactor.grammar")
}
