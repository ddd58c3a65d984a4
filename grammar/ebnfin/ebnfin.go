/*
Package ebnfin reads grammars in EBNF, as understood by golang.org/x/exp/ebnf.

Productions with capitalized names are syntactic productions and are turned
into grammar rules, one rule per top-level alternative. Productions with
lower-case names are lexical productions; references to them become terminals.
Quoted tokens are terminals as well.

Left-factoring works on plain BNF, therefore syntactic productions may not
contain groups, options or repetitions:

    Stmt = "if" Expr "then" Stmt
         | "if" Expr "then" Stmt "else" Stmt
         | ident "=" Expr .
    Expr = ident | number .
    ident = "a" … "z" { "a" … "z" } .

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ebnfin

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/lfactor/grammar"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/ebnf"
)

// tracer traces with key 'lfactor.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("lfactor.grammar")
}

// ErrNotPlainBNF is returned for syntactic productions using EBNF operators.
var ErrNotPlainBNF = errors.New("production is not plain BNF")

// Load reads an EBNF grammar from a file. If start is not empty, the grammar is
// verified with start as the start production.
func Load(filename string, start string) (*grammar.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()
	return Read(filename, f, start)
}

// Read reads an EBNF grammar from r. name is used for error messages and as the
// name of the resulting grammar.
func Read(name string, r io.Reader, start string) (*grammar.Grammar, error) {
	eg, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if start != "" {
		if err := ebnf.Verify(eg, start); err != nil {
			return nil, fmt.Errorf("verify grammar: %w", err)
		}
	}
	return convert(name, eg)
}

func convert(name string, eg ebnf.Grammar) (*grammar.Grammar, error) {
	prods := make([]*ebnf.Production, 0, len(eg))
	for _, p := range eg {
		if isLexical(p.Name.String) {
			continue
		}
		prods = append(prods, p)
	}
	sort.Slice(prods, func(i, j int) bool { // keep the order of the source
		return prods[i].Name.Pos().Offset < prods[j].Name.Pos().Offset
	})
	c := &converter{b: grammar.NewGrammarBuilder(name), tokens: make(map[string]int)}
	for _, p := range prods {
		if err := c.production(p); err != nil {
			return nil, err
		}
	}
	return c.b.Grammar()
}

type converter struct {
	b      *grammar.GrammarBuilder
	tokens map[string]int // token values for terminals
}

func (c *converter) production(p *ebnf.Production) error {
	lhs := p.Name.String
	if p.Expr == nil {
		tracer().Debugf("%s: empty production", lhs)
		c.b.LHS(lhs).Epsilon()
		return nil
	}
	branches := []ebnf.Expression{p.Expr}
	if alt, ok := p.Expr.(ebnf.Alternative); ok {
		branches = alt
	}
	for _, branch := range branches {
		rb := c.b.LHS(lhs)
		items := []ebnf.Expression{branch}
		if seq, ok := branch.(ebnf.Sequence); ok {
			items = seq
		}
		for _, x := range items {
			switch e := x.(type) {
			case *ebnf.Name:
				if isLexical(e.String) {
					rb.T(e.String, c.tokval(e.String))
				} else {
					rb.N(e.String)
				}
			case *ebnf.Token:
				rb.T(e.String, c.tokval(e.String))
			default:
				pos := x.Pos()
				return fmt.Errorf("%s: %s uses %T: %w", pos, lhs, x, ErrNotPlainBNF)
			}
		}
		rb.End()
	}
	return nil
}

func (c *converter) tokval(name string) int {
	if v, ok := c.tokens[name]; ok {
		return v
	}
	v := len(c.tokens) + 1
	c.tokens[name] = v
	return v
}

// isLexical follows the convention of package ebnf: lexical productions start
// with a lower-case letter.
func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return len(name) > 0 && !unicode.IsUpper(ch)
}
