/*
Package notation reads grammars written in a compact BNF notation.

Rules consist of a left hand side, a colon (or '::='), and alternatives
separated by bars. A rule is terminated by a semicolon:

    // dangling else
    Stmt : "if" Expr "then" Stmt
         | "if" Expr "then" Stmt "else" Stmt
         | id "=" Expr ;
    Expr : id | num ;
    Opt  : "x" | ;

Quoted literals are terminals. Identifiers are non-terminals if there is a
rule for them, terminals otherwise. An empty alternative denotes an
epsilon-rule.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/lfactor"
	"github.com/npillmayer/lfactor/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lfactor.notation'.
func tracer() tracing.Trace {
	return tracing.Select("lfactor.notation")
}

// ErrSyntax is returned for input not conforming to the grammar notation.
var ErrSyntax = errors.New("syntax error")

// item is a symbol on the right hand side of a parsed rule.
type item struct {
	name   string
	quoted bool
}

type rule struct {
	lhs  string
	rhs  []item
	span lfactor.Span // source extent of the alternative
}

type parser struct {
	name  string // source name for error messages
	src   string
	tz    *tokenizer
	la    lfactor.Token // lookahead
	lhs   string        // left hand side of the rule being parsed
	at    lfactor.Span  // source extent of the rule being parsed, null between rules
	err   error         // first error
	rules []rule
}

// Parse reads grammar rules in compact notation and creates a grammar named name.
func Parse(name string, input string) (*grammar.Grammar, error) {
	tz, err := newTokenizer(input)
	if err != nil {
		return nil, err
	}
	p := &parser{name: name, src: input, tz: tz}
	tz.Error = p.lexError
	p.advance()
	for p.err == nil && p.la.TokType() != EOF {
		p.rule()
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.grammar()
}

func (p *parser) lexError(err error) {
	logError(err)
	if p.err == nil {
		p.err = fmt.Errorf("%s: %v: %w", p.name, err, ErrSyntax)
	}
}

// advance moves to the next token. The current token is added to the extent of
// the rule being parsed.
func (p *parser) advance() {
	if p.la != nil && p.la.TokType() != EOF {
		if p.at.IsNull() {
			p.at = p.la.Span()
		} else {
			p.at = p.at.Extend(p.la.Span())
		}
	}
	p.la = p.tz.NextToken()
}

// position returns the line and column (both 1-based) of a byte offset.
func (p *parser) position(offset uint64) (int, int) {
	if offset > uint64(len(p.src)) {
		offset = uint64(len(p.src))
	}
	before := p.src[:offset]
	line := strings.Count(before, "\n") + 1
	col := len(before) - strings.LastIndexByte(before, '\n')
	return line, col
}

func (p *parser) fail(expected string) {
	if p.err != nil {
		return
	}
	line, col := p.position(p.la.Span().From())
	where := ""
	if !p.at.IsNull() {
		l, c := p.position(p.at.From())
		where = fmt.Sprintf(" in rule %s at %d:%d", p.lhs, l, c)
		tracer().Errorf("rule text: %s", p.src[p.at.From():p.at.To()])
	}
	p.err = fmt.Errorf("%s:%d:%d: expected %s, found %v%s: %w", p.name, line, col,
		expected, p.la, where, ErrSyntax)
	tracer().Errorf(p.err.Error())
}

func (p *parser) expect(tt lfactor.TokType, expected string) bool {
	if p.la.TokType() != tt {
		p.fail(expected)
		return false
	}
	p.advance()
	return true
}

// rule := Ident ':' alt { '|' alt } ';'
func (p *parser) rule() {
	if p.la.TokType() != Ident {
		p.fail("left hand side of a rule")
		return
	}
	lhs := p.la.Lexeme()
	p.lhs, p.at = lhs, lfactor.Span{}
	p.advance()
	if !p.expect(Colon, "':'") {
		return
	}
	p.alternative(lhs)
	for p.err == nil && p.la.TokType() == Bar {
		p.advance()
		p.alternative(lhs)
	}
	if p.err == nil && p.expect(Semi, "';' or '|'") {
		p.at = lfactor.Span{}
	}
}

// alt := { Ident | Literal }
func (p *parser) alternative(lhs string) {
	r := rule{lhs: lhs}
	for {
		switch p.la.TokType() {
		case Ident:
			r.rhs = append(r.rhs, item{name: p.la.Lexeme()})
		case Literal:
			if p.la.Span().Len() <= 2 {
				p.fail("non-empty literal")
				return
			}
			lit := strings.Trim(p.la.Lexeme(), `"`)
			r.rhs = append(r.rhs, item{name: lit, quoted: true})
		default:
			tracer().Debugf("%s ➞ %v @%v", r.lhs, r.rhs, r.span)
			p.rules = append(p.rules, r)
			return
		}
		if r.span.IsNull() {
			r.span = p.la.Span()
		} else {
			r.span = r.span.Extend(p.la.Span())
		}
		p.advance()
	}
}

// grammar creates a grammar from the parsed rules, deciding for every
// identifier whether it is a terminal.
func (p *parser) grammar() (*grammar.Grammar, error) {
	lhs := make(map[string]bool)
	for _, r := range p.rules {
		lhs[r.lhs] = true
	}
	tokens := make(map[string]int)
	tokval := func(name string) int {
		if _, ok := tokens[name]; !ok {
			tokens[name] = len(tokens) + 1
		}
		return tokens[name]
	}
	b := grammar.NewGrammarBuilder(p.name)
	for _, r := range p.rules {
		if len(r.rhs) == 0 {
			b.LHS(r.lhs).Epsilon()
			continue
		}
		rb := b.LHS(r.lhs)
		for _, it := range r.rhs {
			if it.quoted && lhs[it.name] {
				line, col := p.position(r.span.From())
				return nil, fmt.Errorf("%s:%d:%d: literal %q in '%s' names a non-terminal: %w",
					p.name, line, col, it.name, p.src[r.span.From():r.span.To()], ErrSyntax)
			}
			if !it.quoted && lhs[it.name] {
				rb.N(it.name)
			} else {
				rb.T(it.name, tokval(it.name))
			}
		}
		rb.End()
	}
	return b.Grammar()
}
