package ebnfin

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/lfactor/prefix"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const statements = `
Stmt = "if" Expr "then" Stmt
     | "if" Expr "then" Stmt "else" Stmt
     | ident "=" Expr .
Expr = ident | number .
ident = "a" … "z" .
number = "0" … "9" .
`

func TestRead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lfactor.grammar")
	defer teardown()
	//
	g, err := Read("statements", strings.NewReader(statements), "Stmt")
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if len(g.Rules()) != 5 {
		t.Errorf("Expected 5 rules, have %d", len(g.Rules()))
	}
	nts := g.NonTerminals()
	if len(nts) != 2 || nts[0].Name() != "Stmt" || nts[1].Name() != "Expr" {
		t.Fatalf("Expected non-terminals [Stmt Expr] in source order, have %v", nts)
	}
	if A := g.Symbol("ident"); A == nil || !A.IsTerminal() {
		t.Errorf("Expected lexical production ident to be a terminal, is %v", A)
	}
	if A := g.Symbol("then"); A == nil || !A.IsTerminal() {
		t.Errorf("Expected token \"then\" to be a terminal, is %v", A)
	}
	plan, err := prefix.Factor(nts[0])
	if err != nil {
		t.Fatal(err)
	}
	if grp, ok := plan.Lookup("if", "Expr", "then"); !ok || len(grp.Alternatives) != 2 {
		t.Errorf("Expected group [if Expr then] with 2 rules, plan is %v", plan.Groups)
	}
	if grp, ok := plan.Lookup("ident"); !ok || len(grp.Alternatives) != 1 {
		t.Errorf("Expected group [ident] with 1 rule, plan is %v", plan.Groups)
	}
}

func TestEmptyProduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lfactor.grammar")
	defer teardown()
	//
	g, err := Read("eps", strings.NewReader(`A = "a" B . B = .`), "")
	if err != nil {
		t.Fatal(err)
	}
	if r := g.Rule(1); r == nil || !r.IsEps() || r.LHS.Name() != "B" {
		t.Errorf("Expected rule 1 to be epsilon rule for B, is %v", r)
	}
}

func TestRejectEBNFOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lfactor.grammar")
	defer teardown()
	//
	for _, input := range []string{
		`A = "a" [ "b" ] .`,
		`A = "a" { "b" } .`,
		`A = ( "a" | "b" ) "c" .`,
	} {
		if _, err := Read("ebnf", strings.NewReader(input), ""); !errors.Is(err, ErrNotPlainBNF) {
			t.Errorf("Expected %q to be rejected, error is %v", input, err)
		}
	}
}

func TestReadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lfactor.grammar")
	defer teardown()
	//
	if _, err := Read("syntax", strings.NewReader(`A = "a" `), ""); err == nil {
		t.Errorf("Expected syntax error for missing period")
	}
	if _, err := Read("verify", strings.NewReader(`A = B .`), "A"); err == nil {
		t.Errorf("Expected verification to fail for undefined B")
	}
	if _, err := Load("./does-not-exist.ebnf", ""); err == nil {
		t.Errorf("Expected error for missing file")
	}
}
