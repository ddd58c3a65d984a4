package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/lfactor/notation"
	"github.com/npillmayer/lfactor/prefix"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const statements = `
Stmt : "if" Expr "then" Stmt
     | "if" Expr "then" Stmt "else" Stmt
     | id "=" Expr ;
Expr : id | num ;
`

func TestLoadGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lfactor.cli")
	defer teardown()
	//
	dir := t.TempDir()
	bnf := filepath.Join(dir, "stmt.bnf")
	if err := os.WriteFile(bnf, []byte(statements), 0644); err != nil {
		t.Fatal(err)
	}
	g, err := loadGrammar(bnf, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Rules()) != 5 {
		t.Errorf("Expected 5 rules, have %d", len(g.Rules()))
	}
	nts, err := selectNonTerminals(g, "Expr")
	if err != nil || len(nts) != 1 {
		t.Errorf("Expected to select Expr, error is %v", err)
	}
	if _, err = selectNonTerminals(g, "Nope"); err == nil {
		t.Errorf("Expected error for unknown non-terminal")
	}
	if _, err = loadGrammar(bnf, "yacc", ""); err == nil {
		t.Errorf("Expected error for unknown grammar format")
	}
	ebnf := filepath.Join(dir, "stmt.ebnf")
	if err := os.WriteFile(ebnf, []byte(`Expr = id | num .`+"\n"+`id = "x" .`+"\n"+`num = "1" .`), 0644); err != nil {
		t.Fatal(err)
	}
	if g, err = loadGrammar(ebnf, "", ""); err != nil {
		t.Fatal(err)
	}
	if _, ok := g.NonTerminal("Expr"); !ok {
		t.Errorf("Expected EBNF grammar to have rules for Expr")
	}
}

func TestLeveledForest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lfactor.cli")
	defer teardown()
	//
	g, err := notation.Parse("statements", statements)
	if err != nil {
		t.Fatal(err)
	}
	S, _ := g.NonTerminal("Stmt")
	tree, err := prefix.Build(S)
	if err != nil {
		t.Fatal(err)
	}
	ll := leveledForest(tree)
	// if Expr then Stmt else  +  id =
	if len(ll) != 7 {
		t.Errorf("Expected 7 items in leveled list, have %d", len(ll))
	}
	if ll[0].Level != 0 || ll[0].Text != "if" {
		t.Errorf("Expected first item to be root 'if', is %v", ll[0])
	}
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lfactor.cli")
	defer teardown()
	//
	intp := &Intp{}
	if quit, err := intp.Eval(`S : a b | a c ;`); quit || err != nil {
		t.Errorf("Expected rule to be accepted, error is %v", err)
	}
	if _, err := intp.Eval(`T : ;; broken`); err == nil {
		t.Errorf("Expected syntax error")
	}
	if len(intp.rules) != 1 {
		t.Errorf("Expected 1 line of rules to be kept, have %d", len(intp.rules))
	}
	if _, err := intp.Eval(`:nope`); err == nil {
		t.Errorf("Expected error for unknown command")
	}
	intp.Eval(`:clear`)
	if len(intp.rules) != 0 {
		t.Errorf("Expected rules to be cleared")
	}
	if quit, _ := intp.Eval(`:quit`); !quit {
		t.Errorf("Expected :quit to end the REPL")
	}
}

func TestPlanAndTreeCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lfactor.cli")
	defer teardown()
	//
	bnf := filepath.Join(t.TempDir(), "stmt.bnf")
	if err := os.WriteFile(bnf, []byte(statements), 0644); err != nil {
		t.Fatal(err)
	}
	plan := newPlanCmd()
	plan.SetArgs([]string{"--check", "--fingerprint", bnf})
	if err := plan.Execute(); err != nil {
		t.Errorf("Expected plan command to succeed, error is %v", err)
	}
	tree := newTreeCmd()
	tree.SetArgs([]string{"--factored", "--nonterminal", "Stmt", bnf})
	if err := tree.Execute(); err != nil {
		t.Errorf("Expected tree command to succeed, error is %v", err)
	}
	tree = newTreeCmd()
	tree.SetArgs([]string{bnf})
	if err := tree.Execute(); err == nil {
		t.Errorf("Expected tree command without --nonterminal to fail")
	}
}

func TestPrintFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lfactor.cli")
	defer teardown()
	//
	g, err := notation.Parse("statements", statements)
	if err != nil {
		t.Fatal(err)
	}
	S, _ := g.NonTerminal("Stmt")
	plan, err := prefix.Factor(S, prefix.CheckInvariants(false))
	if err != nil {
		t.Fatal(err)
	}
	if err = printFingerprint(plan); err != nil {
		t.Errorf("Expected fingerprint to be printed, error is %v", err)
	}
}
