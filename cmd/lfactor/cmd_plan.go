package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/npillmayer/lfactor"
	"github.com/npillmayer/lfactor/grammar"
	"github.com/npillmayer/lfactor/grammar/ebnfin"
	"github.com/npillmayer/lfactor/notation"
	"github.com/npillmayer/lfactor/prefix"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// grammarFlags are the flags for loading a grammar.
type grammarFlags struct {
	format      string // "ebnf" or "bnf"; empty: decide by file extension
	start       string // start production for EBNF verification
	nonterminal string // restrict output to this non-terminal
	check       bool   // verify prefix tree invariants after each step
}

func (gf *grammarFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&gf.format, "format", "", "grammar format [ebnf|bnf] (default: by file extension)")
	cmd.Flags().StringVar(&gf.start, "start", "", "start production for verification of EBNF grammars")
	cmd.Flags().StringVarP(&gf.nonterminal, "nonterminal", "n", "", "non-terminal to factor (default: all)")
	cmd.Flags().BoolVar(&gf.check, "check", false, "verify prefix tree invariants after each step (slow)")
}

func (gf *grammarFlags) options() []prefix.Option {
	return []prefix.Option{prefix.CheckInvariants(gf.check)}
}

func newPlanCmd() *cobra.Command {
	var gf grammarFlags
	var fingerprint bool
	cmd := &cobra.Command{
		Use:           "plan <file>",
		Short:         "Print left-factoring plans for the non-terminals of a grammar",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrammar(args[0], gf.format, gf.start)
			if err != nil {
				return err
			}
			nts, err := selectNonTerminals(g, gf.nonterminal)
			if err != nil {
				return err
			}
			plans, err := prefix.FactorAll(nts, gf.options()...)
			if err != nil {
				return err
			}
			for _, nt := range nts {
				printPlan(plans[nt.Name()])
				if fingerprint {
					if err = printFingerprint(plans[nt.Name()]); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	gf.register(cmd)
	cmd.Flags().BoolVar(&fingerprint, "fingerprint", false, "print a hash of each plan, for comparing runs")
	return cmd
}

// loadGrammar reads a grammar file, either in EBNF or in compact notation.
func loadGrammar(filename, format, start string) (*grammar.Grammar, error) {
	if format == "" {
		format = "bnf"
		if strings.EqualFold(filepath.Ext(filename), ".ebnf") {
			format = "ebnf"
		}
	}
	tracer().Infof("Loading %s grammar from %s", format, filename)
	switch format {
	case "ebnf":
		return ebnfin.Load(filename, start)
	case "bnf":
		src, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("open grammar: %w", err)
		}
		return notation.Parse(filename, string(src))
	}
	return nil, fmt.Errorf("unknown grammar format %q", format)
}

func selectNonTerminals(g *grammar.Grammar, name string) ([]lfactor.NonTerminal, error) {
	if name == "" {
		return g.AsNonTerminals(), nil
	}
	N, ok := g.NonTerminal(name)
	if !ok {
		return nil, fmt.Errorf("grammar %s has no rules for %q", g.Name, name)
	}
	return []lfactor.NonTerminal{N}, nil
}

// printPlan prints a factoring plan as a table.
func printPlan(plan *prefix.Plan) {
	plan.Dump()
	pterm.DefaultSection.Println(plan.NonTerminal)
	td := pterm.TableData{{"Prefix", "Shared", "Alternatives"}}
	for _, g := range plan.Groups {
		alts := make([]string, len(g.Alternatives))
		for i, alt := range g.Alternatives {
			alts[i] = altString(alt)
		}
		td = append(td, []string{
			strings.Join(g.Prefix, " "),
			strconv.Itoa(g.Len()),
			strings.Join(alts, "  |  "),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(td).Render()
	if n := len(plan.Factorable()); n == 0 {
		pterm.Info.Println("nothing to factor")
	} else {
		pterm.Info.Printf("%d prefix(es) to factor out\n", n)
	}
}

func printFingerprint(plan *prefix.Plan) error {
	fp, err := plan.Fingerprint()
	if err != nil {
		return fmt.Errorf("fingerprint of plan %s: %w", plan.NonTerminal, err)
	}
	pterm.Info.Printf("fingerprint %s: %s\n", plan.NonTerminal, fp)
	return nil
}

func altString(alt lfactor.Alternative) string {
	return strings.Join(lfactor.Names(alt), " ")
}
