package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lfactor/prefix"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newTreeCmd() *cobra.Command {
	var gf grammarFlags
	var factored bool
	cmd := &cobra.Command{
		Use:           "tree <file>",
		Short:         "Display the prefix forest of a non-terminal",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if gf.nonterminal == "" {
				return fmt.Errorf("tree needs a non-terminal, use --nonterminal")
			}
			g, err := loadGrammar(args[0], gf.format, gf.start)
			if err != nil {
				return err
			}
			N, ok := g.NonTerminal(gf.nonterminal)
			if !ok {
				return fmt.Errorf("grammar %s has no rules for %q", g.Name, gf.nonterminal)
			}
			tree, err := prefix.Build(N, gf.options()...)
			if err != nil {
				return err
			}
			if factored {
				if _, err = tree.FactoredOut(); err != nil {
					return err
				}
			}
			tree.Dump()
			pterm.Println(tree.NonTerminal)
			root := pterm.NewTreeFromLeveledList(leveledForest(tree))
			pterm.DefaultTree.WithRoot(root).Render()
			return nil
		},
	}
	gf.register(cmd)
	cmd.Flags().BoolVar(&factored, "factored", false, "show the forest after chain contraction")
	return cmd
}

// leveledForest flattens a prefix forest in pre-order, one item per node.
// Nodes holding alternatives show them in brackets.
func leveledForest(tree *prefix.Tree) pterm.LeveledList {
	var ll pterm.LeveledList
	var walk func(node *prefix.Node)
	walk = func(node *prefix.Node) {
		text := node.Label
		if alts := node.Alternatives(); len(alts) > 0 {
			s := make([]string, len(alts))
			for i, alt := range alts {
				s[i] = "[" + altString(alt) + "]"
			}
			text = text + "  " + strings.Join(s, " ")
		}
		ll = append(ll, pterm.LeveledListItem{Level: node.Depth, Text: text})
		for _, ch := range node.Children() {
			walk(ch)
		}
	}
	for _, root := range tree.Roots() {
		walk(root)
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}
