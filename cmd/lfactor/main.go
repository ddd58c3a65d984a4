/*
Command lfactor computes left-factoring plans for grammars.

Grammars are read either in EBNF (files ending in '.ebnf') or in the compact
notation of package notation:

    lfactor plan grammar.bnf                  // plans for all non-terminals
    lfactor plan --nonterminal Stmt go.ebnf   // plan for one non-terminal
    lfactor tree --nonterminal Stmt go.ebnf   // show the prefix forest
    lfactor repl                              // enter rules interactively

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'lfactor.cli'.
func tracer() tracing.Trace {
	return tracing.Select("lfactor.cli")
}

// tracing keys of all the packages of this module
var traceKeys = []string{"lfactor.cli", "lfactor.prefix", "lfactor.grammar", "lfactor.notation"}

func main() {
	initDisplay()
	var tlevel string
	rootCmd := &cobra.Command{
		Use:   "lfactor",
		Short: "Left-factoring plans for context-free grammars",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(tlevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&tlevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newReplCmd())
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func setupTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(tracing.TraceLevelFromString(level))
	}
	tracer().Infof("Trace level is %s", level)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
