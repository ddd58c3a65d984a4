package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lfactor/grammar"
	"github.com/npillmayer/lfactor/notation"
	"github.com/npillmayer/lfactor/prefix"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "repl",
		Short:         "Enter grammar rules interactively and print their factoring plans",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.New("lfactor> ")
			if err != nil {
				return err
			}
			defer rl.Close()
			pterm.Info.Println("Welcome to lfactor")
			tracer().Infof("Quit with <ctrl>D")
			intp := &Intp{repl: rl}
			intp.REPL()
			return nil
		},
	}
}

// Intp is our interpreter object. It collects the rules entered so far.
type Intp struct {
	repl  *readline.Instance
	rules []string
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or adds rules, given on a line by itself.
// Commands are
//
//    :quit    leave the REPL
//    :clear   forget all rules entered so far
//    :rules   list the rules entered so far
//
// Everything else is taken as grammar rules in compact notation. If the rules
// are well-formed, they are kept and plans for all non-terminals are printed.
func (intp *Intp) Eval(line string) (bool, error) {
	switch line {
	case ":quit", ":q":
		return true, nil
	case ":clear":
		intp.rules = intp.rules[:0]
		pterm.Info.Println("rules cleared")
		return false, nil
	case ":rules":
		for _, r := range intp.rules {
			pterm.Println(r)
		}
		return false, nil
	}
	if strings.HasPrefix(line, ":") {
		return false, fmt.Errorf("unknown command %s", line)
	}
	src := strings.Join(append(intp.rules, line), "\n")
	g, err := notation.Parse("repl", src)
	if err != nil {
		return false, err
	}
	intp.rules = append(intp.rules, line)
	plans, err := prefix.FactorAll(g.AsNonTerminals(), prefix.CheckInvariants(false))
	if err != nil {
		return false, err
	}
	g.EachNonTerminal(func(N *grammar.NonTerm) {
		printPlan(plans[N.Name()])
	})
	return false, nil
}
