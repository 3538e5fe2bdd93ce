package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"pidgin-lang/lox"
)

type replCmd struct {
	trace bool
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start an interactive read-eval-print loop" }
func (*replCmd) Usage() string {
	return "repl [-trace]\n  Evaluate one expression per line until EOF (Ctrl-D) or 'exit'.\n"
}

func (cmd *replCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.trace, "trace", false, "trace the stack and each instruction during execution")
}

func (cmd *replCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New("pidgin> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "repl: %s\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "repl: %s\n", err)
			return subcommands.ExitFailure
		}

		if line == "" || line == "exit" {
			if line == "exit" {
				return subcommands.ExitSuccess
			}
			continue
		}

		opts := lox.Options{Stdout: os.Stdout, Stderr: os.Stderr}
		if cmd.trace {
			opts.Trace = os.Stdout
		}
		lox.Interpret([]byte(line), opts)
	}
}
