package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"pidgin-lang/lox"
)

type runCmd struct {
	dump  bool
	trace bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "compile and run a source file" }
func (*runCmd) Usage() string {
	return "run [-dump] [-trace] <file>\n  Compile and execute a single expression from <file>.\n"
}

func (cmd *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.dump, "dump", false, "disassemble the compiled chunk before running it")
	f.BoolVar(&cmd.trace, "trace", false, "trace the stack and each instruction during execution")
}

func (cmd *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "run: expected exactly one file argument")
		return subcommands.ExitUsageError
	}

	source, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: %s\n", err)
		return subcommands.ExitFailure
	}

	opts := lox.Options{Stdout: os.Stdout, Stderr: os.Stderr}
	if cmd.dump {
		opts.Dump = os.Stdout
	}
	if cmd.trace {
		opts.Trace = os.Stdout
	}

	switch lox.Interpret(source, opts) {
	case lox.Ok:
		return subcommands.ExitSuccess
	case lox.CompileError:
		return subcommands.ExitStatus(65)
	default:
		return subcommands.ExitStatus(70)
	}
}
