package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"pidgin-lang/compiler"
	"pidgin-lang/vm"
)

type disasmCmd struct{}

func (*disasmCmd) Name() string     { return "disasm" }
func (*disasmCmd) Synopsis() string { return "compile a file and print its disassembly, without running it" }
func (*disasmCmd) Usage() string {
	return "disasm <file>\n  Compile <file> and print the chunk's disassembly to stdout.\n"
}

func (*disasmCmd) SetFlags(*flag.FlagSet) {}

func (*disasmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "disasm: expected exactly one file argument")
		return subcommands.ExitUsageError
	}

	source, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "disasm: %s\n", err)
		return subcommands.ExitFailure
	}

	heap := vm.NewHeap()
	defer heap.Clear()

	chunk, ok := compiler.Compile(source, heap, os.Stderr)
	if !ok {
		return subcommands.ExitStatus(65)
	}

	chunk.Disassemble(f.Arg(0), heap, os.Stdout)
	return subcommands.ExitSuccess
}
