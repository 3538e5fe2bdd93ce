package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// version is bumped by hand; there's no build-time injection in this
// single-binary CLI.
const version = "0.1.0"

type versionCmd struct{}

func (*versionCmd) Name() string             { return "version" }
func (*versionCmd) Synopsis() string         { return "print the interpreter version" }
func (*versionCmd) Usage() string            { return "version\n" }
func (*versionCmd) SetFlags(*flag.FlagSet)   {}
func (*versionCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	fmt.Println("pidgin-lang", version)
	return subcommands.ExitSuccess
}
