// Package lox wires the scanner, compiler, and VM together behind the
// single entry point a host program calls: Interpret.
package lox

import (
	"io"

	"pidgin-lang/compiler"
	"pidgin-lang/vm"
)

// Result is the outcome of one Interpret call, mapped by the host to a
// process exit code (0, 65, 70 respectively).
type Result int

const (
	Ok Result = iota
	CompileError
	RuntimeError
)

// Options configures the optional debug toggles and I/O destinations for
// one Interpret call. A zero Options discards all output.
type Options struct {
	// Stdout receives the value printed by OP_RETURN. Defaults to
	// io.Discard if nil.
	Stdout io.Writer
	// Stderr receives compile and runtime error diagnostics. Defaults to
	// io.Discard if nil.
	Stderr io.Writer
	// Trace, when non-nil, makes the VM print the stack and the current
	// instruction before every dispatch.
	Trace io.Writer
	// Dump, when non-nil, makes Interpret disassemble the compiled chunk
	// before running it.
	Dump io.Writer
}

// Interpret compiles source and, if compilation succeeds, runs it
// against a fresh Heap. The Heap is torn down before Interpret returns,
// per the single-owner, scoped-lifetime resource model.
func Interpret(source []byte, opts Options) Result {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	heap := vm.NewHeap()
	defer heap.Clear()

	chunk, ok := compiler.Compile(source, heap, stderr)
	if !ok {
		return CompileError
	}

	if opts.Dump != nil {
		chunk.Disassemble("script", heap, opts.Dump)
	}

	machine := vm.New()
	machine.Out = stdout
	machine.Trace = opts.Trace

	_, err := machine.Run(chunk, heap)
	if err != nil {
		io.WriteString(stderr, err.Error())
		io.WriteString(stderr, "\n")
		return RuntimeError
	}

	return Ok
}
