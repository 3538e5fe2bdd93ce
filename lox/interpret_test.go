package lox

import (
	"bytes"
	"testing"
)

func TestInterpretOk(t *testing.T) {
	var out bytes.Buffer
	result := Interpret([]byte("1 + 2"), Options{Stdout: &out})
	if result != Ok {
		t.Fatalf("expected Ok, got %v", result)
	}
	if got := out.String(); got != "3\n" {
		t.Errorf("expected %q, got %q", "3\n", got)
	}
}

func TestInterpretCompileError(t *testing.T) {
	result := Interpret([]byte("(1 + 2"), Options{})
	if result != CompileError {
		t.Fatalf("expected CompileError, got %v", result)
	}
}

func TestInterpretCompileErrorIsWrittenToOptsStderr(t *testing.T) {
	// Compile diagnostics must flow through opts.Stderr like runtime
	// diagnostics do, not only to the process's real stderr.
	var stderr bytes.Buffer
	result := Interpret([]byte("(1 + 2"), Options{Stderr: &stderr})
	if result != CompileError {
		t.Fatalf("expected CompileError, got %v", result)
	}
	if got := stderr.String(); got == "" {
		t.Errorf("expected a compile error message captured on opts.Stderr")
	}
}

func TestInterpretRuntimeError(t *testing.T) {
	var stderr bytes.Buffer
	result := Interpret([]byte(`-"x"`), Options{Stderr: &stderr})
	if result != RuntimeError {
		t.Fatalf("expected RuntimeError, got %v", result)
	}
	if got := stderr.String(); got == "" {
		t.Errorf("expected a runtime error message on stderr")
	}
}

func TestInterpretDumpWritesDisassembly(t *testing.T) {
	var dump bytes.Buffer
	result := Interpret([]byte("1 + 2"), Options{Dump: &dump})
	if result != Ok {
		t.Fatalf("expected Ok, got %v", result)
	}
	if got := dump.String(); got == "" {
		t.Errorf("expected disassembly output")
	}
}

func TestInterpretTraceWritesInstructions(t *testing.T) {
	var trace bytes.Buffer
	result := Interpret([]byte("1 + 2"), Options{Trace: &trace})
	if result != Ok {
		t.Fatalf("expected Ok, got %v", result)
	}
	if got := trace.String(); got == "" {
		t.Errorf("expected trace output")
	}
}
