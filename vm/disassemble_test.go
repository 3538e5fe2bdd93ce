package vm

import (
	"bytes"
	"strings"
	"testing"
)

// TestDisassembleMultiConstantChunk is a regression test: constantInstruction
// must advance the cursor by 2 (opcode + 1-byte index), not 3, or the
// Disassemble loop desyncs after the first Constant and misrenders or
// panics on the rest of the chunk.
func TestDisassembleMultiConstantChunk(t *testing.T) {
	heap := NewHeap()
	chunk := NewChunk()
	a := chunk.AddConstant(Number(1))
	b := chunk.AddConstant(Number(2))
	c := chunk.AddConstant(Number(3))
	chunk.WriteOp(OpConstant, 1)
	chunk.WriteByte(byte(a), 1)
	chunk.WriteOp(OpConstant, 1)
	chunk.WriteByte(byte(b), 1)
	chunk.WriteOp(OpMultiply, 1)
	chunk.WriteOp(OpConstant, 1)
	chunk.WriteByte(byte(c), 1)
	chunk.WriteOp(OpAdd, 1)
	chunk.WriteOp(OpReturn, 1)

	var out bytes.Buffer
	chunk.Disassemble("test", heap, &out)

	got := out.String()
	for _, want := range []string{"OP_CONSTANT", "OP_MULTIPLY", "OP_ADD", "OP_RETURN"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected disassembly to contain %s, got:\n%s", want, got)
		}
	}
	if strings.Contains(got, "OP_NIL") || strings.Contains(got, "OP_UNKNOWN") {
		t.Errorf("disassembly drifted into a bogus instruction:\n%s", got)
	}
}

// TestDisassembleConstantZeroNearChunkEnd guards against the cursor
// overshoot that, pre-fix, could land mid-chunk on a byte equal to 0
// (OpConstant's wire value) and read c.Code[offset+1] out of bounds.
func TestDisassembleConstantZeroNearChunkEnd(t *testing.T) {
	heap := NewHeap()
	chunk := NewChunk()
	idx := chunk.AddConstant(Number(0))
	chunk.WriteOp(OpConstant, 1)
	chunk.WriteByte(byte(idx), 1)
	chunk.WriteOp(OpReturn, 1)

	var out bytes.Buffer
	chunk.Disassemble("test", heap, &out)
}
