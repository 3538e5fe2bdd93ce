package vm

import "fmt"

// writer is the minimal surface Disassemble needs; satisfied by
// *os.File, *bytes.Buffer, io.Writer generally.
type writer interface {
	Write(p []byte) (int, error)
}

// Disassemble renders every instruction in c to w, one per line, each
// prefixed by its byte offset and source line (or "|" when continuing
// the same line as the previous instruction). A heap is required to
// render string constants; the compiler and VM always hold one for the
// chunk's whole lifetime (spec.md §9), so there is no heap-less variant.
// Grounded on the simple_instruction/constant_instruction split in the
// reference rlox debug.rs, adapted to a Writer instead of direct prints.
func (c *Chunk) Disassemble(name string, heap *Heap, w writer) {
	fmt.Fprintf(w, "== %s ==\n", name)
	for offset := 0; offset < len(c.Code); {
		offset = c.DisassembleInstruction(offset, heap, w)
	}
}

// DisassembleInstruction prints the single instruction at offset and
// returns the offset of the next one.
func (c *Chunk) DisassembleInstruction(offset int, heap *Heap, w writer) int {
	fmt.Fprintf(w, "%04d ", offset)

	if offset > 0 && c.Lines[offset] == c.Lines[offset-1] {
		fmt.Fprint(w, "   | ")
	} else {
		fmt.Fprintf(w, "%4d ", c.Lines[offset])
	}

	op := Opcode(c.Code[offset])
	if op == OpConstant {
		return c.constantInstruction(op, offset, heap, w)
	}
	return c.simpleInstruction(op, offset, w)
}

func (c *Chunk) simpleInstruction(op Opcode, offset int, w writer) int {
	fmt.Fprintf(w, "%s\n", op.String())
	return offset + 1
}

func (c *Chunk) constantInstruction(op Opcode, offset int, heap *Heap, w writer) int {
	idx := c.Code[offset+1]
	fmt.Fprintf(w, "%-16s %4d '", op.String(), idx)
	if int(idx) < len(c.Constants) {
		fmt.Fprint(w, c.Constants[idx].DebugText(heap))
	}
	fmt.Fprint(w, "'\n")
	return offset + 2
}
