package vm

import (
	"fmt"
	"io"
)

// StackMax is the VM's fixed operand-stack capacity (spec.md §4.6).
const StackMax = 256

// RuntimeError is a runtime type-check failure. It carries the message
// and the source line recorded in the chunk's line map for the
// offending instruction, per spec.md §7.
type RuntimeError struct {
	Message string
	Line    int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d] in script", e.Message, e.Line)
}

// VM is the stack-based bytecode interpreter. One VM executes one Chunk
// against one Heap for the lifetime of a single Interpret call; Trace,
// when non-nil, makes Run print the stack and the current instruction
// before every fetch (the "trace each instruction" debug toggle from
// spec.md §6).
type VM struct {
	stack    [StackMax]Value
	stackTop int

	chunk *Chunk
	heap  *Heap
	ip    int

	Trace io.Writer
	Out   io.Writer
}

// New creates a VM with no chunk loaded; call Run to execute one.
func New() *VM {
	return &VM{}
}

func (vm *VM) push(v Value) error {
	if vm.stackTop >= StackMax {
		return &RuntimeError{Message: "Stack overflow.", Line: vm.currentLine()}
	}
	vm.stack[vm.stackTop] = v
	vm.stackTop++
	return nil
}

func (vm *VM) pop() Value {
	vm.stackTop--
	return vm.stack[vm.stackTop]
}

func (vm *VM) peek(distance int) Value {
	return vm.stack[vm.stackTop-1-distance]
}

func (vm *VM) currentLine() int {
	if vm.ip > 0 {
		return vm.chunk.GetLine(vm.ip - 1)
	}
	return vm.chunk.GetLine(0)
}

// Run executes chunk's bytecode against heap (the same Heap the compiler
// interned string literals into) and returns the value produced by
// OpReturn, or a *RuntimeError on a type-check failure.
func (vm *VM) Run(chunk *Chunk, heap *Heap) (Value, error) {
	vm.chunk = chunk
	vm.heap = heap
	vm.ip = 0
	vm.stackTop = 0

	out := vm.Out
	if out == nil {
		out = io.Discard
	}

	for {
		if vm.Trace != nil {
			vm.printStack()
			vm.chunk.DisassembleInstruction(vm.ip, vm.heap, vm.Trace)
		}

		op := Opcode(vm.readByte())

		switch op {
		case OpConstant:
			idx := vm.readByte()
			if err := vm.push(vm.chunk.Constants[idx]); err != nil {
				return Nil(), err
			}

		case OpNil:
			if err := vm.push(Nil()); err != nil {
				return Nil(), err
			}

		case OpFalse:
			if err := vm.push(Bool(false)); err != nil {
				return Nil(), err
			}

		case OpTrue:
			if err := vm.push(Bool(true)); err != nil {
				return Nil(), err
			}

		case OpEqual:
			b := vm.pop()
			a := vm.pop()
			if err := vm.push(Bool(a.Equals(b))); err != nil {
				return Nil(), err
			}

		case OpGreater:
			a, b, err := vm.popNumberPair()
			if err != nil {
				return Nil(), err
			}
			if err := vm.push(Bool(a > b)); err != nil {
				return Nil(), err
			}

		case OpLess:
			a, b, err := vm.popNumberPair()
			if err != nil {
				return Nil(), err
			}
			if err := vm.push(Bool(a < b)); err != nil {
				return Nil(), err
			}

		case OpAdd:
			if err := vm.add(); err != nil {
				return Nil(), err
			}

		case OpSubtract:
			a, b, err := vm.popNumberPair()
			if err != nil {
				return Nil(), err
			}
			if err := vm.push(Number(a - b)); err != nil {
				return Nil(), err
			}

		case OpMultiply:
			a, b, err := vm.popNumberPair()
			if err != nil {
				return Nil(), err
			}
			if err := vm.push(Number(a * b)); err != nil {
				return Nil(), err
			}

		case OpDivide:
			a, b, err := vm.popNumberPair()
			if err != nil {
				return Nil(), err
			}
			if err := vm.push(Number(a / b)); err != nil {
				return Nil(), err
			}

		case OpNot:
			v := vm.pop()
			if err := vm.push(Bool(v.IsFalsey())); err != nil {
				return Nil(), err
			}

		case OpNegate:
			if !vm.peek(0).IsNumber() {
				return Nil(), vm.runtimeError("Operand must be a number.")
			}
			vm.stack[vm.stackTop-1] = Number(-vm.peek(0).AsNumber())

		case OpReturn:
			result := vm.pop()
			fmt.Fprintln(out, result.Text(vm.heap))
			return result, nil

		default:
			return Nil(), vm.runtimeError("Unknown opcode: %d", op)
		}
	}
}

func (vm *VM) readByte() byte {
	b := vm.chunk.Code[vm.ip]
	vm.ip++
	return b
}

// popNumberPair pops b then a (in that order, matching left-to-right
// evaluation of `a OP b`) and requires both be numbers, per spec.md §4.6.
func (vm *VM) popNumberPair() (a, b float64, err error) {
	if !vm.peek(0).IsNumber() || !vm.peek(1).IsNumber() {
		return 0, 0, vm.runtimeError("Operands must be numbers.")
	}
	bv := vm.pop()
	av := vm.pop()
	return av.AsNumber(), bv.AsNumber(), nil
}

// add implements OP_ADD's polymorphism: numeric addition, or string
// concatenation when both operands are strings. Any other mix is a
// runtime error. The concatenation
// result is interned into the heap, same as compiler-time literals, so
// Value equality never needs heap access (spec.md §9).
func (vm *VM) add() error {
	bIsString := vm.peek(0).IsString()
	aIsString := vm.peek(1).IsString()

	if vm.peek(0).IsNumber() && vm.peek(1).IsNumber() {
		b := vm.pop()
		a := vm.pop()
		return vm.push(Number(a.AsNumber() + b.AsNumber()))
	}

	if aIsString && bIsString {
		b := vm.pop()
		a := vm.pop()
		concatenated := a.Text(vm.heap) + b.Text(vm.heap)
		ref := vm.heap.InternString(concatenated)
		return vm.push(ObjString(ref))
	}

	return vm.runtimeError("Operands must be numbers or strings.")
}

func (vm *VM) runtimeError(format string, args ...interface{}) error {
	return &RuntimeError{
		Message: fmt.Sprintf(format, args...),
		Line:    vm.currentLine(),
	}
}

func (vm *VM) printStack() {
	fmt.Fprint(vm.Trace, "          ")
	for i := 0; i < vm.stackTop; i++ {
		fmt.Fprintf(vm.Trace, "[ %s ]", vm.stack[i].DebugText(vm.heap))
	}
	fmt.Fprintln(vm.Trace)
}
