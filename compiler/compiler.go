// Package compiler implements a single-pass Pratt (operator-precedence)
// compiler: it consumes the token stream straight from the scanner and
// emits bytecode, with no intermediate AST.
package compiler

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"pidgin-lang/scanner"
	"pidgin-lang/token"
	"pidgin-lang/vm"
)

// Precedence is the Pratt ladder. Values increase with binding power;
// Primary is the unreachable top sentinel (next(Primary) == Primary).
type Precedence byte

const (
	PrecNone Precedence = iota
	PrecAssignment
	PrecOr
	PrecAnd
	PrecEquality
	PrecComparison
	PrecTerm
	PrecFactor
	PrecUnary
	PrecCall
	PrecPrimary
)

func (p Precedence) next() Precedence {
	if p >= PrecPrimary {
		return PrecPrimary
	}
	return p + 1
}

type (
	prefixFn func(c *Compiler)
	infixFn  func(c *Compiler)
)

type rule struct {
	prefix     prefixFn
	infix      infixFn
	precedence Precedence
}

var rules map[token.Kind]rule

func init() {
	rules = map[token.Kind]rule{
		token.LeftParen:    {prefix: (*Compiler).grouping},
		token.Minus:        {prefix: (*Compiler).unary, infix: (*Compiler).binary, precedence: PrecTerm},
		token.Plus:         {infix: (*Compiler).binary, precedence: PrecTerm},
		token.Slash:        {infix: (*Compiler).binary, precedence: PrecFactor},
		token.Star:         {infix: (*Compiler).binary, precedence: PrecFactor},
		token.Number:       {prefix: (*Compiler).number},
		token.Bang:         {prefix: (*Compiler).unary},
		token.BangEqual:    {infix: (*Compiler).binary, precedence: PrecEquality},
		token.EqualEqual:   {infix: (*Compiler).binary, precedence: PrecEquality},
		token.Greater:      {infix: (*Compiler).binary, precedence: PrecComparison},
		token.GreaterEqual: {infix: (*Compiler).binary, precedence: PrecComparison},
		token.Less:         {infix: (*Compiler).binary, precedence: PrecComparison},
		token.LessEqual:    {infix: (*Compiler).binary, precedence: PrecComparison},
		token.Nil:          {prefix: (*Compiler).literal},
		token.False:        {prefix: (*Compiler).literal},
		token.True:         {prefix: (*Compiler).literal},
		token.String:       {prefix: (*Compiler).string},
	}
}

func ruleFor(k token.Kind) rule {
	return rules[k]
}

// Compiler holds the single-pass compile state: the token lookahead
// pair, error flags, and the chunk/heap being written to. There is no
// synchronization point in this expression-only grammar, so panicMode
// is set but never cleared — the first real error is the only one
// reported.
type Compiler struct {
	scanner *scanner.Scanner
	current token.Token
	prev    token.Token
	source  []byte

	hadError  bool
	panicMode bool

	chunk *vm.Chunk
	heap  *vm.Heap

	errOut io.Writer
}

// Compile parses a single expression from source and emits its bytecode
// into a fresh chunk, sharing heap for string interning. Compile
// diagnostics (the "[line N] Error at ..." messages) are written to
// errOut; passing nil defaults to os.Stderr. Compile returns the chunk
// and whether compilation succeeded; on failure the chunk is partially
// built and must be discarded.
func Compile(source []byte, heap *vm.Heap, errOut io.Writer) (*vm.Chunk, bool) {
	if errOut == nil {
		errOut = os.Stderr
	}
	c := &Compiler{
		scanner: scanner.New(source),
		source:  source,
		chunk:   vm.NewChunk(),
		heap:    heap,
		errOut:  errOut,
	}

	c.advance()
	c.parsePrecedence(PrecAssignment)
	c.consume(token.EOF, "Expect end of expression.")
	c.emitOp(vm.OpReturn)

	return c.chunk, !c.hadError
}

// ============================================================================
// Token stream
// ============================================================================

func (c *Compiler) advance() {
	c.prev = c.current
	for {
		c.current = c.scanner.Next()
		if c.current.Kind != token.Error {
			break
		}
		c.errorAtCurrent("Unknown token")
	}
}

func (c *Compiler) consume(kind token.Kind, message string) {
	if c.current.Kind == kind {
		c.advance()
		return
	}
	c.errorAtCurrent(message)
}

func (c *Compiler) check(kind token.Kind) bool {
	return c.current.Kind == kind
}

// ============================================================================
// Pratt core
// ============================================================================

func (c *Compiler) parsePrecedence(p Precedence) {
	c.advance()
	prefix := ruleFor(c.prev.Kind).prefix
	if prefix == nil {
		c.errorAtPrev("Expect expression.")
		return
	}
	prefix(c)

	for p <= ruleFor(c.current.Kind).precedence {
		c.advance()
		infix := ruleFor(c.prev.Kind).infix
		infix(c)
	}
}

func (c *Compiler) expression() {
	c.parsePrecedence(PrecAssignment)
}

// ============================================================================
// Prefix handlers
// ============================================================================

func (c *Compiler) grouping() {
	c.expression()
	c.consume(token.RightParen, "Expect ')' after expression.")
}

func (c *Compiler) unary() {
	opKind := c.prev.Kind
	line := c.prev.Line

	c.parsePrecedence(PrecUnary)

	switch opKind {
	case token.Minus:
		c.emitOpAt(vm.OpNegate, line)
	case token.Bang:
		c.emitOpAt(vm.OpNot, line)
	}
}

func (c *Compiler) number() {
	lexeme := c.prev.Lexeme(c.source)
	n, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		c.errorAtPrev("Invalid number literal.")
		return
	}
	c.emitConstant(vm.Number(n))
}

func (c *Compiler) literal() {
	switch c.prev.Kind {
	case token.Nil:
		c.emitOpAt(vm.OpNil, c.prev.Line)
	case token.False:
		c.emitOpAt(vm.OpFalse, c.prev.Line)
	case token.True:
		c.emitOpAt(vm.OpTrue, c.prev.Line)
	}
}

func (c *Compiler) string() {
	lexeme := c.prev.Lexeme(c.source)
	text := lexeme[1 : len(lexeme)-1] // strip surrounding quotes, no escapes
	ref := c.heap.InternString(text)
	c.emitConstant(vm.ObjString(ref))
}

// ============================================================================
// Infix handler
// ============================================================================

func (c *Compiler) binary() {
	opKind := c.prev.Kind
	line := c.prev.Line
	r := ruleFor(opKind)
	c.parsePrecedence(r.precedence.next())

	switch opKind {
	case token.Plus:
		c.emitOpAt(vm.OpAdd, line)
	case token.Minus:
		c.emitOpAt(vm.OpSubtract, line)
	case token.Star:
		c.emitOpAt(vm.OpMultiply, line)
	case token.Slash:
		c.emitOpAt(vm.OpDivide, line)
	case token.EqualEqual:
		c.emitOpAt(vm.OpEqual, line)
	case token.BangEqual:
		c.emitOpAt(vm.OpEqual, line)
		c.emitOpAt(vm.OpNot, line)
	case token.Less:
		c.emitOpAt(vm.OpLess, line)
	case token.LessEqual:
		c.emitOpAt(vm.OpGreater, line)
		c.emitOpAt(vm.OpNot, line)
	case token.Greater:
		c.emitOpAt(vm.OpGreater, line)
	case token.GreaterEqual:
		c.emitOpAt(vm.OpLess, line)
		c.emitOpAt(vm.OpNot, line)
	}
}

// ============================================================================
// Emission
// ============================================================================

func (c *Compiler) emitOp(op vm.Opcode) {
	c.emitOpAt(op, c.prev.Line)
}

func (c *Compiler) emitOpAt(op vm.Opcode, line int) {
	c.chunk.WriteOp(op, line)
}

// emitConstant appends v to the chunk's constant pool and emits a
// Constant instruction referencing it. Indices beyond 255 can't fit in
// the 1-byte operand; that's reported as a compile error and index 0 is
// emitted instead so the chunk stays well-formed.
func (c *Compiler) emitConstant(v vm.Value) {
	idx := c.chunk.AddConstant(v)
	if idx > 255 {
		c.errorAtPrev("Too many constants in one chunk.")
		idx = 0
	}
	c.emitOp(vm.OpConstant)
	c.chunk.WriteByte(byte(idx), c.prev.Line)
}

// ============================================================================
// Error reporting
// ============================================================================

func (c *Compiler) errorAtCurrent(message string) {
	c.errorAt(c.current, message)
}

func (c *Compiler) errorAtPrev(message string) {
	c.errorAt(c.prev, message)
}

func (c *Compiler) errorAt(tok token.Token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true
	c.hadError = true

	fmt.Fprintf(c.errOut, "[line %d] Error", tok.Line)
	switch tok.Kind {
	case token.EOF:
		fmt.Fprint(c.errOut, " at end")
	case token.Error:
		// lexeme is empty or meaningless for scanner-reported errors
	default:
		fmt.Fprintf(c.errOut, " at '%s'", tok.Lexeme(c.source))
	}
	fmt.Fprintf(c.errOut, ": %s\n", message)
}
