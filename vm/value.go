package vm

import (
	"fmt"
	"strconv"
)

// Kind is the closed tag of a Value's variant. Like the teacher's
// NaN-boxed tag bits, it keeps Value a flat, non-allocating sum type —
// this repo just stores the tag and payload as ordinary struct fields
// instead of packing them into the mantissa of a float64, since the
// payload for strings must be a stable heap handle (StringRef), not a
// raw pointer (spec.md §9).
type Kind byte

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindObject
)

// Value is a tagged union of Nil, Bool, Number, or Object (string). Only
// one of b, num, or obj is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	b    bool
	num  float64
	obj  StringRef
}

// Type names for debugging and error messages.
const (
	TypeNil    = "nil"
	TypeBool   = "boolean"
	TypeNumber = "number"
	TypeString = "string"
)

// ============================================================================
// Constructors
// ============================================================================

func Nil() Value                  { return Value{Kind: KindNil} }
func Bool(b bool) Value           { return Value{Kind: KindBool, b: b} }
func Number(n float64) Value      { return Value{Kind: KindNumber, num: n} }
func ObjString(r StringRef) Value { return Value{Kind: KindObject, obj: r} }

// ============================================================================
// Type checking
// ============================================================================

func (v Value) IsNil() bool    { return v.Kind == KindNil }
func (v Value) IsBool() bool   { return v.Kind == KindBool }
func (v Value) IsNumber() bool { return v.Kind == KindNumber }
func (v Value) IsString() bool { return v.Kind == KindObject }

// ============================================================================
// Value extraction
// ============================================================================

func (v Value) AsBool() bool        { return v.b }
func (v Value) AsNumber() float64   { return v.num }
func (v Value) AsString() StringRef { return v.obj }

// ============================================================================
// Type name
// ============================================================================

func (v Value) TypeName() string {
	switch v.Kind {
	case KindNil:
		return TypeNil
	case KindBool:
		return TypeBool
	case KindNumber:
		return TypeNumber
	case KindObject:
		return TypeString
	default:
		return "unknown"
	}
}

// ============================================================================
// String representation
// ============================================================================

// Text renders v's canonical runtime form, resolving string handles
// against heap. This is the text `print`/string-concatenation use —
// strings come back bare, with no surrounding quotes.
func (v Value) Text(heap *Heap) string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindObject:
		return heap.String(v.obj)
	default:
		return "<unknown>"
	}
}

// DebugText renders v the way the disassembler shows a constant: like
// Text, but strings are quoted so they're distinguishable from bare
// identifiers in chunk dumps.
func (v Value) DebugText(heap *Heap) string {
	if v.Kind == KindObject {
		return fmt.Sprintf("%q", heap.String(v.obj))
	}
	return v.Text(heap)
}

// ============================================================================
// Truthiness
// ============================================================================

// IsFalsey reports whether v is treated as false by `!` and conditional
// coercion. Only nil and Bool(false) are falsey; Number(0) and "" are not.
func (v Value) IsFalsey() bool {
	return v.Kind == KindNil || (v.Kind == KindBool && !v.b)
}

func (v Value) IsTruthy() bool { return !v.IsFalsey() }

// ============================================================================
// Equality
// ============================================================================

// Equals implements the structural equality from spec.md §3: same
// variant and same payload. Number equality is IEEE-754 (NaN != NaN,
// which Go's == already gives us for float64). Object equality compares
// StringRef handles directly — valid because every string Value in this
// VM, literal or runtime-concatenated, is interned (see Heap).
func (v Value) Equals(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNil:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num == other.num
	case KindObject:
		return v.obj == other.obj
	default:
		return false
	}
}
