package scanner

import (
	"testing"

	"pidgin-lang/token"
)

func TestNext(t *testing.T) {
	source := []byte(`var x = 5
"a string" == !=
and or
// a comment
nil true false
identifierName andx
`)

	tests := []struct {
		kind   token.Kind
		lexeme string
	}{
		{token.Var, "var"},
		{token.Identifier, "x"},
		{token.Equal, "="},
		{token.Number, "5"},
		{token.String, `"a string"`},
		{token.EqualEqual, "=="},
		{token.BangEqual, "!="},
		{token.And, "and"},
		{token.Or, "or"},
		{token.Nil, "nil"},
		{token.True, "true"},
		{token.False, "false"},
		{token.Identifier, "identifierName"},
		{token.Identifier, "andx"},
		{token.EOF, ""},
	}

	s := New(source)
	for i, tt := range tests {
		tok := s.Next()
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v", i, tt.kind, tok.Kind)
		}
		if got := tok.Lexeme(source); got != tt.lexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.lexeme, got)
		}
	}
}

func TestNextTracksLines(t *testing.T) {
	source := []byte("1\n2\n\n3")
	s := New(source)

	wantLines := []int{1, 2, 4}
	for i, want := range wantLines {
		tok := s.Next()
		if tok.Kind != token.Number {
			t.Fatalf("token %d: expected Number, got %v", i, tok.Kind)
		}
		if tok.Line != want {
			t.Errorf("token %d: expected line %d, got %d", i, want, tok.Line)
		}
	}
}

func TestNumberNoTrailingDot(t *testing.T) {
	source := []byte("1.")
	s := New(source)

	tok := s.Next()
	if tok.Kind != token.Number || tok.Lexeme(source) != "1" {
		t.Fatalf("expected Number '1', got %v %q", tok.Kind, tok.Lexeme(source))
	}
	dot := s.Next()
	if dot.Kind != token.Dot {
		t.Fatalf("expected trailing Dot token, got %v", dot.Kind)
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	s := New([]byte(`"unterminated`))
	tok := s.Next()
	if tok.Kind != token.Error {
		t.Fatalf("expected Error token, got %v", tok.Kind)
	}
}

func TestUnknownByteIsError(t *testing.T) {
	s := New([]byte("@"))
	tok := s.Next()
	if tok.Kind != token.Error {
		t.Fatalf("expected Error token for unknown byte, got %v", tok.Kind)
	}
}

func TestConsumesRunsOfWhitespace(t *testing.T) {
	// Regression test for the skip_whitespace bug documented in spec.md §9:
	// a prior variant stopped skipping after a single whitespace byte.
	s := New([]byte("   \t\t  \n  nil"))
	tok := s.Next()
	if tok.Kind != token.Nil {
		t.Fatalf("expected Nil after run of whitespace, got %v", tok.Kind)
	}
	if tok.Line != 2 {
		t.Errorf("expected line 2, got %d", tok.Line)
	}
}
