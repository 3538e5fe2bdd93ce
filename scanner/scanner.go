// Package scanner turns UTF-8 source bytes into a stream of classified
// tokens. It never builds a token slice up front — the compiler pulls one
// token at a time via Next, matching the core's single-pass design.
package scanner

import "pidgin-lang/token"

// Scanner holds the byte-stream cursor state described in spec.md §4.4:
// start marks the beginning of the token under construction, current is
// the lookahead cursor, and line is the 1-based source line counter.
type Scanner struct {
	source  []byte
	start   int
	current int
	line    int
}

// New creates a Scanner over source. The returned Scanner borrows source
// for its lifetime; callers must not mutate it while scanning.
func New(source []byte) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Next scans and returns the next token, per the scan_next algorithm in
// spec.md §4.4: skip whitespace and comments, then classify one lexeme.
func (s *Scanner) Next() token.Token {
	s.skipWhitespace()
	s.start = s.current

	if s.atEnd() {
		return s.make(token.EOF)
	}

	c := s.advance()

	if isAlpha(c) {
		return s.identifier()
	}
	if isDigit(c) {
		return s.number()
	}

	switch c {
	case '(':
		return s.make(token.LeftParen)
	case ')':
		return s.make(token.RightParen)
	case '{':
		return s.make(token.LeftBrace)
	case '}':
		return s.make(token.RightBrace)
	case ',':
		return s.make(token.Comma)
	case '.':
		return s.make(token.Dot)
	case '-':
		return s.make(token.Minus)
	case '+':
		return s.make(token.Plus)
	case ';':
		return s.make(token.Semicolon)
	case '*':
		return s.make(token.Star)
	case '/':
		return s.make(token.Slash)
	case '!':
		return s.make(s.selectTwoChar('=', token.BangEqual, token.Bang))
	case '=':
		return s.make(s.selectTwoChar('=', token.EqualEqual, token.Equal))
	case '<':
		return s.make(s.selectTwoChar('=', token.LessEqual, token.Less))
	case '>':
		return s.make(s.selectTwoChar('=', token.GreaterEqual, token.Greater))
	case '"':
		return s.string()
	}

	return s.errorToken()
}

// selectTwoChar consumes a trailing '=' if present and returns twoChar,
// otherwise returns oneChar. Shared by !, =, <, > per spec.md §4.4 step 3.
func (s *Scanner) selectTwoChar(expected byte, twoChar, oneChar token.Kind) token.Kind {
	if s.match(expected) {
		return twoChar
	}
	return oneChar
}

func (s *Scanner) advance() byte {
	s.current++
	return s.source[s.current-1]
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.source)
}

// skipWhitespace consumes runs of space/tab/CR, newlines (bumping line),
// and "//" line comments. spec.md §9 notes that a prior variant broke out
// of this loop after a single whitespace byte instead of continuing; this
// is the corrected behavior, looping until a non-whitespace byte is seen.
func (s *Scanner) skipWhitespace() {
	for {
		switch s.peek() {
		case ' ', '\t', '\r':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for s.peek() != '\n' && !s.atEnd() {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) string() token.Token {
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.atEnd() {
		return s.errorToken()
	}

	s.advance() // closing quote
	return s.make(token.String)
}

func (s *Scanner) number() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	return s.make(token.Number)
}

func (s *Scanner) identifier() token.Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	return s.make(s.identifierKind())
}

// identifierKind implements the keyword trie from spec.md §4.4: dispatch
// on the first byte, then match the remaining suffix literally. Any
// mismatch, including a longer identifier that merely starts with a
// keyword spelling (e.g. "andx"), falls back to token.Identifier.
func (s *Scanner) identifierKind() token.Kind {
	length := s.current - s.start
	switch s.source[s.start] {
	case 'a':
		return s.checkKeyword(1, "nd", token.And)
	case 'c':
		return s.checkKeyword(1, "lass", token.Class)
	case 'e':
		return s.checkKeyword(1, "lse", token.Else)
	case 'f':
		if length > 1 {
			switch s.source[s.start+1] {
			case 'a':
				return s.checkKeyword(2, "lse", token.False)
			case 'o':
				return s.checkKeyword(2, "r", token.For)
			case 'u':
				return s.checkKeyword(2, "n", token.Fun)
			}
		}
	case 'i':
		return s.checkKeyword(1, "f", token.If)
	case 'n':
		return s.checkKeyword(1, "il", token.Nil)
	case 'o':
		return s.checkKeyword(1, "r", token.Or)
	case 'p':
		return s.checkKeyword(1, "rint", token.Print)
	case 'r':
		return s.checkKeyword(1, "eturn", token.Return)
	case 's':
		return s.checkKeyword(1, "uper", token.Super)
	case 't':
		if length > 1 {
			switch s.source[s.start+1] {
			case 'h':
				return s.checkKeyword(2, "is", token.This)
			case 'r':
				return s.checkKeyword(2, "ue", token.True)
			}
		}
	case 'v':
		return s.checkKeyword(1, "ar", token.Var)
	case 'w':
		return s.checkKeyword(1, "hile", token.While)
	}
	return token.Identifier
}

// checkKeyword reports whether the identifier's tail (after the first
// suffixStart bytes) matches rest exactly, by both length and content.
func (s *Scanner) checkKeyword(suffixStart int, rest string, kind token.Kind) token.Kind {
	length := s.current - s.start
	if length != suffixStart+len(rest) {
		return token.Identifier
	}
	for i := 0; i < len(rest); i++ {
		if s.source[s.start+suffixStart+i] != rest[i] {
			return token.Identifier
		}
	}
	return kind
}

func (s *Scanner) make(kind token.Kind) token.Token {
	return token.Token{
		Kind:   kind,
		Start:  s.start,
		Length: s.current - s.start,
		Line:   s.line,
	}
}

func (s *Scanner) errorToken() token.Token {
	return token.Token{Kind: token.Error, Start: s.start, Length: 0, Line: s.line}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}
