// Package token defines the closed set of lexical token kinds produced by
// the scanner and consumed by the compiler.
package token

// Kind is a closed enumeration of token categories. Unlike the teacher's
// string-keyed TokenType, Kind is a small integer, and the compiler's
// parse-rule table is keyed by it.
type Kind byte

const (
	// Single-character punctuation.
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One or two character operators.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literal categories.
	Identifier
	String
	Number

	// Reserved keywords.
	And
	Class
	Else
	False
	For
	Fun
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// Error and EOF sentinels.
	Error
	EOF

	numKinds
)

var names = map[Kind]string{
	LeftParen: "(", RightParen: ")", LeftBrace: "{", RightBrace: "}",
	Comma: ",", Dot: ".", Minus: "-", Plus: "+", Semicolon: ";",
	Slash: "/", Star: "*",
	Bang: "!", BangEqual: "!=", Equal: "=", EqualEqual: "==",
	Greater: ">", GreaterEqual: ">=", Less: "<", LessEqual: "<=",
	Identifier: "identifier", String: "string", Number: "number",
	And: "and", Class: "class", Else: "else", False: "false",
	For: "for", Fun: "fun", If: "if", Nil: "nil", Or: "or",
	Print: "print", Return: "return", Super: "super", This: "this",
	True: "true", Var: "var", While: "while",
	Error: "error", EOF: "EOF",
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "unknown"
}

// keywords maps a reserved identifier spelling to its keyword Kind, for
// LookupIdentifier; anything absent stays Identifier. The scanner does not
// consult this map: it classifies identifiers with its own keyword trie.
var keywords = map[string]Kind{
	"and": And, "class": Class, "else": Else, "false": False,
	"for": For, "fun": Fun, "if": If, "nil": Nil, "or": Or,
	"print": Print, "return": Return, "super": Super, "this": This,
	"true": True, "var": Var, "while": While,
}

// LookupIdentifier classifies a scanned identifier lexeme as a keyword or
// a plain Identifier.
func LookupIdentifier(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Identifier
}

// Token is a classified lexeme. It carries no owned text: Start and
// Length index into the source byte slice the scanner was constructed
// with, which must outlive every Token produced from it.
type Token struct {
	Kind   Kind
	Start  int
	Length int
	Line   int
}

// Lexeme returns the token's source text, sliced out of source. Callers
// pass the same byte slice the scanner that produced the token was given.
func (t Token) Lexeme(source []byte) string {
	return string(source[t.Start : t.Start+t.Length])
}
