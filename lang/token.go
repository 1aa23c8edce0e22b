package lang

//go:generate go tool stringer --type TokenKind --output token_string.go

// TokenKind classifies a lexical token.
type TokenKind int

const (
	// EOF marks the end of the token sequence. The tokenizer never produces
	// it; the parser uses it to report running out of input.
	EOF TokenKind = iota

	// Number is a numeric literal with a mandatory fractional part
	// (".5" and "3.14" are numbers, "5" is not).
	Number

	// KeywordDef introduces a constant definition.
	KeywordDef

	// KeywordLet is accepted lexically but unused by the grammar.
	// It is a dead keyword preserved for compatibility.
	KeywordLet

	LParen
	RParen
	LBrace
	RBrace
	Comma
	Semicolon
	Dollar

	// Identifier is one or more lowercase ASCII letters or underscores.
	Identifier
)

// Token is a single lexical token with its source position.
//
// Line is 1-based. Col is the 0-based offset of the token's first character
// from the most recent newline preceding it.
type Token struct {
	Text string
	Kind TokenKind
	Line int
	Col  int
}
