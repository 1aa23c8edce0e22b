package lang

import (
	"strings"
	"unicode/utf8"
)

// pattern is one entry of the tokenizer's prioritized match list.
//
// At every scan position the patterns are tried in list order and the first
// one that matches wins, even when a later pattern would match a longer
// prefix. This is NOT maximal munch.
type pattern struct {
	match   func(s string) int // length of the match at the start of s, 0 if none
	kind    TokenKind
	discard bool
}

// patterns is the tokenizer's prioritized match list.
//
// Order is load-bearing: "def" and "let" precede Identifier and matching is
// not boundary-anchored, so those spellings win even as a prefix of a longer
// identifier ("define" lexes as KeywordDef followed by Identifier "ine").
//
//nolint:gochecknoglobals
var patterns = []pattern{
	{kind: Number, match: matchNumber},
	{kind: KeywordDef, match: matchLiteral("def")},
	{kind: KeywordLet, match: matchLiteral("let")},
	{kind: LParen, match: matchLiteral("(")},
	{kind: RParen, match: matchLiteral(")")},
	{kind: LBrace, match: matchLiteral("{")},
	{kind: RBrace, match: matchLiteral("}")},
	{kind: Comma, match: matchLiteral(",")},
	{kind: Semicolon, match: matchLiteral(";")},
	{kind: Dollar, match: matchLiteral("$")},
	{kind: Identifier, match: matchIdentifier},
	{discard: true, match: matchSpace},
}

// Tokenize converts source text into its complete token sequence.
//
// Tokenize cannot fail: whitespace is discarded (but tracked for position
// bookkeeping), and any character that matches no pattern is silently
// dropped with no token and no error.
func Tokenize(source string) []Token {
	lx := lexer{input: source, line: 1, lastNL: -1}

	return lx.run()
}

// lexer holds the tokenizer state.
type lexer struct {
	input  string
	pos    int
	line   int
	lastNL int // offset of the most recent newline, -1 before the first
}

func (lx *lexer) run() []Token {
	tokens := make([]Token, 0)

scan:
	for lx.pos < len(lx.input) {
		rest := lx.input[lx.pos:]

		for _, pat := range patterns {
			n := pat.match(rest)
			if n == 0 {
				continue
			}

			text := rest[:n]

			if pat.discard {
				lx.track(text)
				lx.pos += n

				continue scan
			}

			tokens = append(tokens, Token{
				Kind: pat.kind,
				Text: text,
				Line: lx.line,
				Col:  lx.pos - lx.lastNL - 1,
			})

			lx.pos += n

			continue scan
		}

		// No pattern matched: drop the character and keep scanning.
		_, size := utf8.DecodeRuneInString(rest)
		lx.pos += size
	}

	return tokens
}

// track updates line and newline bookkeeping for discarded whitespace text.
func (lx *lexer) track(text string) {
	for i := range len(text) {
		if text[i] == '\n' {
			lx.line++
			lx.lastNL = lx.pos + i
		}
	}
}

// matchNumber matches digits, a mandatory '.', then one or more digits.
// The integral digits are optional (".5" matches); a bare integer does not.
func matchNumber(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}

	if i >= len(s) || s[i] != '.' {
		return 0
	}

	j := i + 1
	for j < len(s) && isDigit(s[j]) {
		j++
	}

	if j == i+1 {
		return 0
	}

	return j
}

// matchLiteral matches the exact literal text with no boundary check.
func matchLiteral(lit string) func(string) int {
	return func(s string) int {
		if strings.HasPrefix(s, lit) {
			return len(lit)
		}

		return 0
	}
}

// matchIdentifier matches one or more lowercase ASCII letters or underscores.
func matchIdentifier(s string) int {
	i := 0
	for i < len(s) && (s[i] == '_' || (s[i] >= 'a' && s[i] <= 'z')) {
		i++
	}

	return i
}

// matchSpace matches a run of whitespace characters.
func matchSpace(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
