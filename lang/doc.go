// Package lang implements the dotkv configuration language: a tokenizer, a
// recursive descent parser with eager constant resolution, and the ordered
// document model handed to the output encoders.
//
// # Grammar
//
// Informal EBNF:
//
//	Program     → (ConstantDef | Pair)*
//	ConstantDef → 'def' Identifier ValueExpr ';'
//	Pair        → Identifier ValueExpr [',']
//	ValueExpr   → ConstRef | ObjectLit | NumberLit
//	ConstRef    → '$' '(' Identifier ')'
//	ObjectLit   → '{' Pair* '}'
//	NumberLit   → NUMBER
//
// Numeric literals require an explicit fractional part: ".5" and "3.14" are
// numbers, a bare "5" is not. The language has no strings, booleans, arrays,
// or comments.
//
// # Tokenization
//
// The tokenizer tries a prioritized pattern list at every scan position and
// the first match wins, not the longest. Keyword patterns precede the
// identifier pattern and are not boundary-anchored, so "define" lexes as the
// keyword "def" followed by the identifier "ine". Characters matching no
// pattern are silently dropped. Both behaviors are inherited contracts of
// the language and are covered by tests.
//
// # Constants
//
//	def pi 3.14;
//	ratio $(pi)
//
// Constant definitions are resolved eagerly in token order. A reference is
// valid only after its definition; forward references fail with
// [ErrUndefinedConstant]. Redefining a name overwrites the table entry, but
// references already resolved keep the value they saw.
//
// # Ordering
//
// Objects preserve first-insertion key order. Assigning a key twice replaces
// its value in place: the final document holds the last value at the first
// position.
//
// # Example
//
//	def pi 3.14;
//	circle {
//	  radius 2.5,
//	  ratio $(pi)
//	}
//	offset .5
//
// parses to a document that encodes (YAML) as:
//
//	circle:
//	  radius: 2.5
//	  ratio: 3.14
//	offset: 0.5
package lang
