package lang

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/ardnew/dotkv/log"
)

// Document is the ordered object produced by parsing one source text.
type Document struct {
	root   *Object
	logger log.Logger
}

// Root returns the document's top-level object.
func (d *Document) Root() *Object {
	return d.root
}

// Equal reports whether two documents hold recursively equal structures.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}

	return d.root.Equal(other.root)
}

// Option configures a parse session.
type Option func(*Document)

// WithLogger sets the logger used to trace the parse session.
func WithLogger(logger log.Logger) Option {
	return func(d *Document) {
		d.logger = logger
	}
}

// ParseReader parses a Document from an io.Reader.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString parses a Document from source text.
//
// Parsing is a single left-to-right pass over the token sequence with one
// token of lookahead. It fails fast: the first unexpected token or undefined
// constant reference aborts the parse with no partial result.
func ParseString(ctx context.Context, s string, opts ...Option) (*Document, error) {
	doc := &Document{root: NewObject()}

	for _, opt := range opts {
		opt(doc)
	}

	p := &parser{
		tokens: Tokenize(s),
		consts: make(constTable),
		logger: doc.logger,
	}

	err := p.parseProgram(doc.root)
	if err != nil {
		return nil, err
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("token_count", len(p.tokens)),
		slog.Int("key_count", doc.root.Len()))

	return doc, nil
}

// parser holds the parser state: a cursor into an immutable token sequence
// and the constant table owned by this parse session.
type parser struct {
	tokens []Token
	pos    int
	consts constTable
	logger log.Logger
}

// current returns the token under the cursor, or an EOF token when the
// sequence is exhausted.
func (p *parser) current() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}

	return Token{Kind: EOF}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.tokens)
}

// eat consumes the current token if it has the wanted kind, failing
// otherwise with the unmet expectation and the offending position.
func (p *parser) eat(want TokenKind) (Token, error) {
	tok := p.current()
	if tok.Kind != want {
		return Token{}, unexpected(want.String(), tok)
	}

	p.pos++

	return tok, nil
}

// unexpected builds the terminal parse error for a token that does not
// satisfy the active production. Running out of tokens is reported with an
// EOF marker in place of a position.
func unexpected(want string, found Token) error {
	if found.Kind == EOF {
		return ErrUnexpectedToken.
			Wrapf("expected %s, found EOF", want).
			With(
				slog.String("expected", want),
				slog.String("found", EOF.String()),
			)
	}

	return ErrUnexpectedToken.
		Wrapf("expected %s, found %s at line %d, column %d",
			want, found.Kind, found.Line, found.Col).
		With(
			slog.String("expected", want),
			slog.String("found", found.Kind.String()),
			slog.Int("line", found.Line),
			slog.Int("column", found.Col),
		)
}

// parseProgram parses: (ConstantDef | Pair)*.
func (p *parser) parseProgram(root *Object) error {
	for !p.eof() {
		if p.current().Kind == KeywordDef {
			err := p.parseConstantDef()
			if err != nil {
				return err
			}

			continue
		}

		key, val, err := p.parsePair()
		if err != nil {
			return err
		}

		root.Set(key, val)
	}

	return nil
}

// parseConstantDef parses: 'def' Identifier ValueExpr ';'.
//
// The value expression is resolved eagerly, so any constant references it
// contains see only definitions issued before this one.
func (p *parser) parseConstantDef() error {
	_, err := p.eat(KeywordDef)
	if err != nil {
		return err
	}

	name, err := p.eat(Identifier)
	if err != nil {
		return err
	}

	val, err := p.parseValue()
	if err != nil {
		return err
	}

	p.consts.define(name.Text, val)

	p.logger.Trace("constant defined",
		slog.String("name", name.Text),
		slog.String("kind", val.Kind.String()))

	_, err = p.eat(Semicolon)

	return err
}

// parsePair parses: Identifier ValueExpr [','].
func (p *parser) parsePair() (string, Value, error) {
	key, err := p.eat(Identifier)
	if err != nil {
		return "", Value{}, err
	}

	val, err := p.parseValue()
	if err != nil {
		return "", Value{}, err
	}

	if p.current().Kind == Comma {
		p.pos++
	}

	return key.Text, val, nil
}

// parseValue parses: ConstRef | ObjectLit | NumberLit.
// The current token alone selects the production.
func (p *parser) parseValue() (Value, error) {
	switch tok := p.current(); tok.Kind {
	case Dollar:
		return p.parseConstRef()

	case LBrace:
		return p.parseObjectLit()

	case Number:
		return p.parseNumberLit()

	default:
		return Value{}, unexpected("value", tok)
	}
}

// parseConstRef parses: '$' '(' Identifier ')' and resolves the name in the
// constant table at the moment it is encountered.
func (p *parser) parseConstRef() (Value, error) {
	for _, kind := range []TokenKind{Dollar, LParen} {
		_, err := p.eat(kind)
		if err != nil {
			return Value{}, err
		}
	}

	name, err := p.eat(Identifier)
	if err != nil {
		return Value{}, err
	}

	_, err = p.eat(RParen)
	if err != nil {
		return Value{}, err
	}

	val, ok := p.consts.lookup(name.Text)
	if !ok {
		return Value{}, ErrUndefinedConstant.
			Wrapf("constant %s is not defined", name.Text).
			With(slog.String("name", name.Text))
	}

	return val, nil
}

// parseObjectLit parses: '{' Pair* '}'.
func (p *parser) parseObjectLit() (Value, error) {
	_, err := p.eat(LBrace)
	if err != nil {
		return Value{}, err
	}

	obj := NewObject()

	for !p.eof() && p.current().Kind != RBrace {
		key, val, err := p.parsePair()
		if err != nil {
			return Value{}, err
		}

		obj.Set(key, val)
	}

	_, err = p.eat(RBrace)
	if err != nil {
		return Value{}, err
	}

	return ObjectValue(obj), nil
}

// parseNumberLit parses a numeric literal token into a float64 value.
func (p *parser) parseNumberLit() (Value, error) {
	tok, err := p.eat(Number)
	if err != nil {
		return Value{}, err
	}

	f, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return Value{}, ErrInvalidNumber.
			Wrapf("%s at line %d, column %d", tok.Text, tok.Line, tok.Col).
			With(
				slog.String("text", tok.Text),
				slog.Int("line", tok.Line),
				slog.Int("column", tok.Col),
			)
	}

	return NumberValue(f), nil
}
