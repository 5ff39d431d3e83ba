// Package parser compiles query text into a queryir expression tree.
//
// Grammar, with whitespace and comments allowed between tokens:
//
//	query      := expr
//	expr       := '!' expr
//	            | '(' expr ')' tail
//	            | comparison tail
//	tail       := { ('and' | '&&' | 'or' | '||') operand }
//	operand    := '!' expr | '(' expr ')' | comparison
//	comparison := property [ op value ]
//	op         := '==' | '!=' | '^=' | '$=' | '*=' | '<=' | '<' | '>=' | '>'
//	            | 'is null' | 'is not null'
//
// AND and OR share one precedence level and fold to the left. A NOT extends
// over the whole rest of its enclosing group. A property without an
// operator compiles to `property == true`. A bare `?` in value position is
// a placeholder; a quoted "?" is literal text.
package parser

import (
	"log/slog"

	"github.com/mizukyf/minque/internal/queryir"
)

// Result is the output of a successful parse.
type Result struct {
	Expression   queryir.Expression
	Placeholders *queryir.Placeholders
}

// Parser compiles query text. A Parser is safe for concurrent use.
type Parser struct {
	lex    *Lexer
	logger *slog.Logger
}

// New creates a parser with the given lexical options.
func New(opts Options, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{lex: NewLexer(opts), logger: logger}
}

// Parse compiles text into an expression tree and its placeholder registry.
func (p *Parser) Parse(text string) (*Result, error) {
	st := &state{s: NewScanner(text), lex: p.lex, ph: &queryir.Placeholders{}}

	if err := st.skip(); err != nil {
		return nil, err
	}
	if st.s.AtEOF() {
		return nil, &queryir.Error{Code: queryir.CodeEmptyQuery, Message: "empty query", Pos: st.s.Pos()}
	}

	expr, err := st.expression(true)
	if err != nil {
		p.logger.Debug("parse failed", "query", text, "error", err)
		return nil, err
	}

	if err := st.skip(); err != nil {
		return nil, err
	}
	if !st.s.AtEOF() {
		err := queryir.SyntaxError(st.s.Pos(), "end of input", describe(st.s.Current()))
		p.logger.Debug("parse failed", "query", text, "error", err)
		return nil, err
	}

	if err := queryir.Validate(expr, st.ph.Len()); err != nil {
		return nil, err
	}

	nodes := 0
	queryir.Walk(expr, func(queryir.Expression) { nodes++ })
	p.logger.Debug("parsed query",
		"query", text,
		"placeholders", st.ph.Len(),
		"nodes", nodes)
	return &Result{Expression: expr, Placeholders: st.ph}, nil
}

// state carries the cursor and placeholder registry of one parse.
type state struct {
	s   *Scanner
	lex *Lexer
	ph  *queryir.Placeholders
}

func (st *state) skip() error {
	return st.lex.SkipSpace(st.s)
}

func (st *state) next() error {
	_, err := st.s.Next()
	return err
}

// expression parses one expr. When recursive is false it stops after a
// single operand so the caller can fold the logical tail itself.
func (st *state) expression(recursive bool) (queryir.Expression, error) {
	if err := st.skip(); err != nil {
		return nil, err
	}

	switch st.s.Current() {
	case '!':
		if err := st.next(); err != nil {
			return nil, err
		}
		operand, err := st.expression(true)
		if err != nil {
			return nil, err
		}
		return queryir.Not(operand), nil

	case '(':
		if err := st.next(); err != nil {
			return nil, err
		}
		inner, err := st.expression(true)
		if err != nil {
			return nil, err
		}
		if err := st.skip(); err != nil {
			return nil, err
		}
		if st.s.Current() != ')' {
			return nil, queryir.SyntaxError(st.s.Pos(), "')'", describe(st.s.Current()))
		}
		if err := st.next(); err != nil {
			return nil, err
		}
		if !recursive {
			return inner, nil
		}
		return st.logical(inner)
	}

	cmp, err := st.comparison()
	if err != nil {
		return nil, err
	}
	if !recursive {
		return cmp, nil
	}
	return st.logical(cmp)
}

// logical folds `left (and|or) operand ...` to the left.
func (st *state) logical(left queryir.Expression) (queryir.Expression, error) {
	for {
		if err := st.skip(); err != nil {
			return nil, err
		}

		var word string
		var op queryir.Operator
		switch st.s.Current() {
		case 'a':
			word, op = "and", queryir.OpAnd
		case '&':
			word, op = "&&", queryir.OpAnd
		case 'o':
			word, op = "or", queryir.OpOr
		case '|':
			word, op = "||", queryir.OpOr
		default:
			return left, nil
		}
		if err := st.lex.SkipWord(st.s, word); err != nil {
			return nil, err
		}

		right, err := st.expression(false)
		if err != nil {
			return nil, err
		}
		left = &queryir.Logical{Operator: op, Left: left, Right: right}
	}
}

func (st *state) comparison() (queryir.Expression, error) {
	property, _, err := st.lex.Token(st.s, "property")
	if err != nil {
		return nil, err
	}
	if err := st.skip(); err != nil {
		return nil, err
	}

	op, err := st.operator()
	if err != nil {
		return nil, err
	}
	if op == queryir.OpInvalid {
		return queryir.Compare(property, queryir.OpEquals, queryir.Text("true")), nil
	}
	if op.Nullable() {
		return queryir.Compare(property, op, queryir.Null()), nil
	}

	if err := st.skip(); err != nil {
		return nil, err
	}
	text, quoted, err := st.lex.Token(st.s, "value")
	if err != nil {
		return nil, err
	}
	value := queryir.Text(text)
	if !quoted && text == "?" {
		value = st.ph.Register()
	}
	return queryir.Compare(property, op, value), nil
}

// operator consumes a comparison operator, returning OpInvalid when none
// is present.
func (st *state) operator() (queryir.Operator, error) {
	for _, op := range queryir.ComparisonOperators {
		ok, err := st.lex.ForwardIf(st.s, op.Symbol())
		if err != nil {
			return queryir.OpInvalid, err
		}
		if ok {
			return op, nil
		}
	}
	return queryir.OpInvalid, nil
}
