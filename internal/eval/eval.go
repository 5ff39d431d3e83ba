// Package eval decides whether a record satisfies a compiled expression.
//
// Evaluation dispatches on node kind, then on operator capability flags,
// then on operator identity:
//
//	Logical      NOT negates Right; AND and OR short-circuit left to right
//	Comparative  nullable ops test presence; a null actual fails every
//	             other op; string-affinity ops compare text forms; ordered
//	             ops coerce the literal to the actual value's type
//
// The evaluator never mutates the tree and holds no per-record state.
package eval

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mizukyf/minque/internal/queryir"
	"github.com/mizukyf/minque/internal/value"
)

// Lookup returns the value of a property of the record being evaluated.
// ok is false when the record has no such property.
type Lookup func(property string) (v any, ok bool)

// Evaluator evaluates expressions. The zero Evaluator is ready to use.
type Evaluator struct {
	normalize bool
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithNormalization compares string forms after Unicode NFC normalization.
func WithNormalization() Option {
	return func(e *Evaluator) { e.normalize = true }
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate reports whether the record behind lookup satisfies expr.
// Placeholders resolve against b.
func (e *Evaluator) Evaluate(expr queryir.Expression, lookup Lookup, b queryir.Bindings) (bool, error) {
	switch node := expr.(type) {
	case *queryir.Comparative:
		return e.comparative(node, lookup, b)
	case *queryir.Logical:
		return e.logical(node, lookup, b)
	default:
		return false, queryir.Errorf(queryir.CodeInvalidExpression, "unsupported expression type %T", expr)
	}
}

func (e *Evaluator) logical(l *queryir.Logical, lookup Lookup, b queryir.Bindings) (bool, error) {
	if l.Unary() {
		if l.Operator != queryir.OpNot {
			return false, queryir.Errorf(queryir.CodeUnsupportedLogicalOperator,
				"unsupported unary logical operator %s", l.Operator)
		}
		ok, err := e.Evaluate(l.Right, lookup, b)
		return !ok && err == nil, err
	}

	left, err := e.Evaluate(l.Left, lookup, b)
	if err != nil {
		return false, err
	}
	switch l.Operator {
	case queryir.OpOr:
		if left {
			return true, nil
		}
	case queryir.OpAnd:
		if !left {
			return false, nil
		}
	default:
		return false, queryir.Errorf(queryir.CodeUnsupportedLogicalOperator,
			"unsupported binary logical operator %s", l.Operator)
	}
	return e.Evaluate(l.Right, lookup, b)
}

func (e *Evaluator) comparative(c *queryir.Comparative, lookup Lookup, b queryir.Bindings) (bool, error) {
	op := c.Operator
	if !op.Comparison() {
		return false, queryir.Errorf(queryir.CodeInvalidExpression,
			"%s is not a comparison operator", op)
	}

	actual, found := lookup(c.Property)
	null := !found || value.IsNull(actual)

	if op.Nullable() {
		if op == queryir.OpIsNull {
			return null, nil
		}
		return !null, nil
	}
	if null {
		return false, nil
	}

	lit, err := b.Resolve(c.Value)
	if err != nil {
		return false, err
	}
	if lit.IsNull() {
		return false, nil
	}

	switch {
	case op.StringAffinity():
		return e.text(op, value.Stringify(actual), lit.Text), nil
	case op.Ordered():
		return ordered(op, actual, lit.Text), nil
	}
	return false, nil
}

func (e *Evaluator) text(op queryir.Operator, actual, expected string) bool {
	if e.normalize {
		actual = norm.NFC.String(actual)
		expected = norm.NFC.String(expected)
	}
	switch op {
	case queryir.OpEquals:
		return actual == expected
	case queryir.OpNotEquals:
		return actual != expected
	case queryir.OpStartsWith:
		return strings.HasPrefix(actual, expected)
	case queryir.OpEndsWith:
		return strings.HasSuffix(actual, expected)
	case queryir.OpContains:
		return strings.Contains(actual, expected)
	}
	return false
}

func ordered(op queryir.Operator, actual any, literal string) bool {
	c, ok := value.Compare(actual, literal)
	if !ok {
		return false
	}
	switch op {
	case queryir.OpLessThan:
		return c < 0
	case queryir.OpLessThanEqual:
		return c <= 0
	case queryir.OpGreaterThan:
		return c > 0
	case queryir.OpGreaterThanEqual:
		return c >= 0
	}
	return false
}
