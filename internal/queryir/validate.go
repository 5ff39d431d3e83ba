package queryir

import (
	"errors"
	"fmt"
)

// Validate checks the structural invariants of a compiled tree:
//
//  1. Comparative nodes use comparison operators, Logical nodes logical ones
//  2. The null literal appears exactly on IS_NULL and IS_NOT_NULL
//  3. NOT has no left operand; AND and OR have both operands
//  4. Placeholder indices are 0..placeholders-1, each once, left to right
//
// All violations are reported, joined into one error. Each violation is an
// *Error with CodeInvalidExpression.
//
// Validate is a pure function with no side effects.
func Validate(expr Expression, placeholders int) error {
	v := &validator{}
	v.validateExpression(expr, "root")
	if v.next != placeholders {
		v.addViolation("tree references %d placeholders but %d were registered", v.next, placeholders)
	}
	return errors.Join(v.violations...)
}

// validator accumulates violations during traversal.
type validator struct {
	violations []error
	next       int
}

func (v *validator) addViolation(format string, args ...any) {
	v.violations = append(v.violations, Errorf(CodeInvalidExpression, format, args...))
}

func (v *validator) validateExpression(e Expression, path string) {
	switch node := e.(type) {
	case nil:
		v.addViolation("%s: nil expression", path)
	case *Comparative:
		if node == nil {
			v.addViolation("%s: nil comparative", path)
			return
		}
		v.validateComparative(node, path)
	case *Logical:
		if node == nil {
			v.addViolation("%s: nil logical", path)
			return
		}
		v.validateLogical(node, path)
	default:
		v.addViolation("%s: unknown expression type %T", path, e)
	}
}

func (v *validator) validateComparative(c *Comparative, path string) {
	if !c.Operator.Comparison() {
		v.addViolation("%s: %s is not a comparison operator", path, c.Operator)
		return
	}
	if c.Operator.Nullable() != c.Value.IsNull() {
		v.addViolation("%s: %s with %s value", path, c.Operator, c.Value)
	}
	if c.Value.IsPlaceholder() {
		if c.Value.Index != v.next {
			v.addViolation("%s: placeholder %d out of order, expected %d", path, c.Value.Index, v.next)
		}
		v.next++
	}
}

func (v *validator) validateLogical(l *Logical, path string) {
	switch l.Operator {
	case OpNot:
		if l.Left != nil {
			v.addViolation("%s: NOT with a left operand", path)
			v.validateExpression(l.Left, path+".left")
		}
	case OpAnd, OpOr:
		v.validateExpression(l.Left, path+".left")
	default:
		v.addViolation("%s: %s is not a logical operator", path, l.Operator)
		return
	}
	v.validateExpression(l.Right, path+".right")
}

// Walk calls fn for every node of e in left-to-right pre-order.
func Walk(e Expression, fn func(Expression)) {
	switch node := e.(type) {
	case *Comparative:
		if node != nil {
			fn(node)
		}
	case *Logical:
		if node == nil {
			return
		}
		fn(node)
		if node.Left != nil {
			Walk(node.Left, fn)
		}
		Walk(node.Right, fn)
	case nil:
	default:
		panic(fmt.Sprintf("queryir: unknown expression type %T", e))
	}
}
