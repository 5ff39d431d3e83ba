package queryir

import (
	"encoding/json"
	"fmt"
)

// Expression is a node of a compiled query tree.
//
// This is a sealed interface - only *Comparative and *Logical implement it.
// Type switches over Expression are therefore exhaustive:
//
//	switch e := expr.(type) {
//	case *Comparative:
//	case *Logical:
//	}
type Expression interface {
	expressionNode()
}

// Comparative tests one record property against a literal.
//
// Invariants:
//   - Operator is a comparison operator (never AND, OR or NOT)
//   - Value is Null exactly when Operator is IS_NULL or IS_NOT_NULL
//
// A bare property in predicate position ("active") compiles to
// Comparative{Property: "active", Operator: OpEquals, Value: Text("true")}.
type Comparative struct {
	Property string   `json:"property"`
	Operator Operator `json:"operator"`
	Value    Literal  `json:"value"`
}

func (*Comparative) expressionNode() {}

// Logical combines sub-expressions.
//
// For AND and OR both operands are set. For NOT, Left is nil and Right is
// the negated operand.
type Logical struct {
	Operator Operator   `json:"operator"`
	Left     Expression `json:"left,omitempty"`
	Right    Expression `json:"right"`
}

func (*Logical) expressionNode() {}

// Unary reports whether l has a single operand.
func (l *Logical) Unary() bool { return l.Left == nil }

// Compare builds a leaf node.
func Compare(property string, op Operator, value Literal) *Comparative {
	return &Comparative{Property: property, Operator: op, Value: value}
}

// And builds a conjunction.
func And(left, right Expression) *Logical {
	return &Logical{Operator: OpAnd, Left: left, Right: right}
}

// Or builds a disjunction.
func Or(left, right Expression) *Logical {
	return &Logical{Operator: OpOr, Left: left, Right: right}
}

// Not builds a negation.
func Not(operand Expression) *Logical {
	return &Logical{Operator: OpNot, Right: operand}
}

// LiteralKind tells the three literal forms apart.
type LiteralKind uint8

const (
	LiteralText LiteralKind = iota
	LiteralNull
	LiteralPlaceholder
)

// Literal is the right-hand side of a comparison: constant text, the null
// marker used by IS_NULL and IS_NOT_NULL, or a reference to a placeholder
// slot that is resolved against Bindings at evaluation time.
type Literal struct {
	Kind  LiteralKind
	Text  string
	Index int
}

// Text returns a constant text literal.
func Text(s string) Literal { return Literal{Kind: LiteralText, Text: s} }

// Null returns the null literal.
func Null() Literal { return Literal{Kind: LiteralNull} }

// Placeholder returns a literal referring to placeholder slot index.
func Placeholder(index int) Literal {
	return Literal{Kind: LiteralPlaceholder, Index: index}
}

// IsNull reports whether l is the null literal.
func (l Literal) IsNull() bool { return l.Kind == LiteralNull }

// IsPlaceholder reports whether l refers to a placeholder slot.
func (l Literal) IsPlaceholder() bool { return l.Kind == LiteralPlaceholder }

func (l Literal) String() string {
	switch l.Kind {
	case LiteralNull:
		return "null"
	case LiteralPlaceholder:
		return fmt.Sprintf("?%d", l.Index)
	default:
		return fmt.Sprintf("%q", l.Text)
	}
}

// MarshalJSON encodes text as {"text":...}, null as {"null":true} and a
// placeholder as {"placeholder":index}.
func (l Literal) MarshalJSON() ([]byte, error) {
	switch l.Kind {
	case LiteralNull:
		return json.Marshal(map[string]bool{"null": true})
	case LiteralPlaceholder:
		return json.Marshal(map[string]int{"placeholder": l.Index})
	default:
		return json.Marshal(map[string]string{"text": l.Text})
	}
}
