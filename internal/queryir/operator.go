package queryir

import "fmt"

// Operator identifies a comparison or logical operator.
type Operator uint8

const (
	OpInvalid Operator = iota
	OpAnd
	OpOr
	OpNot
	OpEquals
	OpNotEquals
	OpStartsWith
	OpEndsWith
	OpContains
	OpIsNull
	OpIsNotNull
	OpLessThan
	OpLessThanEqual
	OpGreaterThan
	OpGreaterThanEqual
)

// operatorInfo holds the fixed attributes of one operator.
type operatorInfo struct {
	name           string
	symbol         string
	logical        bool
	nullable       bool
	ordered        bool
	stringAffinity bool
}

var operatorTable = [...]operatorInfo{
	OpInvalid:          {name: "INVALID"},
	OpAnd:              {name: "AND", symbol: "and", logical: true},
	OpOr:               {name: "OR", symbol: "or", logical: true},
	OpNot:              {name: "NOT", symbol: "!", logical: true},
	OpEquals:           {name: "EQUALS", symbol: "==", stringAffinity: true},
	OpNotEquals:        {name: "NOT_EQUALS", symbol: "!=", stringAffinity: true},
	OpStartsWith:       {name: "STARTS_WITH", symbol: "^=", stringAffinity: true},
	OpEndsWith:         {name: "ENDS_WITH", symbol: "$=", stringAffinity: true},
	OpContains:         {name: "CONTAINS", symbol: "*=", stringAffinity: true},
	OpIsNull:           {name: "IS_NULL", symbol: "is null", nullable: true},
	OpIsNotNull:        {name: "IS_NOT_NULL", symbol: "is not null", nullable: true},
	OpLessThan:         {name: "LESS_THAN", symbol: "<", ordered: true},
	OpLessThanEqual:    {name: "LESS_THAN_EQUAL", symbol: "<=", ordered: true},
	OpGreaterThan:      {name: "GREATER_THAN", symbol: ">", ordered: true},
	OpGreaterThanEqual: {name: "GREATER_THAN_EQUAL", symbol: ">=", ordered: true},
}

// ComparisonOperators lists the comparison operators in the order the
// parser tries their symbols. Longer symbols sharing a prefix come first.
var ComparisonOperators = []Operator{
	OpEquals,
	OpNotEquals,
	OpStartsWith,
	OpContains,
	OpEndsWith,
	OpLessThanEqual,
	OpLessThan,
	OpGreaterThanEqual,
	OpGreaterThan,
	OpIsNotNull,
	OpIsNull,
}

func (op Operator) info() operatorInfo {
	if int(op) >= len(operatorTable) {
		return operatorTable[OpInvalid]
	}
	return operatorTable[op]
}

// Valid reports whether op is a defined operator.
func (op Operator) Valid() bool {
	return op != OpInvalid && int(op) < len(operatorTable)
}

// Logical reports whether op is AND, OR or NOT.
func (op Operator) Logical() bool { return op.info().logical }

// Comparison reports whether op may appear in a Comparative node.
func (op Operator) Comparison() bool { return op.Valid() && !op.info().logical }

// Nullable reports whether op tests null-ness (IS_NULL, IS_NOT_NULL).
func (op Operator) Nullable() bool { return op.info().nullable }

// Ordered reports whether op is one of the four _THAN operators.
func (op Operator) Ordered() bool { return op.info().ordered }

// StringAffinity reports whether op compares the string forms of its operands.
func (op Operator) StringAffinity() bool { return op.info().stringAffinity }

// Symbol returns the query-text spelling of op ("==", "is null", "and").
func (op Operator) Symbol() string { return op.info().symbol }

// String returns the upper-case operator name, e.g. "STARTS_WITH".
func (op Operator) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Operator(%d)", uint8(op))
	}
	return op.info().name
}

// MarshalText encodes op by name.
func (op Operator) MarshalText() ([]byte, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid operator %d", uint8(op))
	}
	return []byte(op.info().name), nil
}
