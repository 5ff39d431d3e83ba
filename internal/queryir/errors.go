package queryir

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies an Error.
type Code string

const (
	// CodeEmptyQuery: the query is empty after skipping whitespace and comments.
	CodeEmptyQuery Code = "EMPTY_QUERY"

	// CodeSyntax: an expected token was not found.
	CodeSyntax Code = "SYNTAX_ERROR"

	// CodeUnterminatedLiteral: a quoted string ran into end of input.
	CodeUnterminatedLiteral Code = "UNTERMINATED_LITERAL"

	// CodeMissingValue: a bare token had zero length.
	CodeMissingValue Code = "MISSING_VALUE"

	// CodeBindArity: bound value count differs from the placeholder count.
	CodeBindArity Code = "BIND_ARITY_MISMATCH"

	// CodeBindingRequired: a query with placeholders was evaluated unbound.
	CodeBindingRequired Code = "BINDING_REQUIRED"

	// CodeUnsupportedLogicalOperator: a unary logical node is not NOT.
	CodeUnsupportedLogicalOperator Code = "UNSUPPORTED_LOGICAL_OPERATOR"

	// CodeInvalidExpression: a tree violates a structural invariant.
	CodeInvalidExpression Code = "INVALID_EXPRESSION"

	// CodeRead: the scanner was advanced past end of input.
	CodeRead Code = "READ_ERROR"
)

// Position is a location in query text. Offset counts runes from zero;
// Line and Column count from one. The zero Position means "no location".
type Position struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// IsValid reports whether p refers to a location.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error is the error type returned by every minque operation.
//
// Parse errors carry Pos, and syntax errors additionally carry what was
// Expected and what was Found at that position.
type Error struct {
	Code     Code
	Message  string
	Pos      Position
	Expected string
	Found    string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.Pos.IsValid() {
		fmt.Fprintf(&b, " at %s", e.Pos)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// Is matches another *Error with the same Code, so errors.Is works against
// sentinel values such as &Error{Code: CodeBindingRequired}.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// IsCode reports whether err is (or wraps) an *Error with the given code.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsParseError reports whether err came from compiling query text.
func IsParseError(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case CodeEmptyQuery, CodeSyntax, CodeUnterminatedLiteral, CodeMissingValue, CodeRead:
		return true
	}
	return false
}

// Errorf creates an *Error without a position.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// SyntaxError reports that expected was not found at pos.
func SyntaxError(pos Position, expected, found string) *Error {
	return &Error{
		Code:     CodeSyntax,
		Message:  fmt.Sprintf("expected %s but found %s", expected, found),
		Pos:      pos,
		Expected: expected,
		Found:    found,
	}
}
