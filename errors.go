package minque

import "github.com/mizukyf/minque/internal/queryir"

// Error is the error type returned by every minque operation.
type Error = queryir.Error

// Code classifies an Error.
type Code = queryir.Code

// Position is a location in query text.
type Position = queryir.Position

const (
	CodeEmptyQuery                 = queryir.CodeEmptyQuery
	CodeSyntax                     = queryir.CodeSyntax
	CodeUnterminatedLiteral        = queryir.CodeUnterminatedLiteral
	CodeMissingValue               = queryir.CodeMissingValue
	CodeBindArity                  = queryir.CodeBindArity
	CodeBindingRequired            = queryir.CodeBindingRequired
	CodeUnsupportedLogicalOperator = queryir.CodeUnsupportedLogicalOperator
	CodeInvalidExpression          = queryir.CodeInvalidExpression
	CodeRead                       = queryir.CodeRead
)

// IsCode reports whether err is (or wraps) an *Error with the given code.
func IsCode(err error, code Code) bool { return queryir.IsCode(err, code) }

// IsParseError reports whether err came from compiling query text.
func IsParseError(err error) bool { return queryir.IsParseError(err) }
