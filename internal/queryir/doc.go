// Package queryir defines the compiled form of a minque filter query.
//
// A query such as
//
//	key0 == foo and (key1 ^= ba or key1 is null)
//
// compiles to an expression tree made of two node kinds:
//
//	Comparative   property OP value     (leaf)
//	Logical       left AND|OR right     (binary)
//	              NOT right             (unary, Left is nil)
//
// Expression is a sealed interface using the marker method pattern, so
// evaluators and formatters can switch exhaustively over *Comparative and
// *Logical.
//
// OPERATORS:
//
// Every Operator carries three capability flags fixed in a static table:
//
//	Nullable        IS_NULL, IS_NOT_NULL
//	Ordered         LESS_THAN, LESS_THAN_EQUAL, GREATER_THAN, GREATER_THAN_EQUAL
//	StringAffinity  STARTS_WITH, ENDS_WITH, CONTAINS, EQUALS, NOT_EQUALS
//
// Evaluators branch on the flags first and on operator identity second.
//
// PLACEHOLDERS:
//
// A bare `?` in value position compiles to a placeholder literal carrying
// its registration index. The tree never holds bound values; Placeholders.Bind
// produces an immutable Bindings value that is passed alongside the tree at
// evaluation time. A compiled tree can therefore be shared between
// goroutines, each evaluating with its own Bindings.
//
// ERRORS:
//
// Error is the single error type used across parsing, binding and
// evaluation. Callers match on Error.Code with IsCode.
package queryir
