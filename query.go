package minque

import (
	"iter"

	"github.com/mizukyf/minque/internal/queryir"
)

// Expression is the compiled tree of a query.
type Expression = queryir.Expression

// Query is a compiled query. It never changes after Compile and may be
// shared between goroutines.
//
// A Query with placeholders must be bound before use; its own Match and
// Select methods fail with CodeBindingRequired.
type Query[R any] struct {
	text         string
	expr         queryir.Expression
	placeholders *queryir.Placeholders
	factory      *Factory[R]
}

// Text returns the query as it was written.
func (q *Query[R]) Text() string { return q.text }

// String returns the canonical, fully parenthesized form of the query.
func (q *Query[R]) String() string { return queryir.Format(q.expr) }

// Expression returns the compiled tree.
func (q *Query[R]) Expression() Expression { return q.expr }

// Placeholders returns the number of `?` placeholders.
func (q *Query[R]) Placeholders() int { return q.placeholders.Len() }

// Bind returns q with values for its placeholders, in order of appearance.
// Values are rendered to text at bind time; a nil value binds null.
func (q *Query[R]) Bind(values ...any) (*Bound[R], error) {
	b, err := q.placeholders.Bind(values...)
	if err != nil {
		return nil, err
	}
	q.factory.logger.Debug("bound query",
		"query", q.text,
		"values", b.Len())
	return &Bound[R]{query: q, bindings: b}, nil
}

// unbound returns the empty Bindings, or CodeBindingRequired when the
// query has placeholders.
func (q *Query[R]) unbound() (queryir.Bindings, error) {
	if q.placeholders.Len() > 0 {
		return queryir.Bindings{}, queryir.Errorf(queryir.CodeBindingRequired,
			"bind variables are required: query has %d placeholders", q.placeholders.Len())
	}
	return queryir.Bindings{}, nil
}

// Match reports whether record satisfies the query.
func (q *Query[R]) Match(record R) (bool, error) {
	b, err := q.unbound()
	if err != nil {
		return false, err
	}
	return q.factory.evaluate(q.expr, record, b)
}

// SelectAll returns the matching records in input order.
func (q *Query[R]) SelectAll(records iter.Seq[R]) ([]R, error) {
	b, err := q.unbound()
	if err != nil {
		return nil, err
	}
	return selectAll(q, records, b)
}

// SelectFirst returns the first matching record.
func (q *Query[R]) SelectFirst(records iter.Seq[R]) (R, bool, error) {
	b, err := q.unbound()
	if err != nil {
		var zero R
		return zero, false, err
	}
	return selectFirst(q, records, b)
}

// Count returns the number of matching records.
func (q *Query[R]) Count(records iter.Seq[R]) (int, error) {
	b, err := q.unbound()
	if err != nil {
		return 0, err
	}
	return count(q, records, b)
}

// Bound is a Query together with placeholder values. It is immutable and
// safe for concurrent use.
type Bound[R any] struct {
	query    *Query[R]
	bindings queryir.Bindings
}

// Query returns the query b was bound from.
func (b *Bound[R]) Query() *Query[R] { return b.query }

// Match reports whether record satisfies the bound query.
func (b *Bound[R]) Match(record R) (bool, error) {
	return b.query.factory.evaluate(b.query.expr, record, b.bindings)
}

// SelectAll returns the matching records in input order.
func (b *Bound[R]) SelectAll(records iter.Seq[R]) ([]R, error) {
	return selectAll(b.query, records, b.bindings)
}

// SelectFirst returns the first matching record.
func (b *Bound[R]) SelectFirst(records iter.Seq[R]) (R, bool, error) {
	return selectFirst(b.query, records, b.bindings)
}

// Count returns the number of matching records.
func (b *Bound[R]) Count(records iter.Seq[R]) (int, error) {
	return count(b.query, records, b.bindings)
}

func selectAll[R any](q *Query[R], records iter.Seq[R], b queryir.Bindings) ([]R, error) {
	var out []R
	for r := range records {
		ok, err := q.factory.evaluate(q.expr, r, b)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func selectFirst[R any](q *Query[R], records iter.Seq[R], b queryir.Bindings) (R, bool, error) {
	var zero R
	for r := range records {
		ok, err := q.factory.evaluate(q.expr, r, b)
		if err != nil {
			return zero, false, err
		}
		if ok {
			return r, true, nil
		}
	}
	return zero, false, nil
}

func count[R any](q *Query[R], records iter.Seq[R], b queryir.Bindings) (int, error) {
	n := 0
	for r := range records {
		ok, err := q.factory.evaluate(q.expr, r, b)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}
