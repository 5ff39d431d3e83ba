package minque

import (
	"log/slog"

	"github.com/mizukyf/minque/internal/eval"
	"github.com/mizukyf/minque/internal/parser"
	"github.com/mizukyf/minque/internal/queryir"
)

// Factory compiles queries over records of type R.
// A Factory is safe for concurrent use.
type Factory[R any] struct {
	accessor  Accessor[R]
	parser    *parser.Parser
	evaluator *eval.Evaluator
	logger    *slog.Logger
}

// NewFactory creates a factory reading records through accessor.
// It panics if accessor is nil.
func NewFactory[R any](accessor Accessor[R], opts ...Option) *Factory[R] {
	if accessor == nil {
		panic("minque: nil accessor")
	}
	cfg := newConfig(opts)

	var evalOpts []eval.Option
	if cfg.normalize {
		evalOpts = append(evalOpts, eval.WithNormalization())
	}
	return &Factory[R]{
		accessor:  accessor,
		parser:    parser.New(cfg.lex, cfg.logger),
		evaluator: eval.New(evalOpts...),
		logger:    cfg.logger,
	}
}

// NewMapFactory creates a factory for map[string]any records.
func NewMapFactory(opts ...Option) *Factory[map[string]any] {
	return NewFactory[map[string]any](MapAccessor[any]{}, opts...)
}

// NewStructFactory creates a factory for struct records of type T, which
// must be a struct or a pointer to a struct.
func NewStructFactory[T any](opts ...Option) (*Factory[T], error) {
	acc, err := NewStructAccessor[T]()
	if err != nil {
		return nil, err
	}
	return NewFactory[T](acc, opts...), nil
}

// Compile parses query into a reusable Query.
func (f *Factory[R]) Compile(query string) (*Query[R], error) {
	res, err := f.parser.Parse(query)
	if err != nil {
		return nil, err
	}
	return &Query[R]{
		text:         query,
		expr:         res.Expression,
		placeholders: res.Placeholders,
		factory:      f,
	}, nil
}

// MustCompile is like Compile but panics on error.
func (f *Factory[R]) MustCompile(query string) *Query[R] {
	q, err := f.Compile(query)
	if err != nil {
		panic("minque: Compile(" + query + "): " + err.Error())
	}
	return q
}

// evaluate runs expr against one record.
func (f *Factory[R]) evaluate(expr queryir.Expression, record R, b queryir.Bindings) (bool, error) {
	return f.evaluator.Evaluate(expr, func(property string) (any, bool) {
		return f.accessor.Access(record, property)
	}, b)
}
