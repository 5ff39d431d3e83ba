package minque

import (
	"log/slog"

	"github.com/mizukyf/minque/internal/parser"
)

// LexOptions configures comments and quote escapes of the query language.
type LexOptions = parser.Options

// DefaultLexOptions returns // and /* */ comments, backslash escapes for
// all quote kinds, and comment skipping enabled.
func DefaultLexOptions() LexOptions { return parser.DefaultOptions() }

type config struct {
	lex       LexOptions
	logger    *slog.Logger
	normalize bool
}

func newConfig(opts []Option) config {
	cfg := config{lex: parser.DefaultOptions()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// Option configures a Factory.
type Option func(*config)

// WithLexOptions replaces the default lexical options.
func WithLexOptions(o LexOptions) Option {
	return func(c *config) { c.lex = o }
}

// WithLogger sets the logger used for debug output during compilation.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithNormalization compares text in Unicode NFC form, so precomposed and
// decomposed spellings of the same character match.
func WithNormalization() Option {
	return func(c *config) { c.normalize = true }
}
