package parser

import "fmt"

// Options configures the lexical layer.
type Options struct {
	// LineCommentStart begins a comment running to end of line.
	LineCommentStart string
	// BlockCommentStart and BlockCommentEnd delimit a block comment.
	BlockCommentStart string
	BlockCommentEnd   string

	// Escape runes per quote kind. When an escape rune equals its quote,
	// a doubled quote stands for one literal quote.
	DoubleQuoteEscape rune
	SingleQuoteEscape rune
	BackQuoteEscape   rune

	// SkipComments makes whitespace skipping also skip comments.
	SkipComments bool
}

// DefaultOptions returns // and /* */ comments, backslash escapes for all
// three quote kinds, and comment skipping enabled.
func DefaultOptions() Options {
	return Options{
		LineCommentStart:  "//",
		BlockCommentStart: "/*",
		BlockCommentEnd:   "*/",
		DoubleQuoteEscape: '\\',
		SingleQuoteEscape: '\\',
		BackQuoteEscape:   '\\',
		SkipComments:      true,
	}
}

// Validate rejects option sets the lexer cannot honor.
func (o Options) Validate() error {
	if (o.BlockCommentStart == "") != (o.BlockCommentEnd == "") {
		return fmt.Errorf("block comment start and end must both be set or both be empty")
	}
	for name, r := range map[string]rune{
		"double quote escape": o.DoubleQuoteEscape,
		"single quote escape": o.SingleQuoteEscape,
		"back quote escape":   o.BackQuoteEscape,
	} {
		if r <= 0 {
			return fmt.Errorf("%s must be set", name)
		}
	}
	return nil
}

// escapeFor returns the escape rune for a quote rune.
func (o Options) escapeFor(quote rune) rune {
	switch quote {
	case '\'':
		return o.SingleQuoteEscape
	case '`':
		return o.BackQuoteEscape
	default:
		return o.DoubleQuoteEscape
	}
}
