package parser

import (
	"fmt"
	"unicode/utf8"
)

// Config is the file form of Options, decoded from YAML, JSON or CUE.
// Empty fields keep their defaults, and SkipComments defaults to true.
type Config struct {
	LineComment       string `yaml:"line_comment,omitempty" json:"line_comment,omitempty"`
	BlockCommentStart string `yaml:"block_comment_start,omitempty" json:"block_comment_start,omitempty"`
	BlockCommentEnd   string `yaml:"block_comment_end,omitempty" json:"block_comment_end,omitempty"`
	DoubleQuoteEscape string `yaml:"double_quote_escape,omitempty" json:"double_quote_escape,omitempty"`
	SingleQuoteEscape string `yaml:"single_quote_escape,omitempty" json:"single_quote_escape,omitempty"`
	BackQuoteEscape   string `yaml:"back_quote_escape,omitempty" json:"back_quote_escape,omitempty"`
	SkipComments      *bool  `yaml:"skip_comments,omitempty" json:"skip_comments,omitempty"`
}

// Options applies c over DefaultOptions and validates the result.
func (c Config) Options() (Options, error) {
	opts := DefaultOptions()
	if c.LineComment != "" {
		opts.LineCommentStart = c.LineComment
	}
	if c.BlockCommentStart != "" {
		opts.BlockCommentStart = c.BlockCommentStart
	}
	if c.BlockCommentEnd != "" {
		opts.BlockCommentEnd = c.BlockCommentEnd
	}
	if c.SkipComments != nil {
		opts.SkipComments = *c.SkipComments
	}

	for _, esc := range []struct {
		name string
		text string
		dst  *rune
	}{
		{"double_quote_escape", c.DoubleQuoteEscape, &opts.DoubleQuoteEscape},
		{"single_quote_escape", c.SingleQuoteEscape, &opts.SingleQuoteEscape},
		{"back_quote_escape", c.BackQuoteEscape, &opts.BackQuoteEscape},
	} {
		if esc.text == "" {
			continue
		}
		if utf8.RuneCountInString(esc.text) != 1 {
			return Options{}, fmt.Errorf("%s must be a single character, got %q", esc.name, esc.text)
		}
		*esc.dst, _ = utf8.DecodeRuneInString(esc.text)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
