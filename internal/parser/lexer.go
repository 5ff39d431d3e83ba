package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/mizukyf/minque/internal/queryir"
)

// numberPattern matches a leading decimal number with optional sign,
// fraction and exponent.
var numberPattern = regexp.MustCompile(`^[+-]?(\d*\.\d+|\d+\.?)([eE][+-]?\d+)?`)

// Lexer reads tokens from a Scanner according to Options.
// A Lexer holds no per-query state and may be shared.
type Lexer struct {
	opts Options
}

// NewLexer creates a lexer.
func NewLexer(opts Options) *Lexer {
	return &Lexer{opts: opts}
}

// isSpace treats every control rune as whitespace.
func isSpace(r rune) bool {
	return r != EOF && (r <= ' ' || unicode.IsSpace(r))
}

// SkipSpace consumes whitespace and, when enabled, comments.
// An unterminated block comment runs to end of input.
func (l *Lexer) SkipSpace(s *Scanner) error {
	for !s.AtEOF() {
		switch {
		case isSpace(s.Current()):
			if _, err := s.Next(); err != nil {
				return err
			}
		case l.opts.SkipComments && l.opts.LineCommentStart != "" && s.RestStartsWith(l.opts.LineCommentStart):
			if err := l.skipLineComment(s); err != nil {
				return err
			}
		case l.opts.SkipComments && l.opts.BlockCommentStart != "" && s.RestStartsWith(l.opts.BlockCommentStart):
			if err := l.skipBlockComment(s); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) skipLineComment(s *Scanner) error {
	if err := s.Advance(runeLen(l.opts.LineCommentStart)); err != nil {
		return err
	}
	for !s.AtEOF() {
		r := s.Current()
		if _, err := s.Next(); err != nil {
			return err
		}
		if r == '\n' || r == '\r' {
			return nil
		}
	}
	return nil
}

func (l *Lexer) skipBlockComment(s *Scanner) error {
	if err := s.Advance(runeLen(l.opts.BlockCommentStart)); err != nil {
		return err
	}
	for !s.AtEOF() {
		if s.RestStartsWith(l.opts.BlockCommentEnd) {
			return s.Advance(runeLen(l.opts.BlockCommentEnd))
		}
		if _, err := s.Next(); err != nil {
			return err
		}
	}
	return nil
}

// IsQuote reports whether r opens a quoted string.
func (l *Lexer) IsQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '`'
}

// QuotedString reads a string starting at the opening quote under the
// cursor and leaves the cursor just past the closing quote.
func (l *Lexer) QuotedString(s *Scanner) (string, error) {
	start := s.Pos()
	quote := s.Current()
	escape := l.opts.escapeFor(quote)
	unterminated := func() error {
		return &queryir.Error{
			Code:    queryir.CodeUnterminatedLiteral,
			Message: "unclosed quoted string",
			Pos:     start,
		}
	}

	var b strings.Builder
	for {
		r, err := s.Next()
		if err != nil {
			return "", err
		}
		switch {
		case r == EOF:
			return "", unterminated()
		case r == quote && escape == quote:
			next, err := s.Next()
			if err != nil {
				return "", err
			}
			if next != quote {
				return b.String(), nil
			}
			b.WriteRune(quote)
		case r == quote:
			_, err := s.Next()
			return b.String(), err
		case r == escape:
			escaped, err := s.Next()
			if err != nil {
				return "", err
			}
			if escaped == EOF {
				return "", unterminated()
			}
			b.WriteRune(escaped)
		default:
			b.WriteRune(r)
		}
	}
}

// BareToken reads runes up to whitespace, a reserved rune or end of input.
// The result may be empty.
func (l *Lexer) BareToken(s *Scanner) (string, error) {
	var b strings.Builder
	for r := s.Current(); r != EOF && !isSpace(r) && !strings.ContainsRune(queryir.ReservedRunes, r); r = s.Current() {
		b.WriteRune(r)
		if _, err := s.Next(); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// Token reads a quoted string or a non-empty bare token. what names the
// token in the MISSING_VALUE error.
func (l *Lexer) Token(s *Scanner, what string) (text string, quoted bool, err error) {
	if l.IsQuote(s.Current()) {
		text, err = l.QuotedString(s)
		return text, true, err
	}
	pos := s.Pos()
	text, err = l.BareToken(s)
	if err != nil {
		return "", false, err
	}
	if text == "" {
		return "", false, &queryir.Error{
			Code:    queryir.CodeMissingValue,
			Message: what + " is not found",
			Pos:     pos,
			Found:   describe(s.Current()),
		}
	}
	return text, false, nil
}

// ForwardIf consumes lit when the unread input starts with it.
func (l *Lexer) ForwardIf(s *Scanner, lit string) (bool, error) {
	if !s.RestStartsWith(lit) {
		return false, nil
	}
	return true, s.Advance(runeLen(lit))
}

// SkipWord consumes word or fails with a SYNTAX_ERROR naming it.
func (l *Lexer) SkipWord(s *Scanner, word string) error {
	ok, err := l.ForwardIf(s, word)
	if err != nil {
		return err
	}
	if !ok {
		return queryir.SyntaxError(s.Pos(), strconv.Quote(word), describe(s.Current()))
	}
	return nil
}

// Number reads a leading decimal number such as "-1.5e3" and returns its
// text and value.
func (l *Lexer) Number(s *Scanner) (string, float64, error) {
	match := numberPattern.FindString(s.Rest())
	if match == "" {
		return "", 0, queryir.SyntaxError(s.Pos(), "number", describe(s.Current()))
	}
	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return "", 0, &queryir.Error{Code: queryir.CodeSyntax, Message: err.Error(), Pos: s.Pos(), Expected: "number", Found: match}
	}
	return match, f, s.Advance(runeLen(match))
}

func runeLen(s string) int {
	return len([]rune(s))
}
