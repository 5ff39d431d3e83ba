package parser

import (
	"github.com/mizukyf/minque/internal/queryir"
)

// EOF is returned by Scanner.Current at end of input.
const EOF rune = -1

// Scanner is a rune cursor over query text that tracks line and column.
type Scanner struct {
	src    []rune
	offset int
	line   int
	column int
}

// NewScanner positions a scanner on the first rune of text.
func NewScanner(text string) *Scanner {
	return &Scanner{src: []rune(text), line: 1, column: 1}
}

// Current returns the rune under the cursor, or EOF.
func (s *Scanner) Current() rune {
	if s.offset >= len(s.src) {
		return EOF
	}
	return s.src[s.offset]
}

// AtEOF reports whether the cursor is past the last rune.
func (s *Scanner) AtEOF() bool { return s.offset >= len(s.src) }

// Next advances one rune and returns the new current rune. Advancing from
// EOF is a READ_ERROR.
func (s *Scanner) Next() (rune, error) {
	if s.AtEOF() {
		return EOF, &queryir.Error{
			Code:    queryir.CodeRead,
			Message: "read past end of input",
			Pos:     s.Pos(),
		}
	}
	if s.src[s.offset] == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	s.offset++
	return s.Current(), nil
}

// Advance moves the cursor n runes forward.
func (s *Scanner) Advance(n int) error {
	for range n {
		if _, err := s.Next(); err != nil {
			return err
		}
	}
	return nil
}

// RestStartsWith reports whether the unread input begins with lit.
func (s *Scanner) RestStartsWith(lit string) bool {
	i := s.offset
	for _, r := range lit {
		if i >= len(s.src) || s.src[i] != r {
			return false
		}
		i++
	}
	return true
}

// Rest returns the unread input up to the end of the current line.
func (s *Scanner) Rest() string {
	end := s.offset
	for end < len(s.src) && s.src[end] != '\n' && s.src[end] != '\r' {
		end++
	}
	return string(s.src[s.offset:end])
}

// Pos returns the cursor position.
func (s *Scanner) Pos() queryir.Position {
	return queryir.Position{Offset: s.offset, Line: s.line, Column: s.column}
}

// describe renders r for error messages.
func describe(r rune) string {
	if r == EOF {
		return "end of input"
	}
	return "'" + string(r) + "'"
}
