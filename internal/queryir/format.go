package queryir

import (
	"strings"
	"unicode"
)

// ReservedRunes end a bare token. The lexer and Format share it so that
// formatted text always re-parses.
const ReservedRunes = ")=!^*$<>&|"

// Format renders e as query text that parses back to an equal tree under
// the default lexical options.
//
// The output is fully parenthesized: every AND, OR and NOT node is wrapped
// in its own parentheses, so operator grouping never depends on the left
// fold or on how far a NOT extends.
//
// Examples:
//
//	key0 == foo
//	(key0 == foo and (key1 ^= ba or key1 is null))
//	(!active == true)
func Format(e Expression) string {
	var b strings.Builder
	writeExpression(&b, e)
	return b.String()
}

func writeExpression(b *strings.Builder, e Expression) {
	switch node := e.(type) {
	case *Comparative:
		writeToken(b, node.Property)
		b.WriteByte(' ')
		b.WriteString(node.Operator.Symbol())
		if node.Operator.Nullable() {
			return
		}
		b.WriteByte(' ')
		switch node.Value.Kind {
		case LiteralPlaceholder:
			b.WriteByte('?')
		case LiteralNull:
			b.WriteString(`""`)
		default:
			if node.Value.Text == "?" {
				b.WriteString(`"?"`)
				return
			}
			writeToken(b, node.Value.Text)
		}
	case *Logical:
		b.WriteByte('(')
		if node.Operator == OpNot {
			b.WriteByte('!')
			writeExpression(b, node.Right)
		} else {
			writeExpression(b, node.Left)
			b.WriteByte(' ')
			b.WriteString(node.Operator.Symbol())
			b.WriteByte(' ')
			writeExpression(b, node.Right)
		}
		b.WriteByte(')')
	}
}

// writeToken writes s bare when the lexer would read it back unchanged,
// otherwise double-quoted with backslash escapes.
func writeToken(b *strings.Builder, s string) {
	if !needsQuoting(s) {
		b.WriteString(s)
		return
	}
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	switch s[0] {
	case '"', '\'', '`', '(', '!':
		return true
	}
	if strings.HasPrefix(s, "//") || strings.HasPrefix(s, "/*") {
		return true
	}
	for _, r := range s {
		if r <= ' ' || unicode.IsSpace(r) || strings.ContainsRune(ReservedRunes, r) {
			return true
		}
	}
	return false
}
