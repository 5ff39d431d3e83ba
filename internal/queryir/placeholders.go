package queryir

import "github.com/mizukyf/minque/internal/value"

// Placeholders is the registry of `?` slots created while parsing one query.
// Slots are numbered 0..Len()-1 in the order they appear in the text.
type Placeholders struct {
	n int
}

// Register allocates the next slot and returns a literal referring to it.
func (p *Placeholders) Register() Literal {
	lit := Placeholder(p.n)
	p.n++
	return lit
}

// Len returns the number of registered slots.
func (p *Placeholders) Len() int {
	if p == nil {
		return 0
	}
	return p.n
}

// Bind renders values in slot order and returns them as Bindings.
// A nil value binds its slot to null. The number of values must equal Len.
func (p *Placeholders) Bind(values ...any) (Bindings, error) {
	if len(values) != p.Len() {
		return Bindings{}, Errorf(CodeBindArity,
			"number of bind variables must be %d, got %d", p.Len(), len(values))
	}
	slots := make([]Literal, len(values))
	for i, v := range values {
		if value.IsNull(v) {
			slots[i] = Null()
			continue
		}
		slots[i] = Text(value.Stringify(v))
	}
	return Bindings{slots: slots, bound: true}, nil
}

// Bindings is an immutable set of values for placeholder slots.
// The zero Bindings is unbound.
type Bindings struct {
	slots []Literal
	bound bool
}

// Bound reports whether b came from Placeholders.Bind.
func (b Bindings) Bound() bool { return b.bound }

// Len returns the number of bound slots.
func (b Bindings) Len() int { return len(b.slots) }

// Resolve returns lit unchanged unless it is a placeholder, in which case it
// returns the bound text or null literal for its slot.
func (b Bindings) Resolve(lit Literal) (Literal, error) {
	if lit.Kind != LiteralPlaceholder {
		return lit, nil
	}
	if !b.bound {
		return Literal{}, Errorf(CodeBindingRequired, "bind variables are required")
	}
	if lit.Index < 0 || lit.Index >= len(b.slots) {
		return Literal{}, Errorf(CodeBindArity,
			"placeholder %d is out of range for %d bind variables", lit.Index, len(b.slots))
	}
	return b.slots[lit.Index], nil
}
