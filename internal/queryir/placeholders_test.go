package queryir

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholders_Register(t *testing.T) {
	var p Placeholders
	assert.Equal(t, 0, p.Len())

	a := p.Register()
	b := p.Register()

	assert.Equal(t, Placeholder(0), a)
	assert.Equal(t, Placeholder(1), b)
	assert.Equal(t, 2, p.Len())
}

func TestPlaceholders_NilLen(t *testing.T) {
	var p *Placeholders
	assert.Equal(t, 0, p.Len())
}

func TestPlaceholders_Bind(t *testing.T) {
	var p Placeholders
	p.Register()
	p.Register()
	p.Register()

	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	b, err := p.Bind(21, when, nil)
	require.NoError(t, err)
	assert.True(t, b.Bound())
	assert.Equal(t, 3, b.Len())

	first, err := b.Resolve(Placeholder(0))
	require.NoError(t, err)
	assert.Equal(t, Text("21"), first)

	second, err := b.Resolve(Placeholder(1))
	require.NoError(t, err)
	assert.Equal(t, Text("2024-03-01T12:00:00Z"), second)

	third, err := b.Resolve(Placeholder(2))
	require.NoError(t, err)
	assert.True(t, third.IsNull())
}

func TestPlaceholders_BindArity(t *testing.T) {
	var p Placeholders
	p.Register()
	p.Register()

	tests := []struct {
		name   string
		values []any
	}{
		{"none", nil},
		{"too few", []any{"a"}},
		{"too many", []any{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Bind(tt.values...)
			require.Error(t, err)
			assert.True(t, IsCode(err, CodeBindArity))
			assert.Contains(t, err.Error(), "must be 2")
		})
	}
}

func TestPlaceholders_BindZero(t *testing.T) {
	var p Placeholders
	b, err := p.Bind()
	require.NoError(t, err)
	assert.True(t, b.Bound())
}

func TestBindings_ResolveConstant(t *testing.T) {
	var b Bindings
	lit, err := b.Resolve(Text("foo"))
	require.NoError(t, err)
	assert.Equal(t, Text("foo"), lit)
}

func TestBindings_ResolveUnbound(t *testing.T) {
	var b Bindings
	_, err := b.Resolve(Placeholder(0))
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeBindingRequired))
	assert.True(t, errors.Is(err, &Error{Code: CodeBindingRequired}))
}

func TestBindings_ResolveOutOfRange(t *testing.T) {
	var p Placeholders
	p.Register()
	b, err := p.Bind("x")
	require.NoError(t, err)

	_, err = b.Resolve(Placeholder(4))
	assert.True(t, IsCode(err, CodeBindArity))
}

func TestBindings_Independent(t *testing.T) {
	var p Placeholders
	p.Register()

	first, err := p.Bind("foo")
	require.NoError(t, err)
	second, err := p.Bind("hello")
	require.NoError(t, err)

	a, _ := first.Resolve(Placeholder(0))
	b, _ := second.Resolve(Placeholder(0))
	assert.Equal(t, "foo", a.Text)
	assert.Equal(t, "hello", b.Text)
}
