package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizukyf/minque/internal/parser"
	"github.com/mizukyf/minque/internal/queryir"
	"github.com/mizukyf/minque/internal/testutil"
)

func compile(t *testing.T, text string) *parser.Result {
	t.Helper()
	res, err := parser.New(parser.DefaultOptions(), nil).Parse(text)
	require.NoError(t, err)
	return res
}

func lookupOf(record map[string]any) Lookup {
	return func(p string) (any, bool) {
		v, ok := record[p]
		return v, ok
	}
}

// matching returns the ids of records satisfying text.
func matching(t *testing.T, ev *Evaluator, text string, records []map[string]any, values ...any) []string {
	t.Helper()
	res := compile(t, text)
	b, err := res.Placeholders.Bind(values...)
	require.NoError(t, err)

	var ids []string
	for _, rec := range records {
		ok, err := ev.Evaluate(res.Expression, lookupOf(rec), b)
		require.NoError(t, err)
		if ok {
			ids = append(ids, rec["id"].(string))
		}
	}
	return ids
}

func TestEvaluate_KeyedRecords(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"key0 == foo", []string{"map0", "map1"}},
		{"key0 != foo", []string{"map2", "map3"}},
		{"key0 == foo or key1 == world", []string{"map0", "map1", "map2"}},
		{"(key0 == foo and key1 == bar) or key1 == world", []string{"map0", "map1", "map2"}},
		{"key0 == foo and key1 == bar or key1 == world", []string{"map0", "map1", "map2"}},
		{"key0 == foo and (key1 == bar or key1 == world)", []string{"map0", "map1"}},
		{"((key0 == foo) and ((key1 == bar) or (key1 == world)))", []string{"map0", "map1"}},
		{"key0 ^= f", []string{"map0", "map1"}},
		{"key0 $= oo", []string{"map0", "map1"}},
		{"key0 *= oo", []string{"map0", "map1"}},
		{"key0 *= o", []string{"map0", "map1", "map2"}},
		{"key2 is null", []string{"map2"}},
		{"key2 is not null", []string{"map0", "map1", "map3"}},
		{"key2 != baz", []string{"map1", "map3"}},
		{"!key2 == baz", []string{"map1", "map2", "map3"}},
		{"key0 > foo", []string{"map2"}},
		{"key3 >= 3333", []string{"map3"}},
	}

	ev := New()
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, matching(t, ev, tt.query, testutil.KeyedRecords()))
		})
	}
}

func TestEvaluate_NullNeverSatisfiesComparison(t *testing.T) {
	ev := New()
	record := map[string]any{"present": nil}

	for _, op := range queryir.ComparisonOperators {
		if op.Nullable() {
			continue
		}
		for _, prop := range []string{"present", "absent"} {
			expr := queryir.Compare(prop, op, queryir.Text("x"))
			ok, err := ev.Evaluate(expr, lookupOf(record), queryir.Bindings{})
			require.NoError(t, err)
			assert.False(t, ok, "%s %s", prop, op)
		}
	}
}

func TestEvaluate_NullChecks(t *testing.T) {
	ev := New()
	var nilPtr *int
	record := map[string]any{"set": 0, "nil": nil, "nilptr": nilPtr}

	tests := []struct {
		prop      string
		isNull    bool
		isNotNull bool
	}{
		{"set", false, true},
		{"nil", true, false},
		{"nilptr", true, false},
		{"absent", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.prop, func(t *testing.T) {
			got, err := ev.Evaluate(queryir.Compare(tt.prop, queryir.OpIsNull, queryir.Null()), lookupOf(record), queryir.Bindings{})
			require.NoError(t, err)
			assert.Equal(t, tt.isNull, got, "is null")

			got, err = ev.Evaluate(queryir.Compare(tt.prop, queryir.OpIsNotNull, queryir.Null()), lookupOf(record), queryir.Bindings{})
			require.NoError(t, err)
			assert.Equal(t, tt.isNotNull, got, "is not null")
		})
	}
}

func TestEvaluate_OrderedCoercion(t *testing.T) {
	records := []map[string]any{
		{"id": "a", "age": 20, "name": "foo"},
		{"id": "b", "age": 40, "name": "foo"},
		{"id": "c", "age": 60, "name": "far"},
	}
	ev := New()

	tests := []struct {
		query string
		bind  any
		want  []string
	}{
		{"age < ?", "foo", nil},
		{"age < ?", "20", nil},
		{"age < ?", 20, nil},
		{"age < ?", 21, []string{"a"}},
		{"age < ?", "21", []string{"a"}},
		{"age < ?", 40, []string{"a"}},
		{"age < ?", 41, []string{"a", "b"}},
		{"age <= ?", 40, []string{"a", "b"}},
		{"age >= ?", 40.5, nil},
		{"name > ?", "foo", nil},
		{"name > ?", "fop", nil},
		{"name > ?", "fas", []string{"a", "b"}},
		{"name > ?", "fa", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, matching(t, ev, tt.query, records, tt.bind))
		})
	}
}

func TestEvaluate_NumericFieldWithText(t *testing.T) {
	ev := New()
	rec := map[string]any{"id": "r", "n32": int32(5), "n": 5}

	for _, query := range []string{"n32 < a", "n32 > a", "n < a", "n > a"} {
		t.Run(query, func(t *testing.T) {
			assert.Empty(t, matching(t, ev, query, []map[string]any{rec}))
		})
	}

	assert.Equal(t, []string{"r"}, matching(t, ev, "n32 < 6", []map[string]any{rec}))
}

func TestEvaluate_BoolSugar(t *testing.T) {
	records := []map[string]any{
		{"id": "t0", "value": true},
		{"id": "t1", "value": true},
		{"id": "f0", "value": false},
	}
	ev := New()

	assert.Equal(t, []string{"t0", "t1"}, matching(t, ev, "value", records))
	assert.Equal(t, []string{"t0", "t1"}, matching(t, ev, "(value)", records))
	assert.Equal(t, []string{"f0"}, matching(t, ev, "!value", records))
	assert.Equal(t, []string{"t0", "t1"}, matching(t, ev, "value == ?", records, true))
	assert.Equal(t, []string{"f0"}, matching(t, ev, "value == ?", records, false))
}

func TestEvaluate_ShortCircuit(t *testing.T) {
	ev := New()
	record := map[string]any{"a": "x", "b": "y"}

	tests := []struct {
		query  string
		want   bool
		bCalls int
	}{
		{"a == x or b == y", true, 0},
		{"a == z or b == y", true, 1},
		{"a == z and b == y", false, 0},
		{"a == x and b == y", true, 1},
		{"(!a == z) or b == y", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			acc := testutil.NewCountingAccessor()
			got, err := ev.Evaluate(compile(t, tt.query).Expression, acc.Lookup(record), queryir.Bindings{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, acc.Calls("a"))
			assert.Equal(t, tt.bCalls, acc.Calls("b"))
		})
	}
}

func TestEvaluate_LeftToRightOrder(t *testing.T) {
	acc := testutil.NewCountingAccessor()
	record := map[string]any{"a": "1", "b": "2", "c": "3"}

	_, err := New().Evaluate(compile(t, "a == 0 or b == 0 or c == 0").Expression, acc.Lookup(record), queryir.Bindings{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, acc.Order())
}

func TestEvaluate_Deterministic(t *testing.T) {
	ev := New()
	expr := compile(t, "key0 == foo and (key1 ^= ba or key1 is null)").Expression
	for _, rec := range testutil.KeyedRecords() {
		first, err := ev.Evaluate(expr, lookupOf(rec), queryir.Bindings{})
		require.NoError(t, err)
		for range 5 {
			again, err := ev.Evaluate(expr, lookupOf(rec), queryir.Bindings{})
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestEvaluate_UnboundPlaceholder(t *testing.T) {
	expr := compile(t, "key0 == ?").Expression
	_, err := New().Evaluate(expr, lookupOf(map[string]any{"key0": "foo"}), queryir.Bindings{})
	assert.True(t, queryir.IsCode(err, queryir.CodeBindingRequired))
}

func TestEvaluate_NullBinding(t *testing.T) {
	res := compile(t, "key0 != ?")
	b, err := res.Placeholders.Bind(nil)
	require.NoError(t, err)

	ok, err := New().Evaluate(res.Expression, lookupOf(map[string]any{"key0": "foo"}), b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluate_UnsupportedUnary(t *testing.T) {
	expr := &queryir.Logical{Operator: queryir.OpAnd, Right: queryir.Compare("a", queryir.OpEquals, queryir.Text("1"))}
	_, err := New().Evaluate(expr, lookupOf(nil), queryir.Bindings{})
	assert.True(t, queryir.IsCode(err, queryir.CodeUnsupportedLogicalOperator))
}

func TestEvaluate_UnsupportedBinary(t *testing.T) {
	leaf := queryir.Compare("a", queryir.OpEquals, queryir.Text("1"))
	expr := &queryir.Logical{Operator: queryir.OpNot, Left: leaf, Right: leaf}
	_, err := New().Evaluate(expr, lookupOf(map[string]any{"a": "1"}), queryir.Bindings{})
	assert.True(t, queryir.IsCode(err, queryir.CodeUnsupportedLogicalOperator))
}

func TestEvaluate_InvalidComparison(t *testing.T) {
	expr := queryir.Compare("a", queryir.OpOr, queryir.Text("1"))
	_, err := New().Evaluate(expr, lookupOf(nil), queryir.Bindings{})
	assert.True(t, queryir.IsCode(err, queryir.CodeInvalidExpression))
}

func TestEvaluate_Normalization(t *testing.T) {
	// "é" as e + combining acute versus the precomposed form.
	record := map[string]any{"name": "cafe\u0301"}
	expr := queryir.Compare("name", queryir.OpEquals, queryir.Text("caf\u00e9"))

	plain, err := New().Evaluate(expr, lookupOf(record), queryir.Bindings{})
	require.NoError(t, err)
	assert.False(t, plain)

	normalized, err := New(WithNormalization()).Evaluate(expr, lookupOf(record), queryir.Bindings{})
	require.NoError(t, err)
	assert.True(t, normalized)
}
