package minque

// Accessor reads a named property from a record of type R.
// ok is false when the record has no such property; a nil value with ok
// true is also treated as null.
//
// An Accessor must return the same value for the same record and property
// within one evaluation.
type Accessor[R any] interface {
	Access(record R, property string) (v any, ok bool)
}

// AccessorFunc adapts a function to Accessor.
type AccessorFunc[R any] func(record R, property string) (any, bool)

// Access calls f.
func (f AccessorFunc[R]) Access(record R, property string) (any, bool) {
	return f(record, property)
}

// MapAccessor reads keys of map records.
type MapAccessor[V any] struct{}

// Access returns record[property].
func (MapAccessor[V]) Access(record map[string]V, property string) (any, bool) {
	v, ok := record[property]
	if !ok {
		return nil, false
	}
	return v, true
}
