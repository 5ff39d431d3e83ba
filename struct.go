package minque

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// StructAccessor reads properties of struct records (T is a struct type or
// a pointer to one). The property table is built once by NewStructAccessor.
//
// A property "name" resolves to the first of these that exists:
//
//	GetName()     method
//	IsName()      method
//	Name()        method
//	Name          exported field
//	`minque:"name"`  field tag
//
// Members are matched by their exact name, the name with a lower-case
// first letter, or the all-lower-case name; Get and Is methods are also
// matched with the prefix stripped. Methods must take no
// arguments and return one value, or a value and an error; a non-nil error
// or a panic makes the property absent. A nil *T record has no properties.
type StructAccessor[T any] struct {
	ptr        bool
	structType reflect.Type
	props      map[string]member
}

// member extracts one property.
type member struct {
	method   int   // index in the *struct method set, or -1
	field    []int // field index path when method is -1
	priority int
}

// Priorities, lowest wins.
const (
	prioGetter = iota * 10
	prioIs
	prioMethod
	prioField
	prioTag
)

// NewStructAccessor builds the property table for T.
func NewStructAccessor[T any]() (*StructAccessor[T], error) {
	t := reflect.TypeFor[T]()
	a := &StructAccessor[T]{props: make(map[string]member)}
	if t.Kind() == reflect.Pointer {
		a.ptr = true
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("minque: %s is not a struct or pointer to struct", reflect.TypeFor[T]())
	}
	a.structType = t

	ptrType := reflect.PointerTo(t)
	for i := range ptrType.NumMethod() {
		m := ptrType.Method(i)
		if !validGetter(m.Type) {
			continue
		}
		mem := member{method: i}
		switch {
		case hasWordPrefix(m.Name, "Get"):
			a.register(m.Name[3:], mem, prioGetter)
		case hasWordPrefix(m.Name, "Is"):
			a.register(m.Name[2:], mem, prioIs)
		}
		a.register(m.Name, mem, prioMethod)
	}

	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		tag := f.Tag.Get("minque")
		if tag == "-" {
			continue
		}
		mem := member{method: -1, field: f.Index}
		a.register(f.Name, mem, prioField)
		if tag != "" {
			a.set(tag, mem, prioTag)
		}
	}
	return a, nil
}

// validGetter accepts func(*T) V and func(*T) (V, error).
func validGetter(t reflect.Type) bool {
	if t.NumIn() != 1 {
		return false
	}
	switch t.NumOut() {
	case 1:
		return true
	case 2:
		return t.Out(1) == reflect.TypeFor[error]()
	}
	return false
}

// register adds name under its spelling variants.
func (a *StructAccessor[T]) register(name string, m member, prio int) {
	a.set(name, m, prio)
	a.set(lowerFirst(name), m, prio+1)
	a.set(strings.ToLower(name), m, prio+2)
}

func (a *StructAccessor[T]) set(name string, m member, prio int) {
	if existing, ok := a.props[name]; ok && existing.priority <= prio {
		return
	}
	m.priority = prio
	a.props[name] = m
}

// hasWordPrefix matches "GetName" but not "Getaway".
func hasWordPrefix(name, prefix string) bool {
	if !strings.HasPrefix(name, prefix) || len(name) == len(prefix) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name[len(prefix):])
	return unicode.IsUpper(r)
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}

// Properties returns the resolvable property names, sorted.
func (a *StructAccessor[T]) Properties() []string {
	names := make([]string, 0, len(a.props))
	for name := range a.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Access returns the value of property on record.
func (a *StructAccessor[T]) Access(record T, property string) (v any, ok bool) {
	m, found := a.props[property]
	if !found {
		return nil, false
	}

	rv := reflect.ValueOf(record)
	if a.ptr {
		if rv.IsNil() {
			return nil, false
		}
	} else if m.method >= 0 {
		// Pointer-receiver methods need an addressable copy.
		p := reflect.New(a.structType)
		p.Elem().Set(rv)
		rv = p
	}

	if m.method < 0 {
		fv, err := reflect.Indirect(rv).FieldByIndexErr(m.field)
		if err != nil {
			return nil, false
		}
		return fv.Interface(), true
	}
	return callGetter(rv.Method(m.method))
}

func callGetter(fn reflect.Value) (v any, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = nil, false
		}
	}()
	out := fn.Call(nil)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, false
	}
	return out[0].Interface(), true
}
