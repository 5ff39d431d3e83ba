// Package value converts record property values for comparison.
//
// Records expose properties as arbitrary Go values while query literals are
// always text. Stringify produces the text form used by the string-affinity
// operators and by placeholder binding. Compare coerces a literal to the
// type of the record value and orders the two.
package value

import (
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// IsNull reports whether v is nil or a nil pointer, map, slice, interface,
// channel or function.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// Stringify returns the canonical text form of v.
//
//	string, []byte       as-is
//	time.Time            RFC 3339 with nanoseconds
//	*big.Float           shortest decimal form
//	apd.Decimal, big.Int their String form
//	fmt.Stringer         String()
//	everything else      fmt.Sprint
func Stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case *big.Float:
		return x.Text('g', -1)
	case big.Float:
		return x.Text('g', -1)
	case big.Int:
		return x.String()
	case apd.Decimal:
		return x.String()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
