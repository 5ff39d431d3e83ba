package value

import (
	"bytes"
	"cmp"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Compare orders actual against literal after coercing literal to the type
// of actual. It returns -1, 0 or +1 and true, or false when literal cannot
// be read as a value of that type or the type has no ordering.
//
// Supported types:
//
//	signed and unsigned integers   strconv with the type's bit size
//	float32, float64               strconv.ParseFloat
//	*big.Int, *big.Float           math/big parsing
//	apd.Decimal                    apd.NewFromString
//	bool                           false < true
//	string                         byte-wise
//	time.Time                      RFC 3339, or a YYYY-MM-DD date
//	time.Duration                  time.ParseDuration
//	uuid.UUID                      uuid.Parse, byte-wise
//
// Named types are handled by their underlying kind. A rune is an int32
// and compares as an integer only.
func Compare(actual any, literal string) (int, bool) {
	switch a := actual.(type) {
	case string:
		return strings.Compare(a, literal), true
	case time.Time:
		return compareTime(a, literal)
	case time.Duration:
		d, err := time.ParseDuration(literal)
		if err != nil {
			return 0, false
		}
		return cmp.Compare(a, d), true
	case uuid.UUID:
		u, err := uuid.Parse(literal)
		if err != nil {
			return 0, false
		}
		return bytes.Compare(a[:], u[:]), true
	case *big.Int:
		return compareBigInt(a, literal)
	case big.Int:
		return compareBigInt(&a, literal)
	case *big.Float:
		return compareBigFloat(a, literal)
	case big.Float:
		return compareBigFloat(&a, literal)
	case *apd.Decimal:
		return compareDecimal(a, literal)
	case apd.Decimal:
		return compareDecimal(&a, literal)
	}
	return compareKind(reflect.ValueOf(actual), literal)
}

func compareKind(rv reflect.Value, literal string) (int, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(literal, 10, rv.Type().Bits())
		if err != nil {
			return 0, false
		}
		return cmp.Compare(rv.Int(), n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(literal, 10, rv.Type().Bits())
		if err != nil {
			return 0, false
		}
		return cmp.Compare(rv.Uint(), n), true
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(literal, rv.Type().Bits())
		if err != nil {
			return 0, false
		}
		return cmp.Compare(rv.Float(), f), true
	case reflect.Bool:
		b, err := strconv.ParseBool(literal)
		if err != nil {
			return 0, false
		}
		return compareBool(rv.Bool(), b), true
	case reflect.String:
		return strings.Compare(rv.String(), literal), true
	}
	return 0, false
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

func compareTime(a time.Time, literal string) (int, bool) {
	t, err := time.Parse(time.RFC3339Nano, literal)
	if err != nil {
		t, err = time.Parse(time.DateOnly, literal)
		if err != nil {
			return 0, false
		}
	}
	return a.Compare(t), true
}

func compareBigInt(a *big.Int, literal string) (int, bool) {
	b, ok := new(big.Int).SetString(literal, 10)
	if !ok {
		return 0, false
	}
	return a.Cmp(b), true
}

func compareBigFloat(a *big.Float, literal string) (int, bool) {
	prec := a.Prec()
	if prec == 0 {
		prec = 64
	}
	b, _, err := big.ParseFloat(literal, 10, prec, big.ToNearestEven)
	if err != nil {
		return 0, false
	}
	return a.Cmp(b), true
}

func compareDecimal(a *apd.Decimal, literal string) (int, bool) {
	b, _, err := apd.NewFromString(literal)
	if err != nil {
		return 0, false
	}
	return a.Cmp(b), true
}
