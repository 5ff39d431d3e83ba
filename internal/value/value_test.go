package value

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type label string

type stringerValue struct{ name string }

func (s stringerValue) String() string { return "<" + s.name + ">" }

func TestIsNull(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]any
	var nilSlice []string
	var nilErr error
	zero := 0

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, true},
		{"nil pointer", nilPtr, true},
		{"nil map", nilMap, true},
		{"nil slice", nilSlice, true},
		{"nil error", nilErr, true},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"pointer", &zero, false},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNull(tt.v))
		})
	}
}

func TestStringify(t *testing.T) {
	id := uuid.MustParse("0190d3a4-7c1e-7b2a-8f00-000000000001")
	dec, _, _ := apd.NewFromString("12.50")

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"string", "foo", "foo"},
		{"named string", label("bar"), "bar"},
		{"bytes", []byte("baz"), "baz"},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"time", time.Date(2024, 1, 2, 3, 4, 5, 600, time.UTC), "2024-01-02T03:04:05.0000006Z"},
		{"duration", 90 * time.Second, "1m30s"},
		{"uuid", id, "0190d3a4-7c1e-7b2a-8f00-000000000001"},
		{"big int", big.NewInt(1 << 40), "1099511627776"},
		{"big float", big.NewFloat(0.25), "0.25"},
		{"decimal", dec, "12.50"},
		{"decimal value", *dec, "12.50"},
		{"stringer", stringerValue{"x"}, "<x>"},
		{"error", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stringify(tt.v))
		})
	}
}
