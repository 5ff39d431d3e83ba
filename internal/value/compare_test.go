package value

import (
	"math/big"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type celsius float64

func TestCompare(t *testing.T) {
	when := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	id := uuid.MustParse("00000000-0000-0000-0000-000000000010")
	dec, _, _ := apd.NewFromString("10.5")

	tests := []struct {
		name    string
		actual  any
		literal string
		want    int
		ok      bool
	}{
		{"int less", 20, "21", -1, true},
		{"int equal", 20, "20", 0, true},
		{"int greater", 40, "21", 1, true},
		{"int not a number", 20, "foo", 0, false},
		{"int fraction", 20, "20.5", 0, false},
		{"int8 overflow", int8(1), "300", 0, false},
		{"uint", uint(5), "4", 1, true},
		{"uint negative literal", uint(5), "-1", 0, false},
		{"float", 1.5, "2", -1, true},
		{"float exponent", 1500.0, "1.5e3", 0, true},
		{"named float", celsius(21.5), "21.5", 0, true},
		{"string", "foo", "fop", -1, true},
		{"string prefix", "foo", "fa", 1, true},
		{"named string", label("b"), "a", 1, true},
		{"bool", false, "true", -1, true},
		{"bool bad", false, "yes", 0, false},
		{"time before", when, "2024-06-02T00:00:00Z", -1, true},
		{"time date only", when, "2024-06-01", 0, true},
		{"time bad", when, "foo", 0, false},
		{"duration", 2 * time.Second, "1500ms", 1, true},
		{"uuid", id, "00000000-0000-0000-0000-000000000011", -1, true},
		{"uuid bad", id, "nope", 0, false},
		{"rune numeric", 'A', "66", -1, true},
		{"rune char", 'b', "a", 0, false},
		{"int32 non-numeric", int32(5), "a", 0, false},
		{"big int", big.NewInt(100), "99", 1, true},
		{"big float", big.NewFloat(0.5), "0.75", -1, true},
		{"decimal", dec, "10.50", 0, true},
		{"decimal value", *dec, "11", -1, true},
		{"decimal bad", dec, "x", 0, false},
		{"unsupported", struct{}{}, "x", 0, false},
		{"slice", []int{1}, "1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compare(tt.actual, tt.literal)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
