package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCents(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{"whole dollars", 3000, "30.00"},
		{"dollars and cents", 461, "4.61"},
		{"cents only", 5, "0.05"},
		{"zero", 0, "0.00"},
		{"tens of cents", 50, "0.50"},
		{"large amount", 123456789, "1234567.89"},
		{"negative", -461, "-4.61"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCents(tt.cents))
		})
	}
}

func TestOrderTotal(t *testing.T) {
	assert.Equal(t, int64(6000), OrderTotal(3000, 2))
	assert.Equal(t, int64(461), OrderTotal(461, 1))
	assert.Equal(t, int64(0), OrderTotal(0, 10))
}

func TestOrderTotalNoDrift(t *testing.T) {
	// 0.1 + 0.2 style float drift must be impossible: 3 x 10 cents is
	// exactly 30 cents, for any quantity.
	var unit int64 = 10
	var total int64
	for i := 0; i < 1000; i++ {
		total += unit
	}
	assert.Equal(t, total, OrderTotal(unit, 1000))
}
