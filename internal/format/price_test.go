package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "non-integer amount pads fraction", amount: 1234.5, want: "₹1,234.50"},
		{name: "zero", amount: 0, want: "₹0.00"},
		{name: "integer amount gains fraction", amount: 450, want: "₹450.00"},
		{name: "rounds to two digits", amount: 99.999, want: "₹100.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Price(tt.amount))
		})
	}
}

func TestAmounts(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Amounts(3))
	assert.Nil(t, Amounts(0))
	assert.Nil(t, Amounts(-2))
}
