package payment_test

import (
	"testing"

	"carparts-store/pkg/payment"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{0, 0},
		{20.00, 2000},
		{19.99, 1999},
		{0.01, 1},
		{0.999, 100}, // rounds, never truncates
		{1234.56, 123456},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, payment.MinorUnits(tc.price), "price %v", tc.price)
	}
}
