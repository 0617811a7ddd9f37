package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToEGP(t *testing.T) {
	assert.Equal(t, 3055.5, ConvertToEGP(100, 30.555))
	assert.Equal(t, 0.0, ConvertToEGP(0, 48.2))
	assert.Equal(t, 482.5, ConvertToEGP(10, 48.25))
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 1.13, Round2(1.125))
	assert.Equal(t, -1.13, Round2(-1.125))
	assert.Equal(t, 2.5, Round2(2.5))
	assert.Equal(t, 0.01, Round2(0.005))
}

func TestConvertBetweenCurrencies(t *testing.T) {
	rates := map[string]float64{"USD": 50, "SAR": 12.5}

	v, ok := Convert(10, "USD", "EGP", rates)
	assert.True(t, ok)
	assert.Equal(t, 500.0, v)

	v, ok = Convert(10, "USD", "SAR", rates)
	assert.True(t, ok)
	assert.Equal(t, 40.0, v)

	v, ok = Convert(3.333, "EUR", "EUR", rates)
	assert.True(t, ok)
	assert.Equal(t, 3.33, v)

	_, ok = Convert(1, "GBP", "EGP", rates)
	assert.False(t, ok)
}
