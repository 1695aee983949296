package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(4999), ToCents(49.99))
	assert.Equal(t, int64(100), ToCents(1))
	assert.Equal(t, int64(0), ToCents(0))
	assert.Equal(t, int64(1), ToCents(0.01))
	// Rounding guards against binary float representation error.
	assert.Equal(t, int64(2998), ToCents(29.98))
}

func TestToMajor(t *testing.T) {
	assert.InDelta(t, 49.99, ToMajor(4999), 1e-9)
	assert.InDelta(t, 0, ToMajor(0), 1e-9)
	assert.InDelta(t, 0.01, ToMajor(1), 1e-9)
}

func TestCentsRoundTrip(t *testing.T) {
	// toCents(toMajor(x)) = x for cents exactly representable in major units.
	for _, cents := range []int64{0, 1, 5, 99, 100, 101, 4999, 123456, 999999999} {
		assert.Equal(t, cents, ToCents(ToMajor(cents)), "round trip failed for %d cents", cents)
	}
}

func TestFormatterFormat(t *testing.T) {
	f := NewFormatter("en-US", "$")

	assert.Equal(t, "$49.99", f.Format(4999))
	assert.Equal(t, "$0.00", f.Format(0))
	assert.Equal(t, "$0.05", f.Format(5))
	assert.Equal(t, "$1,234.56", f.Format(123456))
	assert.Equal(t, "$1,234,567.89", f.Format(123456789))
}

func TestFormatterFallsBackOnBadLocale(t *testing.T) {
	f := NewFormatter("???", "")
	assert.Equal(t, "$49.99", f.Format(4999))
}
