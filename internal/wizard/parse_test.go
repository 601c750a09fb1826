package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositiveFloat(t *testing.T) {
	v, err := ParsePositiveFloat(" 72,5 ")
	require.NoError(t, err)
	assert.Equal(t, 72.5, v)

	for _, in := range []string{"", "abc", "0", "-1", "NaN", "Inf"} {
		_, err := ParsePositiveFloat(in)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
	}
}

func TestParseWeightHeightAge_UpperBounds(t *testing.T) {
	v, err := ParseWeight("999,5")
	require.NoError(t, err)
	assert.Equal(t, 999.5, v)

	for _, in := range []string{"1000", "1e300", "-5", "heavy"} {
		_, err := ParseWeight(in)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
	}

	_, err = ParseHeight("175")
	require.NoError(t, err)
	for _, in := range []string{"300", "1e9"} {
		_, err := ParseHeight(in)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
	}

	_, err = ParseAge("30")
	require.NoError(t, err)
	_, err = ParseAge("150")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParsePositiveInt(t *testing.T) {
	v, err := ParsePositiveInt("250")
	require.NoError(t, err)
	assert.Equal(t, 250, v)

	v, err = ParsePositiveInt("250,0")
	require.NoError(t, err)
	assert.Equal(t, 250, v)

	for _, in := range []string{"2.5", "0", "-3", "lots", "1e20"} {
		_, err := ParsePositiveInt(in)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
	}
}

func TestParseNonNegativeInt(t *testing.T) {
	v, err := ParseNonNegativeInt("0")
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = ParseNonNegativeInt("-1")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseOptionalTarget(t *testing.T) {
	for _, in := range []string{"", "  ", "skip", "SKIP", "-", "0", " no "} {
		v, err := ParseOptionalTarget(in)
		require.NoError(t, err, in)
		assert.Nil(t, v, in)
	}

	v, err := ParseOptionalTarget("1800")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 1800, *v)

	_, err = ParseOptionalTarget("lots")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseText(t *testing.T) {
	v, err := ParseText("  running ")
	require.NoError(t, err)
	assert.Equal(t, "running", v)

	_, err = ParseText("   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
