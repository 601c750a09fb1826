package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain", "2.5", 2.5},
		{"whitespace", "  0.52\n", 0.52},
		{"comma decimal", "1,3", 1.3},
		{"trailing period", "3.", 3},
		{"quoted", `"0.89"`, 0.89},
		{"fenced", "```\n2.4\n```", 2.4},
		{"integer", "4", 4},
		{"zero", "0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.raw)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseNumber_Negative(t *testing.T) {
	got, err := ParseNumber("-1.5")
	require.NoError(t, err)
	assert.Equal(t, -1.5, got)
}

func TestParseNumber_RejectsProse(t *testing.T) {
	for _, raw := range []string{
		"I'm not sure.",
		"About 1.6 kcal per gram.",
		`I'm not sure what "7up" is.`,
		"Roughly 52 kcal per 100 g.",
		"1.6 kcal",
	} {
		_, err := ParseNumber(raw)
		assert.ErrorIs(t, err, ErrInvalidOutput, raw)
	}
}

func TestParseNumber_Empty(t *testing.T) {
	_, err := ParseNumber("")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestParseNumber_NotFinite(t *testing.T) {
	_, err := ParseNumber("NaN")
	assert.ErrorIs(t, err, ErrInvalidOutput)

	_, err = ParseNumber("+Inf")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
