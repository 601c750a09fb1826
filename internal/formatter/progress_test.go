package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextBar(t *testing.T) {
	assert.Equal(t, "[░░░░░░░░░░] 0%", TextBar(0, 10))
	assert.Equal(t, "[█████░░░░░] 50%", TextBar(0.5, 10))
	assert.Equal(t, "[██████████] 150%", TextBar(1.5, 10), "overshoot keeps the real percentage")
	assert.Equal(t, "[░░] 0%", TextBar(-1, 1))
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
	}{
		{"0%", 0.0, 10},
		{"50%", 0.5, 10},
		{"100%", 1.0, 10},
		{"over 100% clamps", 1.5, 10},
		{"negative clamps", -0.5, 10},
		{"tiny width clamps to 2", 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderProgress(tt.pct, tt.width))
			assert.True(t, strings.HasPrefix(got, "["))
			assert.Contains(t, got, "%")
			assert.NotContains(t, got, "150%")
		})
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.25, Ratio(1, 4))
	assert.Zero(t, Ratio(5, 0))
}
