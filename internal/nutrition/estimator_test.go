package nutrition

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/healthbot/internal/llm"
)

type stubLLM struct {
	text string
	err  error
	last llm.GenerateRequest
}

func (s *stubLLM) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.GenerateResponse{Text: s.text}, nil
}

func TestCaloriesPerGram_Parses(t *testing.T) {
	stub := &stubLLM{text: " 0,52\n"}
	e := NewEstimator(stub)

	got, err := e.CaloriesPerGram(context.Background(), "apple")
	require.NoError(t, err)
	assert.InDelta(t, 0.52, got, 1e-9)
	assert.Equal(t, llm.TaskCalorieEstimate, stub.last.Task)
	assert.Contains(t, stub.last.UserPrompt, `"apple"`)
}

func TestCaloriesPerGram_ZeroAccepted(t *testing.T) {
	e := NewEstimator(&stubLLM{text: "0"})
	got, err := e.CaloriesPerGram(context.Background(), "water")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCaloriesPerGram_Unresolved(t *testing.T) {
	tests := []struct {
		name string
		stub *stubLLM
	}{
		{"words", &stubLLM{text: "I don't know"}},
		{"digits in prose", &stubLLM{text: `I'm not sure what "7up" is.`}},
		{"per 100 g", &stubLLM{text: "Roughly 52 kcal per 100 g."}},
		{"negative", &stubLLM{text: "-2"}},
		{"infinite", &stubLLM{text: "Inf"}},
		{"timeout", &stubLLM{err: llm.ErrTimeout}},
		{"unavailable", &stubLLM{err: llm.ErrUnavailable}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEstimator(tt.stub).CaloriesPerGram(context.Background(), "mystery")
			assert.ErrorIs(t, err, ErrUnresolved)
		})
	}
}

func TestCaloriesPerGram_KeepsUpstreamCause(t *testing.T) {
	_, err := NewEstimator(&stubLLM{err: llm.ErrTimeout}).CaloriesPerGram(context.Background(), "rice")
	assert.ErrorIs(t, err, llm.ErrTimeout)
}

func TestCaloriesPerGram_EmptyName(t *testing.T) {
	stub := &stubLLM{text: "1"}
	_, err := NewEstimator(stub).CaloriesPerGram(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrUnresolved)
	assert.Empty(t, stub.last.UserPrompt, "no call for an empty name")
}

func TestCaloriesPerGram_NoClient(t *testing.T) {
	_, err := NewEstimator(nil).CaloriesPerGram(context.Background(), "bread")
	assert.ErrorIs(t, err, ErrUnresolved)
}
