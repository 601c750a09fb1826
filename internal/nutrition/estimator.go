// Package nutrition estimates calorie density for free-text food names.
package nutrition

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/healthbot/internal/llm"
)

// ErrUnresolved means no usable calorie density could be obtained for a food.
var ErrUnresolved = errors.New("calorie density unresolved")

const systemPrompt = "You are a nutrition reference. Answer with a single number only: " +
	"the kilocalories contained in one gram of the named food. No units, no words."

// Estimator asks a language model for kilocalories per gram.
type Estimator struct {
	client llm.LLMClient
}

// NewEstimator creates an Estimator over client.
func NewEstimator(client llm.LLMClient) *Estimator {
	return &Estimator{client: client}
}

// CaloriesPerGram returns the estimated kcal in one gram of food.
// Any upstream failure or an answer that is not a non-negative finite
// number is reported as ErrUnresolved.
func (e *Estimator) CaloriesPerGram(ctx context.Context, food string) (float64, error) {
	food = strings.TrimSpace(food)
	if food == "" {
		return 0, fmt.Errorf("%w: empty food name", ErrUnresolved)
	}
	if e.client == nil {
		return 0, fmt.Errorf("%w: no language model configured", ErrUnresolved)
	}

	resp, err := e.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCalorieEstimate,
		SystemPrompt: systemPrompt,
		UserPrompt:   fmt.Sprintf("How many kilocalories are in 1 gram of %q?", food),
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnresolved, err)
	}

	v, err := llm.ParseNumber(resp.Text)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnresolved, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative density %v", ErrUnresolved, v)
	}
	return v, nil
}
