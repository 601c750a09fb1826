package llm

import (
	"os"
	"strconv"
	"strings"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskCalorieEstimate TaskType = "calorie_estimate"
)

// Provider selects the completion backend.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Provider  Provider
	LogCalls  bool
	Endpoint  string
	Model     string
	APIKey    string
	TimeoutMs int
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig targets OpenAI's gpt-4o-mini with a deterministic, short
// calorie-estimate task.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Provider:  ProviderOpenAI,
		Endpoint:  "https://api.openai.com/v1",
		Model:     "gpt-4o-mini",
		TimeoutMs: 10000,
		Tasks: map[TaskType]TaskConfig{
			TaskCalorieEstimate: {Temperature: 0, MaxTokens: 16, TimeoutMs: 10000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values. Selecting the ollama
// provider switches the default endpoint and model to a local server.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("HEALTHBOT_LLM_PROVIDER"); v != "" {
		cfg.Provider = Provider(strings.ToLower(v))
		if cfg.Provider == ProviderOllama {
			cfg.Endpoint = "http://localhost:11434"
			cfg.Model = "llama3.2"
		}
	}
	if v := os.Getenv("HEALTHBOT_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("HEALTHBOT_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("HEALTHBOT_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("OPEN_AI_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("HEALTHBOT_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskCalorieEstimate, "HEALTHBOT_LLM_CALORIE_TIMEOUT_MS")

	return cfg
}

// Enabled reports whether the configuration can reach a backend at all.
// OpenAI needs a key; a local Ollama server does not.
func (c LLMConfig) Enabled() bool {
	switch c.Provider {
	case ProviderOllama:
		return c.Endpoint != ""
	case ProviderOpenAI:
		return c.APIKey != ""
	default:
		return false
	}
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
