package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_OpenAI(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskCalorieEstimate))
	assert.False(t, cfg.Enabled(), "no key means disabled")
}

func TestLoadConfig_OllamaDefaults(t *testing.T) {
	t.Setenv("HEALTHBOT_LLM_PROVIDER", "Ollama")

	cfg := LoadConfig()
	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.True(t, cfg.Enabled())
}

func TestLoadConfig_OpenAIKey(t *testing.T) {
	t.Setenv("HEALTHBOT_LLM_PROVIDER", "")
	t.Setenv("OPEN_AI_KEY", "sk-test")
	t.Setenv("HEALTHBOT_LLM_MODEL", "gpt-4o")

	cfg := LoadConfig()
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.True(t, cfg.Enabled())
}

func TestLoadConfig_TaskTimeoutOverride(t *testing.T) {
	t.Setenv("HEALTHBOT_LLM_TIMEOUT_MS", "4000")
	t.Setenv("HEALTHBOT_LLM_CALORIE_TIMEOUT_MS", "2500")

	cfg := LoadConfig()
	assert.Equal(t, 4000, cfg.TimeoutMs)
	assert.Equal(t, 2500, cfg.TaskTimeout(TaskCalorieEstimate))
}

func TestLoadConfig_InvalidTaskTimeoutIgnored(t *testing.T) {
	t.Setenv("HEALTHBOT_LLM_CALORIE_TIMEOUT_MS", "-5")

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig().TaskTimeout(TaskCalorieEstimate), cfg.TaskTimeout(TaskCalorieEstimate))
}
