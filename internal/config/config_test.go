package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "visaindex", cfg.Pinecone.IndexName)
	assert.Equal(t, "us-east-1", cfg.Pinecone.Environment)
	assert.Equal(t, "text-embedding-ada-002", cfg.Ai.EmbeddingModel)
	assert.Equal(t, "gpt-4-turbo-preview", cfg.Ai.LLMModel)
	assert.Equal(t, 0.7, cfg.Ai.Temperature)
	assert.Equal(t, 1000, cfg.Ai.MaxTokens)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
	assert.Equal(t, "none", cfg.Cache.Provider)
	assert.Equal(t, 24, cfg.Cache.TTLHours)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PINECONE_API_KEY", "pc-test")
	t.Setenv("PINECONE_INDEX_HOST", "https://visaindex-abc123.svc.us-east-1.pinecone.io")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://immi.example.com")
	t.Setenv("RETRIEVAL_TOP_K", "5")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("CACHE_PROVIDER", "memory")

	cfg := Load()

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "sk-test", cfg.Keys.OpenAI)
	assert.Equal(t, "pc-test", cfg.Keys.Pinecone)
	assert.Equal(t, "https://visaindex-abc123.svc.us-east-1.pinecone.io", cfg.Pinecone.IndexHost)
	assert.Equal(t, "https://immi.example.com", cfg.App.CorsAllowedOrigins)
	assert.Equal(t, 5, cfg.Retrieval.TopK)
	assert.Equal(t, 0.2, cfg.Ai.Temperature)
	assert.Equal(t, "memory", cfg.Cache.Provider)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("RETRIEVAL_TOP_K", "three")
	t.Setenv("LLM_TEMPERATURE", "warm")

	cfg := Load()

	assert.Equal(t, 3, cfg.Retrieval.TopK)
	assert.Equal(t, 0.7, cfg.Ai.Temperature)
}
