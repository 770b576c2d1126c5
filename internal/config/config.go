package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Keys      APIKeys
	Pinecone  PineconeConfig
	Ai        AIConfig
	Retrieval RetrievalConfig
	Cache     CacheConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	WebRoot            string
}

type APIKeys struct {
	OpenAI   string
	Pinecone string
}

type PineconeConfig struct {
	IndexHost   string
	IndexName   string
	Environment string
}

type AIConfig struct {
	EmbeddingModel string
	LLMModel       string
	Temperature    float64
	MaxTokens      int
}

type RetrievalConfig struct {
	TopK int
}

type CacheConfig struct {
	Provider string // "none", "memory" or "redis"
	TTLHours int
	RedisURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			WebRoot:            getEnv("WEB_ROOT", "./web"),
		},
		Keys: APIKeys{
			OpenAI:   getEnv("OPENAI_API_KEY", ""),
			Pinecone: getEnv("PINECONE_API_KEY", ""),
		},
		Pinecone: PineconeConfig{
			IndexHost:   getEnv("PINECONE_INDEX_HOST", ""),
			IndexName:   getEnv("PINECONE_INDEX_NAME", "visaindex"),
			Environment: getEnv("PINECONE_ENVIRONMENT", "us-east-1"),
		},
		Ai: AIConfig{
			EmbeddingModel: getEnv("EMBEDDING_MODEL", "text-embedding-ada-002"),
			LLMModel:       getEnv("LLM_MODEL", "gpt-4-turbo-preview"),
			Temperature:    getEnvAsFloat("LLM_TEMPERATURE", 0.7),
			MaxTokens:      getEnvAsInt("LLM_MAX_TOKENS", 1000),
		},
		Retrieval: RetrievalConfig{
			TopK: getEnvAsInt("RETRIEVAL_TOP_K", 3),
		},
		Cache: CacheConfig{
			Provider: getEnv("CACHE_PROVIDER", "none"),
			TTLHours: getEnvAsInt("CACHE_TTL_HOURS", 24),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
