package bootstrap

import (
	"context"
	"log"
	"time"

	"immi-assistant-be/internal/config"
	"immi-assistant-be/internal/controller"
	"immi-assistant-be/internal/pkg/logger"
	"immi-assistant-be/internal/service"
	"immi-assistant-be/pkg/cache"
	"immi-assistant-be/pkg/embedding"
	"immi-assistant-be/pkg/llm/openai"
	"immi-assistant-be/pkg/metrics"
	"immi-assistant-be/pkg/rag/generator"
	"immi-assistant-be/pkg/rag/retriever"
	"immi-assistant-be/pkg/vectorstore/pinecone"

	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ChatController   controller.IChatController
	HealthController controller.IHealthController

	// Shared infrastructure
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Upstream providers
	embeddingProvider := embedding.NewOpenAIProvider(cfg.Keys.OpenAI, "", cfg.Ai.EmbeddingModel)
	llmProvider := openai.NewOpenAIProvider(cfg.Keys.OpenAI, "", cfg.Ai.LLMModel)
	vectorStore := pinecone.NewStore(pinecone.Config{
		Host:   cfg.Pinecone.IndexHost,
		APIKey: cfg.Keys.Pinecone,
	})
	log.Printf("[INFO] Using vector index: %s (%s)", cfg.Pinecone.IndexName, cfg.Pinecone.Environment)

	// 3. Answer cache, selected by config. "none" keeps requests fully
	// stateless, which is the default behavior.
	var answerCache cache.AnswerCache
	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
	switch cfg.Cache.Provider {
	case "memory":
		answerCache = cache.NewMemoryCache(ttl)
		log.Printf("[INFO] Using answer cache: MEMORY (ttl %s)", ttl)
	case "redis":
		opt, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.Cache.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		answerCache = cache.NewRedisCache(rdb, ttl)
		log.Printf("[INFO] Using answer cache: REDIS (ttl %s)", ttl)
	default:
		log.Printf("[INFO] Answer cache disabled")
	}

	// 4. RAG pipeline
	tracker := metrics.NewTracker()
	ret := retriever.NewRetriever(embeddingProvider, vectorStore, cfg.Retrieval.TopK, sysLogger)
	gen := generator.NewGenerator(llmProvider, cfg.Ai.Temperature, cfg.Ai.MaxTokens, sysLogger)

	chatService := service.NewChatService(ret, gen, answerCache, tracker, sysLogger)

	return &Container{
		ChatController:   controller.NewChatController(chatService, tracker),
		HealthController: controller.NewHealthController(),
		Logger:           sysLogger,
	}
}
