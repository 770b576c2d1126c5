package generator

import (
	"context"
	"fmt"

	"immi-assistant-be/internal/dto"
	"immi-assistant-be/internal/pkg/logger"
	"immi-assistant-be/pkg/llm"
	"immi-assistant-be/pkg/rag/prompt"
	"immi-assistant-be/pkg/rag/retriever"
)

// Generator turns retrieved passages plus the user question into the final
// response envelope via the completion model.
type Generator struct {
	llmProvider llm.LLMProvider
	temperature float64
	maxTokens   int
	log         logger.ILogger
}

func NewGenerator(llmProvider llm.LLMProvider, temperature float64, maxTokens int, log logger.ILogger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		temperature: temperature,
		maxTokens:   maxTokens,
		log:         log,
	}
}

func (g *Generator) GenerateAnswer(ctx context.Context, question string, passages []retriever.Passage) (*dto.ChatResponse, error) {
	messages := prompt.NewBuilder(passages, question).Build()

	answer, err := g.llmProvider.Chat(
		ctx,
		messages,
		llm.WithTemperature(g.temperature),
		llm.WithMaxTokens(g.maxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	sources := make([]dto.Source, 0, len(passages))
	for _, p := range passages {
		sources = append(sources, dto.Source{RelevanceScore: p.Score})
	}

	g.log.Debug("generator", "answer generated", map[string]interface{}{
		"sources": len(sources),
	})

	return dto.NewChatResponse(answer, sources), nil
}
