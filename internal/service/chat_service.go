package service

import (
	"context"
	"time"

	"immi-assistant-be/internal/constant"
	"immi-assistant-be/internal/dto"
	"immi-assistant-be/internal/pkg/logger"
	"immi-assistant-be/pkg/cache"
	"immi-assistant-be/pkg/guardrails"
	"immi-assistant-be/pkg/metrics"
	"immi-assistant-be/pkg/rag/generator"
	"immi-assistant-be/pkg/rag/retriever"
)

// IChatService defines the chat orchestration interface
type IChatService interface {
	Ask(ctx context.Context, request *dto.AskRequest) (*dto.ChatResponse, error)
}

// chatService runs the request pipeline: guardrails, optional cache lookup,
// retrieval, generation. Each request stands alone; nothing is shared across
// requests except the optional answer cache.
type chatService struct {
	retriever   *retriever.Retriever
	generator   *generator.Generator
	classifier  *guardrails.Classifier
	answerCache cache.AnswerCache // nil when caching is disabled
	tracker     *metrics.Tracker
	log         logger.ILogger
}

func NewChatService(
	ret *retriever.Retriever,
	gen *generator.Generator,
	answerCache cache.AnswerCache,
	tracker *metrics.Tracker,
	log logger.ILogger,
) IChatService {
	return &chatService{
		retriever:   ret,
		generator:   gen,
		classifier:  guardrails.NewClassifier(),
		answerCache: answerCache,
		tracker:     tracker,
		log:         log,
	}
}

func (s *chatService) Ask(ctx context.Context, request *dto.AskRequest) (*dto.ChatResponse, error) {
	start := time.Now()
	question := request.Question

	s.log.Info("chat", "question received", map[string]interface{}{
		"question": guardrails.MaskPII(question),
	})

	// Greetings and clearly unrelated questions are answered without touching
	// any upstream service.
	switch s.classifier.Classify(question) {
	case guardrails.KindGreeting:
		s.tracker.TrackQuery(time.Since(start), false, "")
		return dto.NewChatResponse(constant.GreetingOverview, nil), nil
	case guardrails.KindOffTopic:
		s.tracker.TrackQuery(time.Since(start), false, "")
		return dto.NewChatResponse(constant.OffTopicOverview, nil), nil
	}

	if s.answerCache != nil {
		if cached, found := s.answerCache.Get(ctx, question); found {
			s.log.Info("chat", "answer served from cache", nil)
			s.tracker.TrackQuery(time.Since(start), true, "")
			return cached, nil
		}
	}

	passages, err := s.retriever.GetRelevantPassages(ctx, question)
	if err != nil {
		s.log.Error("chat", "retrieval failed", map[string]interface{}{
			"error": err.Error(),
		})
		s.tracker.TrackQuery(time.Since(start), false, "upstream")
		return nil, err
	}

	response, err := s.generator.GenerateAnswer(ctx, question, passages)
	if err != nil {
		s.log.Error("chat", "generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		s.tracker.TrackQuery(time.Since(start), false, "upstream")
		return nil, err
	}

	if s.answerCache != nil {
		s.answerCache.Set(ctx, question, response)
	}

	s.tracker.TrackQuery(time.Since(start), false, "")
	return response, nil
}
