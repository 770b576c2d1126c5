package retriever

import (
	"context"
	"fmt"

	"immi-assistant-be/internal/pkg/logger"
	"immi-assistant-be/pkg/embedding"
	"immi-assistant-be/pkg/vectorstore"
)

// Passage is one retrieved chunk with its relevance score.
type Passage struct {
	Text  string
	Score float64
}

// Retriever embeds a question and runs the nearest-neighbor query.
// Matches are returned in index order: no re-ranking, no deduplication,
// no score thresholding.
type Retriever struct {
	embeddingProvider embedding.EmbeddingProvider
	store             vectorstore.VectorStore
	topK              int
	log               logger.ILogger
}

func NewRetriever(
	embeddingProvider embedding.EmbeddingProvider,
	store vectorstore.VectorStore,
	topK int,
	log logger.ILogger,
) *Retriever {
	if topK <= 0 {
		topK = 3
	}
	return &Retriever{
		embeddingProvider: embeddingProvider,
		store:             store,
		topK:              topK,
		log:               log,
	}
}

func (r *Retriever) GetRelevantPassages(ctx context.Context, question string) ([]Passage, error) {
	vector, err := r.embeddingProvider.Generate(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	matches, err := r.store.Query(ctx, vector, r.topK)
	if err != nil {
		return nil, fmt.Errorf("vector query failed: %w", err)
	}

	passages := make([]Passage, 0, len(matches))
	for _, m := range matches {
		passages = append(passages, Passage{
			Text:  m.Text(),
			Score: m.Score,
		})
	}

	r.log.Debug("retriever", "retrieved passages", map[string]interface{}{
		"count": len(passages),
	})

	return passages, nil
}
