package cache

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"

	"immi-assistant-be/internal/dto"
)

// AnswerCache stores full response envelopes keyed by the asked question.
// Entries expire after the configured TTL; there is no other invalidation.
type AnswerCache interface {
	Get(ctx context.Context, question string) (*dto.ChatResponse, bool)
	Set(ctx context.Context, question string, response *dto.ChatResponse)
}

// Key hashes the normalized question so casing and padding do not fragment
// the cache.
func Key(question string) string {
	normalized := strings.ToLower(strings.TrimSpace(question))
	return fmt.Sprintf("%x", md5.Sum([]byte(normalized)))
}
