package cache

import (
	"context"
	"encoding/json"
	"time"

	"immi-assistant-be/internal/dto"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisCache) Get(ctx context.Context, question string) (*dto.ChatResponse, bool) {
	raw, err := r.client.Get(ctx, "answer:"+Key(question)).Bytes()
	if err != nil {
		return nil, false
	}

	var response dto.ChatResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, false
	}
	return &response, true
}

func (r *RedisCache) Set(ctx context.Context, question string, response *dto.ChatResponse) {
	raw, err := json.Marshal(response)
	if err != nil {
		return
	}
	r.client.Set(ctx, "answer:"+Key(question), raw, r.ttl)
}
