package cache

import (
	"context"
	"time"

	"immi-assistant-be/internal/dto"

	gocache "github.com/patrickmn/go-cache"
)

type MemoryCache struct {
	cache *gocache.Cache
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	c := gocache.New(ttl, 10*time.Minute)
	return &MemoryCache{
		cache: c,
	}
}

func (m *MemoryCache) Get(_ context.Context, question string) (*dto.ChatResponse, bool) {
	if x, found := m.cache.Get(Key(question)); found {
		return x.(*dto.ChatResponse), true
	}
	return nil, false
}

func (m *MemoryCache) Set(_ context.Context, question string, response *dto.ChatResponse) {
	m.cache.Set(Key(question), response, gocache.DefaultExpiration)
}
