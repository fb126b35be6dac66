package footfall

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-store rate limiters: store_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(storeID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[storeID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[storeID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(storeID string, storeRate rate.Limit, storeBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[storeID] = rate.NewLimiter(storeRate, storeBurst)
}
