package rates

import (
	"context"
	"fmt"
	"github.com/go-kit/log"
	"go-money-expression"
	"sync"
	"time"
)

// cachingService decorates a rates.Service with a cache of the rate table.
// The cachingService is concurrency safe and will periodically refresh the cached table.
type cachingService struct {
	// next the service being decorated with a cache
	next Service

	// lifetime bounds the periodic refresh; the cache is dropped when it is done
	lifetime context.Context

	// cache the cached table, nil until seeded
	cache []money.Rate

	// updateFrequency how often to refresh the cached table
	updateFrequency time.Duration

	// lock synchronizes access to cache to make it concurrency safe
	lock sync.RWMutex

	logger log.Logger
}

// NewCachingService returns a new caching Service. Periodic refreshes stop
// once lifetime is done.
func NewCachingService(lifetime context.Context, updateFrequency time.Duration, logger log.Logger, s Service) Service {
	return &cachingService{
		next:            s,
		lifetime:        lifetime,
		updateFrequency: updateFrequency,
		lock:            sync.RWMutex{},
		logger:          logger,
	}
}

// Rates returns the cached table, seeding it on first use
func (s *cachingService) Rates(ctx context.Context) ([]money.Rate, error) {
	s.lock.RLock()
	rates := s.cache
	s.lock.RUnlock()

	if rates == nil {
		// Concurrent first calls may all seed; only the first one to store
		// the table starts the refresher.
		rates, firstTime, err := s.refreshNow(ctx)
		if err != nil {
			return nil, fmt.Errorf("seeding rates cache: %w", err)
		}
		if firstTime {
			go s.refreshPeriodically()
		}
		return rates, nil
	}

	return rates, nil
}

// refreshNow refreshes the cached table immediately
func (s *cachingService) refreshNow(ctx context.Context) ([]money.Rate, bool, error) {
	rates, err := s.next.Rates(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("refresh: %w", err)
	}
	if rates == nil {
		rates = []money.Rate{}
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	firstTime := s.cache == nil
	s.cache = rates
	return rates, firstTime, nil
}

// refreshPeriodically refreshes the cached table on a given schedule.
// This is expected to be called from a go-routine.
func (s *cachingService) refreshPeriodically() {
	for {
		select {
		case <-time.After(s.updateFrequency):
			_, _, err := s.refreshNow(s.lifetime)
			if err != nil {
				// Don't return, just log and hope this is a transient error
				s.logger.Log("msg", "periodic refresh failed", "error", err)
			}
		case <-s.lifetime.Done():
			s.uncache()
			return
		}
	}
}

// uncache safely drops the cached table
func (s *cachingService) uncache() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.cache = nil
}
