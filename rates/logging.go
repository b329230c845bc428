package rates

import (
	"context"
	"github.com/go-kit/log"
	"go-money-expression"
	"time"
)

// loggingService decorates a rates.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Rates(ctx context.Context) (rates []money.Rate, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "rates",
			"count", len(rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rates(ctx)
}
