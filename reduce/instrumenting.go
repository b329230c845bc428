package reduce

import (
	"context"
	"github.com/prometheus/client_golang/prometheus"
	"go-money-expression"
	"strconv"
	"time"
)

// instrumentingService decorates a reduce.Service with request metrics
type instrumentingService struct {
	requestCount   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	next           Service
}

// NewInstrumentingService returns a Service recording metrics in reg
func NewInstrumentingService(reg prometheus.Registerer, s Service) Service {
	requestCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "money",
			Subsystem: "reduce",
			Name:      "requests_total",
			Help:      "Number of requests received.",
		},
		[]string{"method", "error"},
	)
	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "money",
			Subsystem: "reduce",
			Name:      "request_duration_seconds",
			Help:      "Request duration in seconds.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "error"},
	)
	reg.MustRegister(requestCount, requestLatency)

	return &instrumentingService{
		requestCount:   requestCount,
		requestLatency: requestLatency,
		next:           s,
	}
}

func (s *instrumentingService) observe(method string, begin time.Time, err error) {
	labels := []string{method, strconv.FormatBool(err != nil)}
	s.requestCount.WithLabelValues(labels...).Inc()
	s.requestLatency.WithLabelValues(labels...).Observe(time.Since(begin).Seconds())
}

func (s *instrumentingService) Reduce(ctx context.Context, expr money.Expression, to money.Currency) (_ money.Money, err error) {
	defer func(begin time.Time) { s.observe("reduce", begin, err) }(time.Now())
	return s.next.Reduce(ctx, expr, to)
}

func (s *instrumentingService) Rate(ctx context.Context, from money.Currency, to money.Currency) (_ int64, err error) {
	defer func(begin time.Time) { s.observe("rate", begin, err) }(time.Now())
	return s.next.Rate(ctx, from, to)
}
