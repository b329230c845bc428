package reduce

import (
	"bytes"
	"context"
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-money-expression"
	"go-money-expression/rates"
	"testing"
)

func TestLoggingService_Reduce(t *testing.T) {
	var buf bytes.Buffer
	s := NewLoggingService(log.NewLogfmtLogger(&buf), NewService(rates.NewStaticService(), false))

	got, err := s.Reduce(context.Background(), money.NewDollar(3).Plus(money.NewDollar(4)), money.USD)

	require.NoError(t, err)
	assert.Equal(t, money.NewDollar(7), got)
	assert.Contains(t, buf.String(), "method=reduce")
	assert.Contains(t, buf.String(), `expression="(3 USD + 4 USD)"`)
	assert.Contains(t, buf.String(), `result="7 USD"`)
}

func TestInstrumentingService(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewInstrumentingService(reg, NewService(rates.NewStaticService(), true))
	is := s.(*instrumentingService)

	_, err := s.Reduce(context.Background(), money.NewDollar(1), money.USD)
	require.NoError(t, err)
	_, err = s.Rate(context.Background(), money.USD, money.CHF)
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(is.requestCount.WithLabelValues("reduce", "false")))
	assert.Equal(t, float64(1), testutil.ToFloat64(is.requestCount.WithLabelValues("rate", "true")))
}
