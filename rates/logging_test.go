package rates

import (
	"bytes"
	"context"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-money-expression"
	"testing"
)

func TestLoggingService_Rates(t *testing.T) {
	var buf bytes.Buffer
	s := NewLoggingService(log.NewLogfmtLogger(&buf), NewStaticService(
		money.Rate{From: money.CHF, To: money.USD, Rate: 2},
	))

	rates, err := s.Rates(context.Background())

	require.NoError(t, err)
	assert.Len(t, rates, 1)
	assert.Contains(t, buf.String(), "method=rates")
	assert.Contains(t, buf.String(), "count=1")
}
