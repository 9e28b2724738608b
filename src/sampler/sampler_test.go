package sampler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFields(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	s := Collect(now)
	assert.Equal(t, "2025-08-30T12:00:00Z", s.Time)
	assert.Positive(t, s.Alloc)
	assert.Positive(t, s.HeapAlloc)
	assert.GreaterOrEqual(t, s.NumGoroutine, 1)
	assert.GreaterOrEqual(t, s.Sys, s.HeapSys)
}

func TestSamplerCollectsOnInterval(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	s := New(20 * time.Millisecond)
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	<-done

	samples := s.Samples()
	require.GreaterOrEqual(t, len(samples), 2, "expected at least two ticks")
	for _, sm := range samples {
		_, err := time.Parse(time.RFC3339, sm.Time)
		require.NoError(t, err)
	}
}

func TestSamplesReturnsACopy(t *testing.T) {
	s := New(time.Second)
	s.samples = append(s.samples, Collect(time.Now()))
	got := s.Samples()
	require.Len(t, got, 1)
	got[0].NumGoroutine = -1
	assert.NotEqual(t, -1, s.samples[0].NumGoroutine)
}

func TestChurnStopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	start := time.Now()
	require.NoError(t, Churn(ctx, 2, 16))
	assert.Less(t, time.Since(start), 2*time.Second, "workers must exit promptly after cancellation")
}
