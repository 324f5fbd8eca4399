package pacing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSleep_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Sleep(ctx, time.Hour)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSleep_Elapses(t *testing.T) {
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))
	assert.NoError(t, Sleep(context.Background(), 0))
}

func TestUniform_Bounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		d := Uniform(500*time.Millisecond, 1500*time.Millisecond)
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
	assert.Equal(t, time.Second, Uniform(time.Second, time.Second))
	assert.Equal(t, time.Second, Uniform(time.Second, 0))
}

func TestPageDelay_GrowsWithPage(t *testing.T) {
	base := time.Second
	for i := 0; i < 200; i++ {
		d := PageDelay(base, 50)
		assert.GreaterOrEqual(t, d, 1500*time.Millisecond)
		assert.LessOrEqual(t, d, 2250*time.Millisecond)
	}
}
