package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoller(t *testing.T) {
	t.Run("runs until stopped", func(t *testing.T) {
		var calls atomic.Int32
		p := NewPoller("test", 10*time.Millisecond, func(ctx context.Context) error {
			calls.Add(1)
			return nil
		})

		done := make(chan struct{})
		go func() {
			p.Start(context.Background())
			close(done)
		}()

		require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
		p.Stop()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("poller did not stop")
		}
	})
	t.Run("errors do not stop polling", func(t *testing.T) {
		var calls atomic.Int32
		p := NewPoller("test", 10*time.Millisecond, func(ctx context.Context) error {
			calls.Add(1)
			return errors.New("boom")
		})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			p.Start(ctx)
			close(done)
		}()

		require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
		cancel()
		<-done
		assert.GreaterOrEqual(t, calls.Load(), int32(3))
	})
}
