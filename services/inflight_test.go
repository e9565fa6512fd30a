package services

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInflightGuard(t *testing.T) {
	t.Run("Second Begin is refused until End", func(t *testing.T) {
		g := NewInflightGuard(time.Minute)

		assert.NoError(t, g.Begin("form-1"))
		assert.True(t, g.Sending("form-1"))
		assert.ErrorIs(t, g.Begin("form-1"), ErrSubmissionInFlight)
		assert.NoError(t, g.Begin("form-2"))

		g.End("form-1")
		assert.False(t, g.Sending("form-1"))
		assert.NoError(t, g.Begin("form-1"))
	})

	t.Run("Empty id is never tracked", func(t *testing.T) {
		g := NewInflightGuard(time.Minute)
		assert.NoError(t, g.Begin(""))
		assert.NoError(t, g.Begin(""))
		g.End("")
	})

	t.Run("Entries expire", func(t *testing.T) {
		g := NewInflightGuard(10 * time.Millisecond)
		assert.NoError(t, g.Begin("form-1"))
		time.Sleep(30 * time.Millisecond)
		assert.NoError(t, g.Begin("form-1"))
	})

	t.Run("Concurrent Begin admits one", func(t *testing.T) {
		g := NewInflightGuard(time.Minute)
		var admitted int32
		var wg sync.WaitGroup
		for i := 0; i < 25; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if g.Begin("form-1") == nil {
					atomic.AddInt32(&admitted, 1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), admitted)
	})
}
