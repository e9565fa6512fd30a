package services

import (
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateChallenge(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		ch := GenerateChallenge()

		assert.GreaterOrEqual(t, ch.A, 2)
		assert.LessOrEqual(t, ch.A, 9)
		assert.GreaterOrEqual(t, ch.B, 2)
		assert.LessOrEqual(t, ch.B, 9)
		assert.Equal(t, strconv.Itoa(ch.A+ch.B), ch.Answer)
		assert.Equal(t, fmt.Sprintf("What is %d + %d?", ch.A, ch.B), ch.Question)
		assert.NotEmpty(t, ch.ID)
		assert.False(t, seen[ch.ID], "challenge IDs must not repeat")
		seen[ch.ID] = true
	}
}

func TestChallengeStore(t *testing.T) {
	t.Run("Take consumes", func(t *testing.T) {
		store := NewChallengeStore(time.Minute)
		ch := store.Issue()

		peeked, ok := store.Peek(ch.ID)
		require.True(t, ok)
		assert.Equal(t, ch.Answer, peeked.Answer)

		taken, ok := store.Take(ch.ID)
		require.True(t, ok)
		assert.Equal(t, ch, taken)

		_, ok = store.Take(ch.ID)
		assert.False(t, ok)
		_, ok = store.Peek(ch.ID)
		assert.False(t, ok)
	})

	t.Run("Unknown and empty IDs", func(t *testing.T) {
		store := NewChallengeStore(time.Minute)
		_, ok := store.Take("")
		assert.False(t, ok)
		_, ok = store.Take("does-not-exist")
		assert.False(t, ok)
	})

	t.Run("Expired challenges cannot be answered", func(t *testing.T) {
		store := NewChallengeStore(10 * time.Millisecond)
		ch := store.Issue()
		time.Sleep(30 * time.Millisecond)

		_, ok := store.Take(ch.ID)
		assert.False(t, ok)
	})

	t.Run("Concurrent Take succeeds once", func(t *testing.T) {
		store := NewChallengeStore(time.Minute)
		ch := store.Issue()

		var wg sync.WaitGroup
		var mu sync.Mutex
		wins := 0
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, ok := store.Take(ch.ID); ok {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, wins)
	})
}
