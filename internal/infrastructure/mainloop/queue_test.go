package mainloop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_RunPendingPreservesOrder(t *testing.T) {
	q := NewQueue()
	var got []int
	for i := 0; i < 5; i++ {
		v := i
		q.Post(func() { got = append(got, v) })
	}

	n := q.RunPending()

	assert.Equal(t, 5, n)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_RunPendingRunsNestedPosts(t *testing.T) {
	q := NewQueue()
	var got []string
	q.Post(func() {
		got = append(got, "outer")
		q.Post(func() { got = append(got, "inner") })
	})

	q.RunPending()

	assert.Equal(t, []string{"outer", "inner"}, got)
}

func TestQueue_PanickingTaskDoesNotStopQueue(t *testing.T) {
	q := NewQueue()
	ran := false
	q.Post(func() { panic("boom") })
	q.Post(func() { ran = true })

	require.NotPanics(t, func() { q.RunPending() })
	assert.True(t, ran)
}

func TestQueue_PostAfterCloseIsDropped(t *testing.T) {
	q := NewQueue()
	q.Post(func() {})
	q.Close()
	q.Post(func() { t.Fatal("task ran after close") })

	assert.Equal(t, 0, q.RunPending())
}

func TestQueue_RunServesPostsFromOtherGoroutines(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var mu sync.Mutex
	count := 0
	done := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Post(func() {
				mu.Lock()
				count++
				if count == 10 {
					close(done)
				}
				mu.Unlock()
			})
		}()
	}

	go func() {
		<-done
		q.Close()
	}()

	err := q.Run(ctx)
	wg.Wait()

	require.NoError(t, err)
	assert.Equal(t, 10, count)
}
