package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQueueEnqueueBeforeStart(t *testing.T) {
	q := NewQueue("test", func(context.Context, Job) error { return nil }, QueueConfig{})

	err := q.Enqueue(Job{ID: "j1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not started")
}

func TestQueueProcessesJobs(t *testing.T) {
	processed := make(chan Job, 4)
	q := NewQueue("test", func(_ context.Context, job Job) error {
		processed <- job
		return nil
	}, QueueConfig{Workers: 2, Logger: zap.NewNop()})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "j1", Type: "company_generation", Payload: "co-1"}))

	select {
	case job := <-processed:
		assert.Equal(t, "j1", job.ID)
		assert.Equal(t, "co-1", job.Payload)
		assert.False(t, job.Enqueued.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("job was not processed")
	}
}

func TestQueueReportsDepth(t *testing.T) {
	var (
		mu     sync.Mutex
		depths []int
	)
	record := func(depth int) {
		mu.Lock()
		depths = append(depths, depth)
		mu.Unlock()
	}

	entered := make(chan struct{})
	gate := make(chan struct{})
	processed := make(chan string, 4)
	q := NewQueue("test", func(_ context.Context, job Job) error {
		if job.ID == "j1" {
			close(entered)
			<-gate
		}
		processed <- job.ID
		return nil
	}, QueueConfig{Workers: 1, BufferSize: 4, OnDepth: record, Logger: zap.NewNop()})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "j1"}))
	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never picked up the first job")
	}

	// The single worker is parked in the handler, so these land in the buffer.
	require.NoError(t, q.Enqueue(Job{ID: "j2"}))
	require.NoError(t, q.Enqueue(Job{ID: "j3"}))

	mu.Lock()
	last := depths[len(depths)-1]
	mu.Unlock()
	assert.Equal(t, 2, last)

	close(gate)
	for i := 0; i < 3; i++ {
		select {
		case <-processed:
		case <-time.After(2 * time.Second):
			t.Fatal("queue drained too slowly")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, depths[len(depths)-1])
}
