package worker

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

func echoProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Name: item.Name, Index: item.Index, Output: []byte(item.Name)}
	}
}

func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Name: item.Name, Index: item.Index}
	}
}

func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Name: fmt.Sprintf("game%d.txt", i), Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestPoolCollectOrdersByIndex(t *testing.T) {
	delayed := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return echoProcessFunc()(item)
	}

	pool := NewPool(delayed, WithWorkers(4), WithBufferSize(20))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Name: fmt.Sprintf("s%d", i), Index: i})
	}
	go pool.Close()

	results := pool.Collect()
	if len(results) != numItems {
		t.Fatalf("Collect() returned %d results; want %d", len(results), numItems)
	}
	for i, r := range results {
		if r.Index != i || string(r.Output) != fmt.Sprintf("s%d", i) {
			t.Errorf("results[%d] = {%d %q}; want index %d", i, r.Index, r.Output, i)
		}
	}
}

func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(echoProcessFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

func TestPoolStopSkipsQueued(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(1), WithBufferSize(5))
	pool.Stop()
	pool.Start()

	for i := 0; i < 5; i++ {
		pool.Submit(WorkItem{Index: i})
	}
	go pool.Close()

	if got := collectResults(pool); got != 0 {
		t.Errorf("results after Stop = %d; want 0", got)
	}
	if got := atomic.LoadInt32(&processed); got != 0 {
		t.Errorf("processed after Stop = %d; want 0", got)
	}
}

func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(echoProcessFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}
