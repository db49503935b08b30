package worker

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func indexOnly(item WorkItem) ProcessResult {
	return ProcessResult{Index: item.Index, Move: item.Move, Nodes: uint64(item.Depth)}
}

func collect(p *Pool) []ProcessResult {
	var results []ProcessResult
	for r := range p.Results() {
		results = append(results, r)
	}
	return results
}

func TestPoolBasic(t *testing.T) {
	pool := NewPool(indexOnly, WithWorkers(4), WithBufferSize(10))
	pool.Start(context.Background())

	go func() {
		for i := 0; i < 5; i++ {
			pool.Submit(WorkItem{Index: i, Depth: i * 10})
		}
		pool.Close()
	}()

	results := collect(pool)
	if len(results) != 5 {
		t.Fatalf("got %d results, want 5", len(results))
	}
	for _, r := range results {
		if r.Nodes != uint64(r.Index*10) {
			t.Errorf("result %d: nodes = %d, want %d", r.Index, r.Nodes, r.Index*10)
		}
	}
}

func TestPoolResultsCoverEveryIndex(t *testing.T) {
	const n = 100
	pool := NewPool(indexOnly, WithWorkers(8), WithBufferSize(4))
	pool.Start(context.Background())

	go func() {
		for i := 0; i < n; i++ {
			pool.Submit(WorkItem{Index: i})
		}
		pool.Close()
	}()

	var indices []int
	for _, r := range collect(pool) {
		indices = append(indices, r.Index)
	}
	sort.Ints(indices)

	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	testutil.AssertEqual(t, indices, want)
}

func TestPoolStopSkipsQueuedItems(t *testing.T) {
	var mu sync.Mutex
	processed := 0
	release := make(chan struct{})

	pool := NewPool(func(item WorkItem) ProcessResult {
		<-release
		mu.Lock()
		processed++
		mu.Unlock()
		return ProcessResult{Index: item.Index}
	}, WithWorkers(1), WithBufferSize(20))
	pool.Start(context.Background())

	for i := 0; i < 10; i++ {
		pool.Submit(WorkItem{Index: i})
	}
	pool.Stop()
	close(release)
	pool.Close()
	collect(pool)

	mu.Lock()
	defer mu.Unlock()
	// The worker may already hold the first item when Stop lands.
	if processed > 1 {
		t.Errorf("processed %d items after Stop, want at most 1", processed)
	}
}

func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(indexOnly)
	testutil.AssertFalse(t, pool.IsStopped(), "new pool")
	pool.Stop()
	testutil.AssertTrue(t, pool.IsStopped(), "after Stop")
}

func TestPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 64},
		{"workers", []PoolOption{WithWorkers(6)}, 6, 64},
		{"buffer", []PoolOption{WithBufferSize(3)}, 1, 3},
		{"zero ignored", []PoolOption{WithWorkers(0), WithBufferSize(0)}, 1, 64},
		{"negative ignored", []PoolOption{WithWorkers(-2)}, 1, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(indexOnly, tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if cap(pool.work) != tt.wantBuffer {
				t.Errorf("buffer = %d, want %d", cap(pool.work), tt.wantBuffer)
			}
		})
	}
}

func TestDivideMatchesSequential(t *testing.T) {
	pos := chess.StandardPosition()

	want := engine.Divide(pos, chess.White, 3)
	got, total, err := Divide(context.Background(), pos, chess.White, 3, WithWorkers(4))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, got, want)
	if total != 8902 {
		t.Errorf("total = %d, want 8902", total)
	}
}

func TestDivideKiwipete(t *testing.T) {
	pos := testutil.Diagram(t,
		"r...k..r",
		"p.ppqpb.",
		"bn..pnp.",
		"...PN...",
		".p..P...",
		"..N..Q.p",
		"PPPBBPPP",
		"R...K..R")
	pos.Castling = chess.AllCastling

	results, total, err := Divide(context.Background(), pos, chess.White, 2, WithWorkers(3))
	testutil.AssertNoError(t, err)
	if len(results) != 48 {
		t.Errorf("got %d root moves, want 48", len(results))
	}
	if total != 2039 {
		t.Errorf("total = %d, want 2039", total)
	}
}

func TestDivideLeavesPositionUntouched(t *testing.T) {
	pos := chess.StandardPosition()
	before := pos.Copy()

	if _, _, err := Divide(context.Background(), pos, chess.White, 2, WithWorkers(2)); err != nil {
		t.Fatalf("Divide: %v", err)
	}
	testutil.AssertEqual(t, pos, before)
}

func TestDivideDepthZero(t *testing.T) {
	results, total, err := Divide(context.Background(), chess.StandardPosition(), chess.White, 0)
	if results != nil || total != 1 || err != nil {
		t.Errorf("Divide(depth 0) = %v, %d, %v; want nil, 1, nil", results, total, err)
	}
}

func TestPoolStopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(indexOnly)
	pool.Start(ctx)

	cancel()
	// AfterFunc runs in its own goroutine; Close waits for the workers only.
	for !pool.IsStopped() {
		runtime.Gosched()
	}
	pool.Close()
}

func TestDivideCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, _, err := Divide(ctx, chess.StandardPosition(), chess.White, 3)
	// Workers may count a few root moves before the stop lands.
	if err == nil {
		if len(results) != 20 {
			t.Fatalf("no error but only %d of 20 root moves counted", len(results))
		}
		return
	}
	testutil.AssertErrorIs(t, err, context.Canceled)
	if len(results) >= 20 {
		t.Errorf("cancelled Divide counted all %d root moves", len(results))
	}
}
