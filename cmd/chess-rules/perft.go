package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// runPerft prints the per-move node counts below pos and their total.
func runPerft(ctx context.Context, w io.Writer, pos *chess.Position, turn chess.Colour, depth int, opts ...worker.PoolOption) (uint64, error) {
	start := time.Now()
	results, total, err := worker.Divide(ctx, pos, turn, depth, opts...)
	if err != nil {
		return 0, fmt.Errorf("perft interrupted after %d root moves: %w", len(results), err)
	}
	elapsed := time.Since(start)

	for _, r := range results {
		fmt.Fprintf(w, "%s: %d\n", r.Move, r.Nodes)
	}
	fmt.Fprintf(w, "\nDepth %d: %d nodes in %s\n", depth, total, elapsed.Round(time.Millisecond))
	return total, nil
}
