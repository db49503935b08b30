package worker

import (
	"context"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// countSubtree plays the root move on the item's own position and counts
// the legal move tree beneath it.
func countSubtree(item WorkItem) ProcessResult {
	engine.Apply(item.Position, item.Move)
	return ProcessResult{
		Index: item.Index,
		Move:  item.Move,
		Nodes: engine.Perft(item.Position, item.Turn.Opposite(), item.Depth),
	}
}

// Divide counts the legal move tree of the given depth below each root
// move of pos, one root move per work item. Results are sorted by move
// text and the total is returned alongside. pos is not modified.
//
// If ctx is cancelled before every root move is counted, Divide returns
// ctx.Err() and the partial results gathered so far.
func Divide(ctx context.Context, pos *chess.Position, colour chess.Colour, depth int, opts ...PoolOption) ([]engine.DivideResult, uint64, error) {
	if depth < 1 {
		return nil, 1, nil
	}

	moves := engine.LegalMoves(pos, colour)
	pool := NewPool(countSubtree, opts...)
	pool.Start(ctx)

	go func() {
		for i, m := range moves {
			pool.Submit(WorkItem{
				Index:    i,
				Position: pos.Copy(),
				Turn:     colour,
				Move:     m,
				Depth:    depth - 1,
			})
		}
		pool.Close()
	}()

	results := make([]engine.DivideResult, 0, len(moves))
	var total uint64
	for r := range pool.Results() {
		results = append(results, engine.DivideResult{Move: r.Move, Nodes: r.Nodes})
		total += r.Nodes
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Move.String() < results[j].Move.String()
	})
	if len(results) < len(moves) {
		return results, total, ctx.Err()
	}
	return results, total, nil
}
