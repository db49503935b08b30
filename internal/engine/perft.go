package engine

import (
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree of the given depth,
// with colour to move at the root. It is the standard check that move
// generation agrees with published counts.
func Perft(pos *chess.Position, colour chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	var nodes uint64
	eachLegalMove(pos, colour, func(m chess.Move) bool {
		if depth == 1 {
			nodes++
			return true
		}
		child := pos.Copy()
		Apply(child, m)
		nodes += Perft(child, colour.Opposite(), depth-1)
		return true
	})
	return nodes
}

// DivideResult is the node count below one root move.
type DivideResult struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs Perft below each root move separately, sorted by move text.
func Divide(pos *chess.Position, colour chess.Colour, depth int) []DivideResult {
	var results []DivideResult
	for _, m := range LegalMoves(pos, colour) {
		child := pos.Copy()
		Apply(child, m)
		results = append(results, DivideResult{Move: m, Nodes: Perft(child, colour.Opposite(), depth-1)})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Move.String() < results[j].Move.String()
	})
	return results
}
