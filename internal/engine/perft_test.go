package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// kiwipete is the well-known perft position that exercises castling, en
// passant and promotion together.
func kiwipete(t *testing.T) *chess.Position {
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
	return pos
}

// endgame is a sparse position rich in en passant pins.
func endgame(t *testing.T) *chess.Position {
	return testutil.Diagram(t,
		empty,
		"..p.....",
		"...p....",
		"KP.....r",
		".R...p.k",
		empty,
		"....P.P.",
		empty)
}

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		pos   func(t *testing.T) *chess.Position
		depth int
		want  uint64
	}{
		{"start depth 0", func(*testing.T) *chess.Position { return chess.StandardPosition() }, 0, 1},
		{"start depth 1", func(*testing.T) *chess.Position { return chess.StandardPosition() }, 1, 20},
		{"start depth 2", func(*testing.T) *chess.Position { return chess.StandardPosition() }, 2, 400},
		{"start depth 3", func(*testing.T) *chess.Position { return chess.StandardPosition() }, 3, 8902},
		{"kiwipete depth 1", kiwipete, 1, 48},
		{"kiwipete depth 2", kiwipete, 2, 2039},
		{"endgame depth 1", endgame, 1, 14},
		{"endgame depth 2", endgame, 2, 191},
		{"endgame depth 3", endgame, 3, 2812},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.depth >= 3 && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			got := Perft(tt.pos(t), chess.White, tt.depth)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	pos := kiwipete(t)
	results := Divide(pos, chess.White, 2)
	testutil.AssertEqual(t, len(results), 48)

	var total uint64
	for i, r := range results {
		total += r.Nodes
		if i > 0 && results[i-1].Move.String() > r.Move.String() {
			t.Errorf("results not sorted: %s before %s", results[i-1].Move, r.Move)
		}
	}
	testutil.AssertEqual(t, total, uint64(2039))
}

func TestPerftLeavesPositionUntouched(t *testing.T) {
	pos := kiwipete(t)
	before := pos.Copy()
	Perft(pos, chess.White, 2)
	testutil.AssertEqual(t, pos, before)
}
