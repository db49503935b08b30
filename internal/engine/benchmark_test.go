package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// benchPositions builds the positions the benchmarks run over.
func benchPositions(b *testing.B) map[string]*chess.Position {
	b.Helper()
	complexPos := testutil.Diagram(b,
		"r...k..r",
		"p.ppqpb.",
		"bn..pnp.",
		"...PN...",
		".p..P...",
		"..N..Q.p",
		"PPPBBPPP",
		"R...K..R")
	complexPos.Castling = chess.AllCastling

	return map[string]*chess.Position{
		"Initial": chess.StandardPosition(),
		"Complex": complexPos,
		"Endgame": testutil.Diagram(b,
			empty,
			"..p.....",
			"...p....",
			"KP.....r",
			".R...p.k",
			empty,
			"....P.P.",
			empty),
	}
}

func BenchmarkLegalShape(b *testing.B) {
	pos := chess.StandardPosition()
	from, to := chess.Sq(6, 0), chess.Sq(5, 2)
	for i := 0; i < b.N; i++ {
		LegalShape(&pos.Board, from, to)
	}
}

func BenchmarkApply(b *testing.B) {
	pos := chess.StandardPosition()
	move := chess.Move{From: chess.Sq(4, 1), To: chess.Sq(4, 3), Kind: chess.DoublePawnPush}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Apply(pos.Copy(), move)
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	for name, pos := range benchPositions(b) {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				IsInCheck(&pos.Board, chess.White)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, pos := range benchPositions(b) {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				LegalMoves(pos, chess.White)
			}
		})
	}
}

func BenchmarkHasAnyLegalMove(b *testing.B) {
	for name, pos := range benchPositions(b) {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				HasAnyLegalMove(pos, chess.White)
			}
		})
	}
}

func BenchmarkPerft3(b *testing.B) {
	pos := chess.StandardPosition()
	for i := 0; i < b.N; i++ {
		Perft(pos, chess.White, 3)
	}
}
