package hashing

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func BenchmarkPositionKey(b *testing.B) {
	positions := map[string]*chess.Position{
		"Initial": chess.StandardPosition(),
		"Complex": testutil.Diagram(b,
			"r...k..r",
			"p.ppqpb.",
			"bn..pnp.",
			"...PN...",
			".p..P...",
			"..N..Q.p",
			"PPPBBPPP",
			"R...K..R"),
		"Endgame": testutil.Diagram(b,
			empty,
			".....k..",
			empty, empty, empty, empty,
			".....K..",
			"....R..."),
	}

	for name, pos := range positions {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				PositionKey(pos, chess.White)
			}
		})
	}
}

func BenchmarkRepetitionTableRecord(b *testing.B) {
	table := NewRepetitionTable()
	for i := 0; i < b.N; i++ {
		table.Record(uint64(i % 64))
	}
}
