package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Diagram builds a position from eight rows drawn from White's side,
// rank 8 first. Letters are pieces (uppercase White, lowercase Black) and
// '.' is an empty square. The position has no castling rights and no en
// passant square; tests set those explicitly.
//
//	pos := testutil.Diagram(t,
//		"....k...",
//		"........",
//		...
//		"....K..R")
func Diagram(t testing.TB, rows ...string) *chess.Position {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("diagram has %d rows; want %d", len(rows), chess.BoardSize)
	}

	pos := chess.NewPosition()
	for i, row := range rows {
		if len(row) != chess.BoardSize {
			t.Fatalf("diagram row %d is %q; want %d squares", i+1, row, chess.BoardSize)
		}
		rank := chess.BoardSize - 1 - i
		for col := 0; col < chess.BoardSize; col++ {
			c := row[col]
			if c == '.' {
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				t.Fatalf("diagram row %d has unknown piece %q", i+1, c)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			pos.Board.Place(chess.NewPiece(colour, kind), chess.Sq(col, rank))
		}
	}
	return pos
}

// MustSquare parses an algebraic square name or fails the test.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("MustSquare(%q): %v", name, err)
	}
	return sq
}

// MustMove parses a coordinate move such as "e2e4" or "e7e8q" into its
// squares and promotion kind, or fails the test. The move kind is left unset.
func MustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	if len(text) != 4 && len(text) != 5 {
		t.Fatalf("MustMove(%q): want 4 or 5 characters", text)
	}
	m := chess.Move{
		From: MustSquare(t, text[0:2]),
		To:   MustSquare(t, text[2:4]),
	}
	if len(text) == 5 {
		m.Promotion = chess.KindFromLetter(text[4])
		if !m.Promotion.IsPromotionTarget() {
			t.Fatalf("MustMove(%q): bad promotion piece", text)
		}
	}
	return m
}

// MoveStrings renders moves in coordinate form for compact comparisons.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}
