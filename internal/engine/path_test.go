package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestPieceBetween(t *testing.T) {
	// Rook a1, blocker a4, bishop c1, blocker e3.
	pos := testutil.Diagram(t,
		empty, empty, empty, empty,
		"P.......",
		"....P...",
		empty,
		"R.B.....")

	tests := []struct {
		name     string
		from, to string
		line     bool
		diagonal bool
	}{
		{"file through blocker", "a1", "a8", true, false},
		{"file up to blocker", "a1", "a4", false, false},
		{"file short of blocker", "a1", "a3", false, false},
		{"adjacent on file", "a1", "a2", false, false},
		{"rank through piece", "a1", "d1", true, false},
		{"rank reversed", "d1", "a1", true, false},
		{"diagonal through blocker", "c1", "g5", false, true},
		{"diagonal onto blocker", "c1", "e3", false, false},
		{"diagonal open", "c1", "a3", false, false},
		{"same square", "a1", "a1", false, false},
		{"knight jump", "a1", "b3", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := testutil.MustSquare(t, tt.from)
			to := testutil.MustSquare(t, tt.to)
			if got := PieceBetweenOnLine(&pos.Board, from, to); got != tt.line {
				t.Errorf("PieceBetweenOnLine(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.line)
			}
			if got := PieceBetweenOnDiagonal(&pos.Board, from, to); got != tt.diagonal {
				t.Errorf("PieceBetweenOnDiagonal(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.diagonal)
			}
		})
	}
}
