package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// The failing branches need a *testing.T that does not abort the run, so
// these cover the passing paths plus Diff and formatMessage directly.

func TestAssertEqualSuccess(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3}, "slice")
	AssertEqual(t, chess.W(chess.Rook), chess.W(chess.Rook), "piece %s", "rook")
	AssertEqual(t, []chess.Move{}, []chess.Move(nil), "empty and nil slices")
}

func TestDiff(t *testing.T) {
	if d := Diff(chess.W(chess.Queen), chess.W(chess.Queen)); d != "" {
		t.Errorf("Diff of equal pieces = %q, want empty", d)
	}
	if d := Diff(chess.W(chess.Queen), chess.B(chess.Queen)); d == "" {
		t.Error("Diff of different colours is empty")
	}

	a := chess.StandardPosition()
	b := a.Copy()
	if d := Diff(a, b); d != "" {
		t.Errorf("Diff of copied positions:\n%s", d)
	}
	b.Board.Remove(chess.Sq(4, 1))
	if d := Diff(a, b); d == "" {
		t.Error("Diff missed a removed pawn")
	}
}

func TestDiffErrors(t *testing.T) {
	sentinel := errors.New("illegal move for piece")
	if d := Diff(sentinel, sentinel); d != "" {
		t.Errorf("Diff of the same sentinel = %q, want empty", d)
	}
	if d := Diff(sentinel, fmt.Errorf("ply 3: %w", sentinel)); d != "" {
		t.Errorf("Diff of a wrapped sentinel = %q, want empty", d)
	}
	if d := Diff(sentinel, errors.New("game is over")); d == "" {
		t.Error("Diff of different sentinels is empty")
	}
	AssertEqual(t, []error{sentinel, nil}, []error{sentinel, nil})
}

func TestAssertErrorIsSuccess(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, base, base)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base, "wrapped")
	AssertErrorIs(t, nil, nil)
}

func TestAssertNoErrorSuccess(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertContainsSuccess(t *testing.T) {
	AssertContains(t, "game 1234: started", "started")
	AssertContains(t, "anything", "")
}

func TestAssertBoolSuccess(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false, "flag %d", 1)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"none", nil, ""},
		{"plain string", []interface{}{"hello"}, "hello"},
		{"non-string", []interface{}{42}, "42"},
		{"format", []interface{}{"ply %d of %s", 3, "game"}, "ply 3 of game"},
		{"non-string with args", []interface{}{7, "x"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiagram(t *testing.T) {
	pos := Diagram(t,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"...P....",
		"....K..R")

	tests := []struct {
		square string
		want   chess.Piece
	}{
		{"e8", chess.B(chess.King)},
		{"d2", chess.W(chess.Pawn)},
		{"e1", chess.W(chess.King)},
		{"h1", chess.W(chess.Rook)},
		{"a1", chess.NoPiece},
	}
	for _, tt := range tests {
		got := pos.Board.Get(MustSquare(t, tt.square))
		AssertEqual(t, got, tt.want, tt.square)
	}
	AssertEqual(t, pos.Castling, chess.NoCastling)
	AssertFalse(t, pos.EnPassant)
}

func TestMustMove(t *testing.T) {
	m := MustMove(t, "e7e8n")
	AssertEqual(t, m, chess.Move{From: chess.Sq(4, 6), To: chess.Sq(4, 7), Promotion: chess.Knight})
	AssertEqual(t, MoveStrings([]chess.Move{m, MustMove(t, "g1f3")}), []string{"e7e8n", "g1f3"})
}
