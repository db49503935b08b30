package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate returns true if the colour is in check with no legal move.
func IsCheckmate(pos *chess.Position, colour chess.Colour) bool {
	return IsInCheck(&pos.Board, colour) && !HasAnyLegalMove(pos, colour)
}

// IsStalemate returns true if the colour is not in check but has no legal move.
func IsStalemate(pos *chess.Position, colour chess.Colour) bool {
	return !IsInCheck(&pos.Board, colour) && !HasAnyLegalMove(pos, colour)
}
