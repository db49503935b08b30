package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnShape covers the ordinary pawn moves: a single step forward onto an
// empty square, a double step from the start row through two empty
// squares, and a diagonal step onto an opposing piece.
// En passant is recognised separately by IsEnPassant.
func pawnShape(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	colour := piece.Colour()
	dir := colour.PawnDirection()
	dc, dr := delta(from, to)

	switch {
	case dc == 0 && dr == dir:
		return board.IsEmpty(to)

	case dc == 0 && dr == 2*dir:
		if from.Row != colour.PawnRow() {
			return false
		}
		return board.IsEmpty(from.Offset(0, dir)) && board.IsEmpty(to)

	case abs(dc) == 1 && dr == dir:
		target, ok := board.PieceAt(to)
		return ok && target.Colour() == colour.Opposite()
	}

	return false
}

// IsEnPassant reports whether moving the pawn on from to to is an en
// passant capture in pos: a diagonal step onto the recorded en passant
// square, with an opposing pawn beside the mover on the square it passed.
func IsEnPassant(pos *chess.Position, from, to chess.Square) bool {
	piece, ok := baseline(&pos.Board, from, to)
	if !ok || !piece.Is(chess.Pawn) {
		return false
	}
	target, ok := pos.EPTarget()
	if !ok || to != target {
		return false
	}

	colour := piece.Colour()
	dc, dr := delta(from, to)
	if abs(dc) != 1 || dr != colour.PawnDirection() {
		return false
	}
	if !pos.Board.IsEmpty(to) {
		return false
	}
	return pos.Board.Get(enPassantVictim(from, to)) == chess.NewPiece(colour.Opposite(), chess.Pawn)
}

// enPassantVictim is the square of the pawn removed by an en passant capture:
// the destination column on the mover's starting row.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.Square{Col: to.Col, Row: from.Row}
}

// isPromotionSquare reports whether a pawn of the colour arriving on sq promotes.
func isPromotionSquare(colour chess.Colour, sq chess.Square) bool {
	return sq.Row == colour.PromotionRow()
}

// pawnAttacks returns the two squares diagonally in front of a pawn,
// whatever occupies them.
func pawnAttacks(colour chess.Colour, from chess.Square) [2]chess.Square {
	dir := colour.PawnDirection()
	return [2]chess.Square{from.Offset(-1, dir), from.Offset(1, dir)}
}
