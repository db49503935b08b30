package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CanCastle reports whether the colour may castle on side in pos: the right
// is still held (neither king nor that rook has moved), both pieces stand on
// their home squares, every square between them is empty, and the king is
// not in check, does not pass through an attacked square, and does not land
// on one.
func CanCastle(pos *chess.Position, colour chess.Colour, side chess.CastleSide) bool {
	if !pos.Castling.Has(colour, side) {
		return false
	}

	board := &pos.Board
	kingSq := chess.KingHome(colour)
	rookSq := chess.RookHome(colour, side)
	if board.Get(kingSq) != chess.NewPiece(colour, chess.King) ||
		board.Get(rookSq) != chess.NewPiece(colour, chess.Rook) {
		return false
	}
	if PieceBetweenOnLine(board, kingSq, rookSq) {
		return false
	}

	enemy := colour.Opposite()
	dir := castleDirection(side)
	for step := 0; step <= 2; step++ {
		if IsSquareAttacked(board, kingSq.Offset(step*dir, 0), enemy) {
			return false
		}
	}
	return true
}

// castleDirection is the column step of the king towards the castling rook.
func castleDirection(side chess.CastleSide) int {
	if side == chess.KingSide {
		return 1
	}
	return -1
}

// castleTarget returns the king's destination square for a castle.
func castleTarget(colour chess.Colour, side chess.CastleSide) chess.Square {
	return chess.KingHome(colour).Offset(2*castleDirection(side), 0)
}

// castleSideFor recognises a king move of two columns along its home row
// as a castle request, returning which side it asks for.
func castleSideFor(colour chess.Colour, from, to chess.Square) (chess.CastleSide, bool) {
	if from != chess.KingHome(colour) || to.Row != from.Row {
		return chess.KingSide, false
	}
	switch to.Col - from.Col {
	case 2:
		return chess.KingSide, true
	case -2:
		return chess.QueenSide, true
	}
	return chess.KingSide, false
}

// castleKind maps a side to the move kind recorded for it.
func castleKind(side chess.CastleSide) chess.MoveKind {
	if side == chess.KingSide {
		return chess.KingsideCastle
	}
	return chess.QueensideCastle
}

// applyCastleRook moves the rook to the square the king crossed.
// The king itself is moved by the caller.
func applyCastleRook(board *chess.Board, colour chess.Colour, side chess.CastleSide) {
	rookFrom := chess.RookHome(colour, side)
	rookTo := chess.KingHome(colour).Offset(castleDirection(side), 0)
	board.Place(board.Remove(rookFrom), rookTo)
}

// updateCastlingRights removes rights when a king or rook leaves its home
// square, or a rook is captured on its home square.
func updateCastlingRights(pos *chess.Position, moved chess.Piece, from chess.Square, captured chess.Piece, to chess.Square) {
	colour := moved.Colour()
	switch moved.Kind() {
	case chess.King:
		pos.Castling = pos.Castling.WithoutColour(colour)
	case chess.Rook:
		pos.Castling = withoutRookAt(pos.Castling, colour, from)
	}
	if captured.Is(chess.Rook) {
		pos.Castling = withoutRookAt(pos.Castling, captured.Colour(), to)
	}
}

// withoutRookAt drops the right tied to a rook home square.
func withoutRookAt(rights chess.CastlingRights, colour chess.Colour, sq chess.Square) chess.CastlingRights {
	for _, side := range castleSides {
		if sq == chess.RookHome(colour, side) {
			rights = rights.Without(colour, side)
		}
	}
	return rights
}
