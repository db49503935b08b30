// Package engine provides chess move validation and board manipulation.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// shapeFunc reports whether a piece of one kind can geometrically travel
// from one square to another on the given board. Sliding kinds account for
// obstruction; leaping kinds do not.
type shapeFunc func(board *chess.Board, piece chess.Piece, from, to chess.Square) bool

// shapes dispatches shape checks on the piece's kind tag.
var shapes = [chess.NumKinds]shapeFunc{
	chess.Pawn:   pawnShape,
	chess.Knight: knightShape,
	chess.Bishop: bishopShape,
	chess.Rook:   rookShape,
	chess.Queen:  queenShape,
	chess.King:   kingShape,
}

// LegalShape reports whether the piece on from can move to to by its
// kind's movement pattern. Turn, ownership, check and the special moves
// (castling, en passant) are not considered here.
func LegalShape(board *chess.Board, from, to chess.Square) bool {
	piece, ok := baseline(board, from, to)
	if !ok {
		return false
	}
	fn := shapes[piece.Kind()]
	if fn == nil {
		return false
	}
	return fn(board, piece, from, to)
}

// baseline rejects a null move, an empty source, or an off-board square.
func baseline(board *chess.Board, from, to chess.Square) (chess.Piece, bool) {
	if from == to || !from.IsOnBoard() || !to.IsOnBoard() {
		return chess.NoPiece, false
	}
	return board.PieceAt(from)
}

func knightShape(_ *chess.Board, _ chess.Piece, from, to chess.Square) bool {
	dc, dr := delta(from, to)
	colDiff, rowDiff := abs(dc), abs(dr)
	return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)
}

func bishopShape(board *chess.Board, _ chess.Piece, from, to chess.Square) bool {
	dc, dr := delta(from, to)
	if abs(dc) != abs(dr) {
		return false
	}
	return !PieceBetweenOnDiagonal(board, from, to)
}

func rookShape(board *chess.Board, _ chess.Piece, from, to chess.Square) bool {
	dc, dr := delta(from, to)
	if dc != 0 && dr != 0 {
		return false
	}
	return !PieceBetweenOnLine(board, from, to)
}

func queenShape(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	return bishopShape(board, piece, from, to) || rookShape(board, piece, from, to)
}

func kingShape(_ *chess.Board, _ chess.Piece, from, to chess.Square) bool {
	dc, dr := delta(from, to)
	return abs(dc) <= 1 && abs(dr) <= 1
}

// isSlider reports whether the kind moves along open lines.
func isSlider(kind chess.Kind) bool {
	return kind == chess.Bishop || kind == chess.Rook || kind == chess.Queen
}

// slideDirs returns the ray directions of a sliding kind.
func slideDirs(kind chess.Kind) [][2]int {
	switch kind {
	case chess.Bishop:
		return diagonalDirs[:]
	case chess.Rook:
		return straightDirs[:]
	case chess.Queen:
		return append(diagonalDirs[:len(diagonalDirs):len(diagonalDirs)], straightDirs[:]...)
	}
	return nil
}
