package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PieceBetweenOnLine reports whether any square strictly between from and
// to is occupied, when both share a row or a column. It returns false when
// the squares are not on a shared line.
func PieceBetweenOnLine(board *chess.Board, from, to chess.Square) bool {
	dc, dr := delta(from, to)
	if (dc != 0 && dr != 0) || (dc == 0 && dr == 0) {
		return false
	}
	return !isRayClear(board, from, to)
}

// PieceBetweenOnDiagonal reports whether any square strictly between from
// and to is occupied, when both share a diagonal. It returns false when the
// squares are not on a shared diagonal.
func PieceBetweenOnDiagonal(board *chess.Board, from, to chess.Square) bool {
	dc, dr := delta(from, to)
	if dc == 0 || abs(dc) != abs(dr) {
		return false
	}
	return !isRayClear(board, from, to)
}

// isRayClear walks from one square towards another, one step at a time,
// and reports whether every square strictly between them is empty.
// Callers guarantee the squares share a line or a diagonal.
func isRayClear(board *chess.Board, from, to chess.Square) bool {
	dc, dr := delta(from, to)
	colDir := sign(dc)
	rowDir := sign(dr)

	sq := from.Offset(colDir, rowDir)
	for sq != to {
		if !board.IsEmpty(sq) {
			return false
		}
		sq = sq.Offset(colDir, rowDir)
	}
	return true
}
