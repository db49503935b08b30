package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A side without a king on the board is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// It looks outwards from the square for each kind of attacker rather than
// enumerating every piece.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawn attacks come from the row behind, relative to the attacker.
	pawn := chess.NewPiece(byColour, chess.Pawn)
	for _, origin := range pawnAttacks(byColour.Opposite(), sq) {
		if board.Get(origin) == pawn {
			return true
		}
	}

	knight := chess.NewPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board.Get(sq.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	king := chess.NewPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board.Get(sq.Offset(off[0], off[1])) == king {
			return true
		}
	}

	queen := chess.NewPiece(byColour, chess.Queen)
	if rayHits(board, sq, diagonalDirs[:], chess.NewPiece(byColour, chess.Bishop), queen) {
		return true
	}
	return rayHits(board, sq, straightDirs[:], chess.NewPiece(byColour, chess.Rook), queen)
}

// rayHits walks each direction from sq until the first occupied square and
// reports whether that occupant is one of the given sliders.
func rayHits(board *chess.Board, sq chess.Square, dirs [][2]int, a, b chess.Piece) bool {
	for _, dir := range dirs {
		cur := sq.Offset(dir[0], dir[1])
		for cur.IsOnBoard() {
			if piece, ok := board.PieceAt(cur); ok {
				if piece == a || piece == b {
					return true
				}
				break // Blocked
			}
			cur = cur.Offset(dir[0], dir[1])
		}
	}
	return false
}

// AttackedSquares returns every square attacked by the colour's pieces: the
// union of each piece's reachable squares, ignoring turn and check. Squares
// holding the colour's own pieces are included, since they are defended.
func AttackedSquares(board *chess.Board, colour chess.Colour) chess.SquareSet {
	set := chess.SquareSet{}
	board.Each(func(from chess.Square, piece chess.Piece) {
		if piece.Colour() != colour {
			return
		}
		for _, to := range attacksFrom(board, from, piece) {
			set.Add(to)
		}
	})
	return set
}

// attacksFrom lists the squares the piece on from attacks.
func attacksFrom(board *chess.Board, from chess.Square, piece chess.Piece) []chess.Square {
	var out []chess.Square
	add := func(sq chess.Square) {
		if sq.IsOnBoard() {
			out = append(out, sq)
		}
	}

	switch kind := piece.Kind(); {
	case kind == chess.Pawn:
		for _, sq := range pawnAttacks(piece.Colour(), from) {
			add(sq)
		}
	case kind == chess.Knight:
		for _, off := range knightOffsets {
			add(from.Offset(off[0], off[1]))
		}
	case kind == chess.King:
		for _, off := range kingOffsets {
			add(from.Offset(off[0], off[1]))
		}
	case isSlider(kind):
		for _, dir := range slideDirs(kind) {
			cur := from.Offset(dir[0], dir[1])
			for cur.IsOnBoard() {
				out = append(out, cur)
				if !board.IsEmpty(cur) {
					break
				}
				cur = cur.Offset(dir[0], dir[1])
			}
		}
	}
	return out
}
