package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LeavesKingInCheck plays the move on a scratch copy of pos and reports
// whether the mover's king is attacked afterwards. The live position is
// never touched.
func LeavesKingInCheck(pos *chess.Position, move chess.Move) bool {
	moving, ok := pos.Board.PieceAt(move.From)
	if !ok {
		return false
	}
	testPos := pos.Copy()
	Apply(testPos, move)
	return IsInCheck(&testPos.Board, moving.Colour())
}

// LegalMoves returns every legal move for the colour in pos. Promotions are
// expanded into one move per promotion piece.
func LegalMoves(pos *chess.Position, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	eachLegalMove(pos, colour, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// HasAnyLegalMove returns true if the colour has at least one legal move.
func HasAnyLegalMove(pos *chess.Position, colour chess.Colour) bool {
	found := false
	eachLegalMove(pos, colour, func(chess.Move) bool {
		found = true
		return false
	})
	return found
}

// PseudoLegalMoves returns the moves of the colour that obey the movement
// rules but may leave the mover's own king attacked.
func PseudoLegalMoves(pos *chess.Position, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	eachMove(pos, colour, false, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// HasAnyPseudoLegalMove returns true if the colour has any move at all,
// ignoring the safety of its own king.
func HasAnyPseudoLegalMove(pos *chess.Position, colour chess.Colour) bool {
	found := false
	eachMove(pos, colour, false, func(chess.Move) bool {
		found = true
		return false
	})
	return found
}

// LegalMovesFrom returns the legal moves of the piece standing on from.
func LegalMovesFrom(pos *chess.Position, from chess.Square) []chess.Move {
	piece, ok := pos.Board.PieceAt(from)
	if !ok {
		return nil
	}
	var moves []chess.Move
	eachMoveFrom(pos, from, piece, true, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// eachLegalMove calls fn for each legal move of the colour until fn returns false.
func eachLegalMove(pos *chess.Position, colour chess.Colour, fn func(chess.Move) bool) {
	eachMove(pos, colour, true, fn)
}

// eachMove calls fn for each move of the colour until fn returns false.
// When safe is set, moves leaving the mover's king attacked are skipped.
func eachMove(pos *chess.Position, colour chess.Colour, safe bool, fn func(chess.Move) bool) {
	// Collect origins first: fn must be free to inspect pos while we iterate.
	type origin struct {
		sq    chess.Square
		piece chess.Piece
	}
	var origins []origin
	pos.Board.Each(func(sq chess.Square, piece chess.Piece) {
		if piece.Colour() == colour {
			origins = append(origins, origin{sq, piece})
		}
	})

	for _, o := range origins {
		if !eachMoveFrom(pos, o.sq, o.piece, safe, fn) {
			return
		}
	}
}

// eachMoveFrom calls fn for each move of one piece. It returns false as
// soon as fn does.
func eachMoveFrom(pos *chess.Position, from chess.Square, piece chess.Piece, safe bool, fn func(chess.Move) bool) bool {
	for _, to := range candidateTargets(&pos.Board, from, piece) {
		move, ok := Classify(pos, from, to)
		if !ok || (safe && LeavesKingInCheck(pos, move)) {
			continue
		}
		if move.Kind == chess.Promotion {
			for _, kind := range promotionKinds {
				move.Promotion = kind
				if !fn(move) {
					return false
				}
			}
			continue
		}
		if !fn(move) {
			return false
		}
	}
	return true
}

// candidateTargets lists destinations worth classifying for a piece: a
// superset of its pseudo-legal targets, including castle and en passant
// landing squares.
func candidateTargets(board *chess.Board, from chess.Square, piece chess.Piece) []chess.Square {
	var targets []chess.Square
	add := func(sq chess.Square) {
		if sq.IsOnBoard() {
			targets = append(targets, sq)
		}
	}

	switch kind := piece.Kind(); kind {
	case chess.Pawn:
		dir := piece.Colour().PawnDirection()
		add(from.Offset(0, dir))
		add(from.Offset(0, 2*dir))
		add(from.Offset(-1, dir))
		add(from.Offset(1, dir))

	case chess.King:
		for _, off := range kingOffsets {
			add(from.Offset(off[0], off[1]))
		}
		for _, side := range castleSides {
			if from == chess.KingHome(piece.Colour()) {
				add(castleTarget(piece.Colour(), side))
			}
		}

	default:
		targets = attacksFrom(board, from, piece)
	}
	return targets
}
