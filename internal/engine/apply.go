package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Classify decides whether moving the piece on from to to is pseudo-legal
// in pos, and if so which kind of transition it is. Pseudo-legal means the
// move obeys the piece's movement rules, the special-move preconditions
// and does not capture a friendly piece; whose turn it is and whether the
// mover's king is left in check are not considered.
//
// A pawn reaching the far row is classified as a Promotion with
// Promotion left as NoKind; the caller picks the piece.
func Classify(pos *chess.Position, from, to chess.Square) (chess.Move, bool) {
	move := chess.Move{From: from, To: to}
	board := &pos.Board

	piece, ok := baseline(board, from, to)
	if !ok {
		return move, false
	}
	if target, ok := board.PieceAt(to); ok && target.Colour() == piece.Colour() {
		return move, false
	}

	switch piece.Kind() {
	case chess.Pawn:
		switch {
		case LegalShape(board, from, to):
			switch {
			case isPromotionSquare(piece.Colour(), to):
				move.Kind = chess.Promotion
			case abs(to.Row-from.Row) == 2:
				move.Kind = chess.DoublePawnPush
			}
			return move, true
		case IsEnPassant(pos, from, to):
			move.Kind = chess.EnPassantCapture
			return move, true
		}
		return move, false

	case chess.King:
		if LegalShape(board, from, to) {
			return move, true
		}
		side, ok := castleSideFor(piece.Colour(), from, to)
		if ok && CanCastle(pos, piece.Colour(), side) {
			move.Kind = castleKind(side)
			return move, true
		}
		return move, false
	}

	return move, LegalShape(board, from, to)
}

// Apply plays a classified move on pos and returns the captured piece
// (NoPiece if none). It updates the board, castling rights, en passant
// square and half-move clock; it performs no legality checks.
// A Promotion with no piece chosen promotes to a queen.
func Apply(pos *chess.Position, move chess.Move) chess.Piece {
	board := &pos.Board
	moving := board.Remove(move.From)
	colour := moving.Colour()

	var captured chess.Piece
	if move.Kind == chess.EnPassantCapture {
		captured = board.Remove(enPassantVictim(move.From, move.To))
	} else {
		captured = board.Get(move.To)
	}

	switch move.Kind {
	case chess.Promotion:
		promoted := move.Promotion
		if promoted == chess.NoKind {
			promoted = chess.Queen
		}
		board.Place(chess.NewPiece(colour, promoted), move.To)
	case chess.KingsideCastle:
		board.Place(moving, move.To)
		applyCastleRook(board, colour, chess.KingSide)
	case chess.QueensideCastle:
		board.Place(moving, move.To)
		applyCastleRook(board, colour, chess.QueenSide)
	default:
		board.Place(moving, move.To)
	}

	updateCastlingRights(pos, moving, move.From, captured, move.To)

	pos.ClearEnPassant()
	if move.Kind == chess.DoublePawnPush {
		pos.SetEnPassant(move.From.Offset(0, colour.PawnDirection()))
	}

	if moving.Is(chess.Pawn) || !captured.IsEmpty() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	return captured
}
