package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// SeventyFiveMoveLimit is the half-move clock value at which a game is
// drawn automatically (75 moves each without a pawn move or capture).
const SeventyFiveMoveLimit = 150

// FivefoldLimit is the number of occurrences of one position that draws a game.
const FivefoldLimit = 5

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool
	sufficient := false

	board.Each(func(sq chess.Square, piece chess.Piece) {
		kind := piece.Kind()

		switch kind {
		case chess.King:
			return
		case chess.Pawn, chess.Rook, chess.Queen:
			sufficient = true
			return
		}

		if piece.Colour() == chess.White {
			whitePieces = append(whitePieces, kind)
			if kind == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, kind)
			if kind == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	})
	if sufficient {
		return false
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.Col+sq.Row)%2 == 1
}

// IsSeventyFiveMoveDraw reports whether the half-move clock has reached the automatic draw limit.
func IsSeventyFiveMoveDraw(pos *chess.Position) bool {
	return pos.HalfmoveClock >= SeventyFiveMoveLimit
}
