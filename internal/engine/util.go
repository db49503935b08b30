package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// delta returns the column and row distance from one square to another.
func delta(from, to chess.Square) (dc, dr int) {
	return to.Col - from.Col, to.Row - from.Row
}

// Direction tables shared by shape checks, attack detection and move generation.
var (
	knightOffsets  = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	promotionKinds = [4]chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}
	castleSides    = [2]chess.CastleSide{chess.KingSide, chess.QueenSide}
)
