// Package hashing provides position keys for repetition detection.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const numSquares = chess.BoardSize * chess.BoardSize

// Zobrist tables. Filled once from a fixed seed so keys are stable between runs.
var (
	pieceKeys    [3][chess.NumKinds][numSquares]uint64
	castlingKeys [16]uint64
	epFileKeys   [chess.BoardSize]uint64
	blackToMove  uint64
)

func init() {
	rng := splitMix64(0x9E3779B97F4A7C15)
	for colour := range pieceKeys {
		for kind := range pieceKeys[colour] {
			for sq := range pieceKeys[colour][kind] {
				pieceKeys[colour][kind][sq] = rng.next()
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rng.next()
	}
	for i := range epFileKeys {
		epFileKeys[i] = rng.next()
	}
	blackToMove = rng.next()
}

// splitMix64 is a tiny deterministic generator used to fill the tables.
type splitMix64 uint64

func (s *splitMix64) next() uint64 {
	*s += 0x9E3779B97F4A7C15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// PositionKey returns the Zobrist key of pos with turn to move. Two
// positions share a key when the same pieces stand on the same squares,
// the same side is to move, the same castles remain and the same en
// passant capture is available.
func PositionKey(pos *chess.Position, turn chess.Colour) uint64 {
	var key uint64
	pos.Board.Each(func(sq chess.Square, p chess.Piece) {
		key ^= pieceKeys[p.Colour()][p.Kind()][sq.Row*chess.BoardSize+sq.Col]
	})
	key ^= castlingKeys[pos.Castling&0x0F]
	if target, ok := pos.EPTarget(); ok && canCaptureEnPassant(pos, turn, target) {
		key ^= epFileKeys[target.Col]
	}
	if turn == chess.Black {
		key ^= blackToMove
	}
	return key
}

// canCaptureEnPassant reports whether a pawn of turn can legally take on
// target. A recorded en passant square nobody can use, including one only
// a pinned pawn could reach, does not make a position different.
func canCaptureEnPassant(pos *chess.Position, turn chess.Colour, target chess.Square) bool {
	row := target.Row - turn.PawnDirection()
	for _, dc := range []int{-1, 1} {
		from := chess.Square{Col: target.Col + dc, Row: row}
		if pos.Board.Get(from) != chess.NewPiece(turn, chess.Pawn) || !engine.IsEnPassant(pos, from, target) {
			continue
		}
		if !engine.LeavesKingInCheck(pos, chess.Move{From: from, To: target, Kind: chess.EnPassantCapture}) {
			return true
		}
	}
	return false
}
