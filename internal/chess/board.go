package chess

import "strings"

// Board is the 8x8 grid of occupants, indexed [col][row].
// The zero value is an empty board. Board is an array value, so assigning
// it copies every square; pass *Board to share the live instance.
type Board struct {
	squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// PieceAt returns the occupant of sq and whether there is one.
// Off-board squares are reported as empty.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.IsOnBoard() {
		return NoPiece, false
	}
	p := b.squares[sq.Col][sq.Row]
	return p, !p.IsEmpty()
}

// Get returns the occupant of sq, NoPiece if empty or off the board.
func (b *Board) Get(sq Square) Piece {
	p, _ := b.PieceAt(sq)
	return p
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	_, ok := b.PieceAt(sq)
	return !ok
}

// Place sets the occupant of sq. Placing NoPiece clears the square.
// Off-board squares are ignored.
func (b *Board) Place(p Piece, sq Square) {
	if sq.IsOnBoard() {
		b.squares[sq.Col][sq.Row] = p
	}
}

// Remove clears sq and returns what was there.
func (b *Board) Remove(sq Square) Piece {
	p := b.Get(sq)
	b.Place(NoPiece, sq)
	return p
}

// Clear empties every square.
func (b *Board) Clear() {
	b.squares = [BoardSize][BoardSize]Piece{}
}

// Copy creates a scratch copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Each calls fn for every occupied square, a1..h1 then a2..h2 and so on.
func (b *Board) Each(fn func(sq Square, p Piece)) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[col][row]; !p.IsEmpty() {
				fn(Square{Col: col, Row: row}, p)
			}
		}
	}
}

// FindKing returns the square of the colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := NewPiece(colour, King)
	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			if b.squares[col][row] == king {
				return Square{Col: col, Row: row}, true
			}
		}
	}
	return Square{}, false
}

// Count returns how many pieces of the given colour and kind are on the board.
func (b *Board) Count(p Piece) int {
	n := 0
	b.Each(func(_ Square, q Piece) {
		if q == p {
			n++
		}
	})
	return n
}

// String draws the board from White's side, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		sb.WriteByte(byte('1' + row))
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.squares[col][row].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh")
	return sb.String()
}
