package game

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Player tracks whose turn it is.
type Player struct {
	colour chess.Colour
}

// NewPlayer creates a turn tracker with first to move.
func NewPlayer(first chess.Colour) *Player {
	if first != chess.Black {
		first = chess.White
	}
	return &Player{colour: first}
}

// Current returns the colour to move.
func (p *Player) Current() chess.Colour {
	return p.colour
}

// OwnsPiece reports whether the piece belongs to the side to move.
// The empty piece is owned by nobody.
func (p *Player) OwnsPiece(piece chess.Piece) bool {
	return !piece.IsEmpty() && piece.Colour() == p.colour
}

// AdvanceTurn hands the move to the other side. Callers invoke it only
// after a move has been accepted.
func (p *Player) AdvanceTurn() {
	p.colour = p.colour.Opposite()
}
