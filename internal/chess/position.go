package chess

// CastlingRights records which castles remain available.
// A right is lost for good once the king or that rook moves, or the rook is captured.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// castleRight maps a colour and side to its bit.
func castleRight(colour Colour, side CastleSide) CastlingRights {
	switch {
	case colour == White && side == KingSide:
		return WhiteKingSide
	case colour == White:
		return WhiteQueenSide
	case colour == Black && side == KingSide:
		return BlackKingSide
	case colour == Black:
		return BlackQueenSide
	}
	return NoCastling
}

// Has reports whether the colour may still castle on side.
func (c CastlingRights) Has(colour Colour, side CastleSide) bool {
	r := castleRight(colour, side)
	return r != NoCastling && c&r != 0
}

// Without returns the rights with the colour's side removed.
func (c CastlingRights) Without(colour Colour, side CastleSide) CastlingRights {
	return c &^ castleRight(colour, side)
}

// WithoutColour removes both of the colour's rights.
func (c CastlingRights) WithoutColour(colour Colour) CastlingRights {
	return c.Without(colour, KingSide).Without(colour, QueenSide)
}

// String returns the rights in KQkq form, "-" when none remain.
func (c CastlingRights) String() string {
	var out []byte
	for _, r := range []struct {
		bit CastlingRights
		ch  byte
	}{{WhiteKingSide, 'K'}, {WhiteQueenSide, 'Q'}, {BlackKingSide, 'k'}, {BlackQueenSide, 'q'}} {
		if c&r.bit != 0 {
			out = append(out, r.ch)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// RookHome returns the starting square of the rook used by the colour's castle.
func RookHome(colour Colour, side CastleSide) Square {
	col := BoardSize - 1
	if side == QueenSide {
		col = 0
	}
	return Square{Col: col, Row: colour.HomeRow()}
}

// KingHome returns the starting square of the colour's king.
func KingHome(colour Colour) Square {
	return Square{Col: 4, Row: colour.HomeRow()}
}

// Position is a board plus the state the special moves depend on.
type Position struct {
	Board Board

	// Castles still available to either side.
	Castling CastlingRights

	// Is an en passant capture possible? If so EPSquare is the square
	// the capturing pawn lands on (behind the pawn that double-stepped).
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int
}

// NewPosition creates an empty position with no castling rights.
func NewPosition() *Position {
	return &Position{}
}

// Copy creates a scratch copy of the position.
func (p *Position) Copy() *Position {
	newPos := &Position{}
	*newPos = *p
	return newPos
}

// EPTarget returns the en passant landing square, if any.
func (p *Position) EPTarget() (Square, bool) {
	return p.EPSquare, p.EnPassant
}

// SetEnPassant records sq as the en passant landing square.
func (p *Position) SetEnPassant(sq Square) {
	p.EnPassant = true
	p.EPSquare = sq
}

// ClearEnPassant forgets the en passant landing square.
func (p *Position) ClearEnPassant() {
	p.EnPassant = false
	p.EPSquare = Square{}
}
