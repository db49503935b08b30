// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	NoColour Colour = iota // Colour of an empty square
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// PawnDirection returns +1 for White, -1 for Black (the row delta of a pawn advance).
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRow is the back row of the given colour.
func (c Colour) HomeRow() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRow is the row the colour's pawns start on.
func (c Colour) PawnRow() int {
	return c.HomeRow() + c.PawnDirection()
}

// PromotionRow is the far row where the colour's pawns promote.
func (c Colour) PromotionRow() int {
	return c.Opposite().HomeRow()
}

// Kind is the readable tag identifying a piece's movement rules.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter (either case) to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoKind
}

// IsPromotionTarget reports whether a pawn may promote to the kind.
func (k Kind) IsPromotionTarget() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// Piece is a kind tagged with a colour. The zero value is the empty piece.
// Pieces are values: identity never changes once created.
type Piece struct {
	kind   Kind
	colour Colour
}

// NoPiece is the occupant of an empty square.
var NoPiece = Piece{}

// NewPiece creates a piece of the given colour and kind.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece{kind: kind, colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// Kind returns the piece kind.
func (p Piece) Kind() Kind { return p.kind }

// Colour returns the piece colour.
func (p Piece) Colour() Colour { return p.colour }

// IsEmpty reports whether p is the empty piece.
func (p Piece) IsEmpty() bool { return p.kind == NoKind }

// Is reports whether p is a piece of the given kind.
func (p Piece) Is(kind Kind) bool { return p.kind == kind }

// Letter returns the piece letter, uppercase for White and lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.kind.Letter()
	if p.colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.colour.String() + " " + p.kind.String()
}

// BoardSize is the number of rows and columns.
const BoardSize = 8

// Square identifies a board cell by column (0 = a) and row (0 = rank 1).
type Square struct {
	Col int
	Row int
}

// Sq is shorthand for Square{Col: col, Row: row}.
func Sq(col, row int) Square {
	return Square{Col: col, Row: row}
}

// IsOnBoard reports whether both coordinates lie in [0, 8).
func (s Square) IsOnBoard() bool {
	return s.Col >= 0 && s.Col < BoardSize && s.Row >= 0 && s.Row < BoardSize
}

// Offset returns the square dc columns and dr rows away.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: s.Col + dc, Row: s.Row + dr}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.IsOnBoard() {
		return fmt.Sprintf("(%d,%d)", s.Col, s.Row)
	}
	return string([]byte{byte('a' + s.Col), byte('1' + s.Row)})
}

// ParseSquare converts an algebraic name such as "e4" to a square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", name)
	}
	col := int(name[0]) - 'a'
	if name[0] >= 'A' && name[0] <= 'H' {
		col = int(name[0]) - 'A'
	}
	sq := Square{Col: col, Row: int(name[1]) - '1'}
	if !sq.IsOnBoard() {
		return Square{}, fmt.Errorf("invalid square %q", name)
	}
	return sq, nil
}

// SquareSet is a set of squares.
type SquareSet map[Square]struct{}

// Add inserts sq into the set.
func (s SquareSet) Add(sq Square) {
	s[sq] = struct{}{}
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	_, ok := s[sq]
	return ok
}

// CastleSide selects the king-side or queen-side castle.
type CastleSide int

const (
	KingSide CastleSide = iota
	QueenSide
)

// String returns the string representation of a castle side.
func (cs CastleSide) String() string {
	if cs == KingSide {
		return "O-O"
	}
	return "O-O-O"
}

// MoveKind categorizes the transition a move performs.
type MoveKind int

const (
	NormalMove MoveKind = iota
	DoublePawnPush
	EnPassantCapture
	Promotion
	KingsideCastle
	QueensideCastle
)

// String returns the string representation of a move kind.
func (m MoveKind) String() string {
	names := []string{"Normal", "DoublePawnPush", "EnPassant", "Promotion", "KingsideCastle", "QueensideCastle"}
	if m >= 0 && int(m) < len(names) {
		return names[m]
	}
	return "Unknown"
}

// IsCastle reports whether m moves both king and rook.
func (m MoveKind) IsCastle() bool {
	return m == KingsideCastle || m == QueensideCastle
}
