package chess

import "testing"

func TestColourOpposite(t *testing.T) {
	tests := []struct {
		in, want Colour
	}{
		{White, Black},
		{Black, White},
		{NoColour, NoColour},
	}
	for _, tt := range tests {
		if got := tt.in.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestColourRows(t *testing.T) {
	if White.PawnRow() != 1 || Black.PawnRow() != 6 {
		t.Errorf("PawnRow = %d/%d; want 1/6", White.PawnRow(), Black.PawnRow())
	}
	if White.PromotionRow() != 7 || Black.PromotionRow() != 0 {
		t.Errorf("PromotionRow = %d/%d; want 7/0", White.PromotionRow(), Black.PromotionRow())
	}
}

func TestEmptyPieceHasNoColour(t *testing.T) {
	// An empty square must never compare equal to a mover's colour.
	if NoPiece.Colour() == White || NoPiece.Colour() == Black {
		t.Errorf("NoPiece.Colour() = %v; want None", NoPiece.Colour())
	}
	if !NoPiece.IsEmpty() {
		t.Error("NoPiece.IsEmpty() = false")
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(King), 'K'},
		{B(King), 'k'},
		{W(Knight), 'N'},
		{B(Pawn), 'p'},
		{NoPiece, '.'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", tt.piece, got, tt.want)
		}
	}
}

func TestKindFromLetter(t *testing.T) {
	for k := Pawn; k < NumKinds; k++ {
		if got := KindFromLetter(k.Letter()); got != k {
			t.Errorf("KindFromLetter(%c) = %v; want %v", k.Letter(), got, k)
		}
	}
	if got := KindFromLetter('x'); got != NoKind {
		t.Errorf("KindFromLetter('x') = %v; want None", got)
	}
}

func TestSquareIsOnBoard(t *testing.T) {
	tests := []struct {
		sq   Square
		want bool
	}{
		{Sq(0, 0), true},
		{Sq(7, 7), true},
		{Sq(3, 4), true},
		{Sq(-1, 0), false},
		{Sq(0, -1), false},
		{Sq(8, 0), false},
		{Sq(0, 8), false},
	}
	for _, tt := range tests {
		if got := tt.sq.IsOnBoard(); got != tt.want {
			t.Errorf("%v.IsOnBoard() = %v; want %v", tt.sq, got, tt.want)
		}
	}
}

func TestSquareEqualityAsKey(t *testing.T) {
	set := SquareSet{}
	set.Add(Sq(4, 3))
	if !set.Has(Square{Col: 4, Row: 3}) {
		t.Error("SquareSet does not find an equal square")
	}
	if set.Has(Sq(3, 4)) {
		t.Error("SquareSet found a transposed square")
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a1", Sq(0, 0), false},
		{"e4", Sq(4, 3), false},
		{"h8", Sq(7, 7), false},
		{"E2", Sq(4, 1), false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"a", Square{}, true},
		{"", Square{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && got.String() != string([]byte{tt.in[0] | 0x20, tt.in[1]}) {
				t.Errorf("%v.String() = %q", got, got.String())
			}
		})
	}
}

func TestCastlingRights(t *testing.T) {
	r := AllCastling
	if r.String() != "KQkq" {
		t.Errorf("AllCastling.String() = %q; want KQkq", r.String())
	}

	r = r.Without(White, KingSide)
	if r.Has(White, KingSide) {
		t.Error("White king side still available after Without")
	}
	if !r.Has(White, QueenSide) {
		t.Error("White queen side lost with king side")
	}

	r = r.WithoutColour(Black)
	if r.String() != "Q" {
		t.Errorf("rights = %q; want Q", r.String())
	}
	if NoCastling.String() != "-" {
		t.Errorf("NoCastling.String() = %q; want -", NoCastling.String())
	}
}

func TestRookAndKingHomes(t *testing.T) {
	if got := RookHome(White, KingSide); got != Sq(7, 0) {
		t.Errorf("RookHome(White, KingSide) = %v; want h1", got)
	}
	if got := RookHome(Black, QueenSide); got != Sq(0, 7) {
		t.Errorf("RookHome(Black, QueenSide) = %v; want a8", got)
	}
	if got := KingHome(Black); got != Sq(4, 7) {
		t.Errorf("KingHome(Black) = %v; want e8", got)
	}
}

func TestPositionCopyIsIndependent(t *testing.T) {
	pos := StandardPosition()
	scratch := pos.Copy()
	scratch.Board.Remove(Sq(4, 1))
	scratch.Castling = NoCastling
	scratch.SetEnPassant(Sq(4, 2))

	if pos.Board.IsEmpty(Sq(4, 1)) {
		t.Error("live board changed through scratch copy")
	}
	if pos.Castling != AllCastling {
		t.Errorf("live castling rights = %v; want KQkq", pos.Castling)
	}
	if pos.EnPassant {
		t.Error("live position gained an en passant square")
	}
}

func TestMoveString(t *testing.T) {
	m := Move{From: Sq(4, 6), To: Sq(4, 7), Promotion: Queen}
	if got := m.String(); got != "e7e8q" {
		t.Errorf("String() = %q; want e7e8q", got)
	}
	m = Move{From: Sq(4, 1), To: Sq(4, 3)}
	if got := m.String(); got != "e2e4" {
		t.Errorf("String() = %q; want e2e4", got)
	}
}
