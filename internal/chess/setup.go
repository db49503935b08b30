package chess

// backRank is the standard back-row order from the a-file to the h-file.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition places the standard starting pieces on b,
// clearing anything already there.
func SetupInitialPosition(b *Board) {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Place(W(backRank[col]), Square{Col: col, Row: White.HomeRow()})
		b.Place(W(Pawn), Square{Col: col, Row: White.PawnRow()})
		b.Place(B(Pawn), Square{Col: col, Row: Black.PawnRow()})
		b.Place(B(backRank[col]), Square{Col: col, Row: Black.HomeRow()})
	}
}

// StandardPosition returns the standard starting position with all castling rights.
func StandardPosition() *Position {
	pos := NewPosition()
	SetupInitialPosition(&pos.Board)
	pos.Castling = AllCastling
	return pos
}
