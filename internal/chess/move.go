package chess

// Move is a single accepted or candidate move.
type Move struct {
	From Square
	To   Square

	// Kind of transition (normal, castle, en passant, ...).
	Kind MoveKind

	// The piece promoted to (NoKind if not a promotion).
	Promotion Kind
}

// String returns the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(NewPiece(Black, m.Promotion).Letter())
	}
	return s
}
