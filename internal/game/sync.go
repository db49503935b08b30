package game

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Synchronized wraps a Game with mutex protection for concurrent access.
// Moves take the write lock; queries share the read lock.
type Synchronized struct {
	game *Game
	mu   sync.RWMutex
}

// NewSynchronized wraps g. The caller must not use g directly afterwards.
func NewSynchronized(g *Game) *Synchronized {
	return &Synchronized{game: g}
}

// Move atomically attempts a move.
func (s *Synchronized) Move(from, to chess.Square) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Move(from, to)
}

// TryMove atomically attempts a move and returns the rejection reason.
func (s *Synchronized) TryMove(from, to chess.Square) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.TryMove(from, to)
}

// MoveWithPromotion atomically attempts a promotion.
func (s *Synchronized) MoveWithPromotion(from, to chess.Square, kind chess.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.MoveWithPromotion(from, to, kind)
}

// Undo atomically takes back n moves.
func (s *Synchronized) Undo(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Undo(n)
}

// Do runs fn with exclusive access, for sequences that must not interleave
// with other movers.
func (s *Synchronized) Do(fn func(g *Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// InCheck reports whether the side to move is in check.
func (s *Synchronized) InCheck() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.InCheck()
}

// IsOver reports whether the game has ended.
func (s *Synchronized) IsOver() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.IsOver()
}

// Status returns how the game stands.
func (s *Synchronized) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Status()
}

// Turn returns the colour to move.
func (s *Synchronized) Turn() chess.Colour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Turn()
}

// PieceAt returns the occupant of sq.
func (s *Synchronized) PieceAt(sq chess.Square) (chess.Piece, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.PieceAt(sq)
}

// Board returns a copy of the board.
func (s *Synchronized) Board() *chess.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Board()
}

// History returns the accepted moves, oldest first.
func (s *Synchronized) History() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.History()
}
