package game

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Record is one accepted move as it was played.
type Record struct {
	Move     chess.Move
	Piece    chess.Piece // The piece that moved
	Captured chess.Piece // NoPiece if nothing was taken
	Check    bool        // The move gave check
	Status   Status      // Game status after the move
}

// String renders the record in coordinate form with a suffix for check
// ("+") or a decisive finish ("#").
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.Move.String())
	switch {
	case r.Status.IsDecisive():
		sb.WriteByte('#')
	case r.Check:
		sb.WriteByte('+')
	}
	return sb.String()
}

// snapshot is everything needed to take back one move.
type snapshot struct {
	pos     chess.Position
	turn    chess.Colour
	state   State
	status  Status
	inCheck bool
	winner  chess.Colour
}

func (g *Game) snapshot() snapshot {
	return snapshot{
		pos:     *g.pos,
		turn:    g.player.Current(),
		state:   g.state,
		status:  g.status,
		inCheck: g.inCheck,
		winner:  g.winner,
	}
}

func (g *Game) restore(s snapshot) {
	*g.pos = s.pos
	g.player = NewPlayer(s.turn)
	g.state = s.state
	g.status = s.status
	g.inCheck = s.inCheck
	g.winner = s.winner
}

// History returns the accepted moves, oldest first.
func (g *Game) History() []Record {
	out := make([]Record, len(g.history))
	copy(out, g.history)
	return out
}

// Ply returns the number of accepted moves.
func (g *Game) Ply() int {
	return len(g.history)
}

// Undo takes back the last n moves, restoring the position, turn and
// status exactly. It fails with errors.ErrNothingToUndo when fewer than n
// moves have been played or n is not positive.
func (g *Game) Undo(n int) error {
	if n < 1 || n > len(g.history) {
		return errors.Wrapf(errors.ErrNothingToUndo, "undo %d of %d moves", n, len(g.history))
	}

	keep := len(g.history) - n
	g.restore(g.snapshots[keep])
	g.history = g.history[:keep]
	g.snapshots = g.snapshots[:keep]
	g.repetitions.Truncate(keep + 1)

	g.cfg.Logf(config.GameEvents, "game %s: took back %d move(s), %s to move", g.shortID(), n, g.player.Current())
	return nil
}
