// Package game drives a chess game: it enforces turn order, accepts or
// rejects moves, and tracks check and the end of the game.
//
// Rejected moves never change the game. Move reports acceptance as a bool;
// TryMove returns the reason as an error wrapping one of the sentinels in
// internal/errors.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Game owns a position and the turn state. It is not safe for concurrent
// use; wrap it in a Synchronized when several goroutines share one.
type Game struct {
	id  uuid.UUID
	cfg *config.Config

	pos    *chess.Position
	player *Player

	state   State
	status  Status
	inCheck bool
	winner  chess.Colour

	history     []Record
	snapshots   []snapshot // snapshots[i] is the game before history[i]
	repetitions *hashing.RepetitionTable
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the rules, draw detection and logging of the game.
func WithConfig(cfg *config.Config) Option {
	return func(g *Game) {
		if cfg != nil {
			g.cfg = cfg
		}
	}
}

// WithID sets the game identifier instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.id = id
	}
}

// New creates a game in the standard starting position with White to move.
func New(opts ...Option) *Game {
	return NewFromPosition(chess.StandardPosition(), chess.White, opts...)
}

// NewFromPosition creates a game from any set-up position with turn to
// move. The position is copied. Castling rights and the en passant square
// are dropped when the configuration disables those moves. A position that
// is already finished (mate, stalemate, a draw) starts Over.
func NewFromPosition(pos *chess.Position, turn chess.Colour, opts ...Option) *Game {
	g := &Game{
		id:          uuid.New(),
		cfg:         config.NewConfig(),
		pos:         pos.Copy(),
		player:      NewPlayer(turn),
		repetitions: hashing.NewRepetitionTable(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if !g.cfg.Rules.Castling {
		g.pos.Castling = chess.NoCastling
	}
	if !g.cfg.Rules.EnPassant {
		g.pos.ClearEnPassant()
	}

	g.inCheck = engine.IsInCheck(&g.pos.Board, g.player.Current())
	g.evaluate(g.repetitions.Record(g.positionKey()))

	g.cfg.Logf(config.GameEvents, "game %s: started, %s to move", g.shortID(), g.player.Current())
	if g.state == Over {
		g.cfg.Logf(config.GameEvents, "game %s: over (%s)", g.shortID(), g.status)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id.String()
}

func (g *Game) shortID() string {
	return g.ID()[:8]
}

// Config returns the configuration the game was created with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Move attempts to move the piece on from to to, promoting to the
// configured default piece if a pawn reaches the far row. It reports
// whether the move was accepted; a rejected move leaves the game unchanged.
func (g *Game) Move(from, to chess.Square) bool {
	return g.TryMove(from, to) == nil
}

// TryMove is Move returning the reason for a rejection.
func (g *Game) TryMove(from, to chess.Square) error {
	return g.play(from, to, chess.NoKind)
}

// MoveWithPromotion is TryMove with the promotion piece chosen by the
// caller. The kind must be a knight, bishop, rook or queen, and the move
// must be a promotion.
func (g *Game) MoveWithPromotion(from, to chess.Square, kind chess.Kind) error {
	if !kind.IsPromotionTarget() {
		return g.reject(errors.ErrBadPromotion, from, to, g.pos.Board.Get(from))
	}
	return g.play(from, to, kind)
}

// play runs the acceptance checks in order and commits the move.
func (g *Game) play(from, to chess.Square, promotion chess.Kind) error {
	if g.state == Over {
		return g.reject(errors.ErrGameOver, from, to, chess.NoPiece)
	}
	if !from.IsOnBoard() || !to.IsOnBoard() {
		return g.reject(errors.ErrOffBoard, from, to, chess.NoPiece)
	}

	moving, ok := g.pos.Board.PieceAt(from)
	if !ok {
		return g.reject(errors.ErrEmptySquare, from, to, chess.NoPiece)
	}
	if from == to {
		return g.reject(errors.ErrIllegalShape, from, to, moving)
	}
	// An empty destination has NoColour, which never matches a mover.
	captured := g.pos.Board.Get(to)
	if captured.Colour() == moving.Colour() {
		return g.reject(errors.ErrOwnPieceCapture, from, to, moving)
	}
	if !g.player.OwnsPiece(moving) {
		return g.reject(errors.ErrNotYourPiece, from, to, moving)
	}

	move, ok := engine.Classify(g.pos, from, to)
	if !ok {
		return g.reject(errors.ErrIllegalShape, from, to, moving)
	}
	switch {
	case move.Kind == chess.Promotion:
		move.Promotion = g.promotionKind(promotion)
	case promotion != chess.NoKind:
		return g.reject(errors.ErrBadPromotion, from, to, moving)
	}

	if !g.cfg.Rules.AllowSelfCheck && engine.LeavesKingInCheck(g.pos, move) {
		return g.reject(errors.ErrKingInCheck, from, to, moving)
	}

	g.commit(move, moving)
	return nil
}

// promotionKind resolves the piece a pawn becomes.
func (g *Game) promotionKind(requested chess.Kind) chess.Kind {
	if requested.IsPromotionTarget() {
		return requested
	}
	if g.cfg.Rules.DefaultPromotion.IsPromotionTarget() {
		return g.cfg.Rules.DefaultPromotion
	}
	return chess.Queen
}

// commit mutates the live position and re-evaluates the game.
func (g *Game) commit(move chess.Move, moving chess.Piece) {
	g.snapshots = append(g.snapshots, g.snapshot())

	mover := g.player.Current()
	captured := engine.Apply(g.pos, move)
	if !g.cfg.Rules.EnPassant {
		g.pos.ClearEnPassant()
	}
	g.player.AdvanceTurn()

	if captured.Is(chess.King) {
		g.state = Over
		g.status = KingCaptured
		g.winner = mover
		g.inCheck = false
		g.repetitions.Record(g.positionKey())
	} else {
		g.inCheck = engine.IsInCheck(&g.pos.Board, g.player.Current())
		g.evaluate(g.repetitions.Record(g.positionKey()))
	}

	g.history = append(g.history, Record{
		Move:     move,
		Piece:    moving,
		Captured: captured,
		Check:    g.inCheck,
		Status:   g.status,
	})

	if g.inCheck && g.state == InProgress {
		g.cfg.Logf(config.GameEvents, "game %s: %s is in check", g.shortID(), g.player.Current())
	}
	if g.state == Over {
		g.cfg.Logf(config.GameEvents, "game %s: over after %s (%s)", g.shortID(), move, g.status)
	}
}

// evaluate decides whether the side to move can continue. repeats is how
// often the current position has now occurred.
func (g *Game) evaluate(repeats int) {
	turn := g.player.Current()
	draw := g.cfg.Draw

	var canMove bool
	if g.cfg.Rules.AllowSelfCheck {
		canMove = engine.HasAnyPseudoLegalMove(g.pos, turn)
	} else {
		canMove = engine.HasAnyLegalMove(g.pos, turn)
	}

	switch {
	case !canMove && g.inCheck:
		g.finish(Checkmate, turn.Opposite())
	case !canMove:
		g.finish(Stalemate, chess.NoColour)
	case draw.InsufficientMaterial && engine.HasInsufficientMaterial(&g.pos.Board):
		g.finish(InsufficientMaterial, chess.NoColour)
	case draw.SeventyFiveMove && engine.IsSeventyFiveMoveDraw(g.pos):
		g.finish(SeventyFiveMoveRule, chess.NoColour)
	case draw.Fivefold && repeats >= engine.FivefoldLimit:
		g.finish(FivefoldRepetition, chess.NoColour)
	default:
		g.state = InProgress
		g.status = Ongoing
		g.winner = chess.NoColour
	}
}

func (g *Game) finish(status Status, winner chess.Colour) {
	g.state = Over
	g.status = status
	g.winner = winner
}

// reject reports a refused move. The game is not touched.
func (g *Game) reject(reason error, from, to chess.Square, piece chess.Piece) error {
	err := &errors.MoveError{
		Err:   reason,
		Ply:   len(g.history) + 1,
		From:  from,
		To:    to,
		Piece: piece,
	}
	g.cfg.Logf(config.Rejections, "game %s: rejected %v", g.shortID(), err)
	return err
}

func (g *Game) positionKey() uint64 {
	return hashing.PositionKey(g.pos, g.player.Current())
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.inCheck
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.state == Over
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Status returns how the game stands.
func (g *Game) Status() Status {
	return g.status
}

// Winner returns the winning colour of a decided game, NoColour otherwise.
func (g *Game) Winner() chess.Colour {
	return g.winner
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.player.Current()
}

// PieceAt returns the occupant of sq.
func (g *Game) PieceAt(sq chess.Square) (chess.Piece, bool) {
	return g.pos.Board.PieceAt(sq)
}

// Board returns a copy of the board for rendering.
func (g *Game) Board() *chess.Board {
	return g.pos.Board.Copy()
}

// Position returns a copy of the full position.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// LegalMoves returns the moves the side to move may play, with one entry
// per promotion piece. A finished game has none.
func (g *Game) LegalMoves() []chess.Move {
	if g.state == Over {
		return nil
	}
	if g.cfg.Rules.AllowSelfCheck {
		return engine.PseudoLegalMoves(g.pos, g.player.Current())
	}
	return engine.LegalMoves(g.pos, g.player.Current())
}

// AttackedSquares returns the squares the colour attacks in the current position.
func (g *Game) AttackedSquares(colour chess.Colour) chess.SquareSet {
	return engine.AttackedSquares(&g.pos.Board, colour)
}

// Repetitions returns how often the current position has occurred.
func (g *Game) Repetitions() int {
	return g.repetitions.Count(g.positionKey())
}
