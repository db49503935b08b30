// Package errors provides the rejection reasons reported by the rules engine.
// Rejections are normal outcomes, not failures: each reason is a sentinel
// that can be matched with errors.Is(), and MoveError attaches the squares
// and ply while still unwrapping to the sentinel.
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Sentinel errors for every reason a move can be rejected.
// Use these with errors.Is() to check for specific rejection reasons.
var (
	// ErrOffBoard indicates a source or destination outside the 8x8 grid.
	ErrOffBoard = errors.New("square off the board")

	// ErrEmptySquare indicates there is no piece on the source square.
	ErrEmptySquare = errors.New("no piece on source square")

	// ErrOwnPieceCapture indicates the destination holds a piece of the mover's colour.
	ErrOwnPieceCapture = errors.New("cannot capture own piece")

	// ErrNotYourPiece indicates the piece belongs to the side not on move.
	ErrNotYourPiece = errors.New("piece belongs to the opponent")

	// ErrIllegalShape indicates the piece kind cannot reach the destination.
	ErrIllegalShape = errors.New("illegal move for piece")

	// ErrKingInCheck indicates the move would leave the mover's king attacked.
	ErrKingInCheck = errors.New("move leaves king in check")

	// ErrBadPromotion indicates a promotion to a kind a pawn may not become.
	ErrBadPromotion = errors.New("invalid promotion piece")

	// ErrGameOver indicates a move was attempted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrNothingToUndo indicates an undo past the start of the game.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection reason with the move that caused it.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err   error        // The underlying reason
	Ply   int          // 1-based ply the move would have been (0 if not applicable)
	From  chess.Square // Source square
	To    chess.Square // Destination square
	Piece chess.Piece  // The piece that tried to move (NoPiece if none)
}

// Error returns a formatted message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if !e.Piece.IsEmpty() {
		parts = append(parts, e.Piece.String())
	}
	parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying reason, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Reason returns the sentinel at the bottom of err's chain, or err itself
// if no known sentinel is wrapped.
func Reason(err error) error {
	for _, sentinel := range []error{
		ErrOffBoard, ErrEmptySquare, ErrOwnPieceCapture, ErrNotYourPiece,
		ErrIllegalShape, ErrKingInCheck, ErrBadPromotion, ErrGameOver,
		ErrNothingToUndo, ErrInvalidConfig,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return err
}

// Is reports whether any error in err's chain matches target.
// It lets callers use this package in place of the standard one.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
