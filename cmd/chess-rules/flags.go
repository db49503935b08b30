// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Rule variants
	noCastling  = flag.Bool("no-castling", false, "Disable castling")
	noEnPassant = flag.Bool("no-enpassant", false, "Disable en passant captures")
	selfCheck   = flag.Bool("self-check", false, "Allow moves that leave the mover's king attacked (king capture decides)")
	promoteTo   = flag.String("promote", "q", "Default promotion piece: q, r, b or n")
	noDraws     = flag.Bool("no-draws", false, "Disable automatic draws (insufficient material, 75 moves, fivefold repetition)")

	// Logging
	verbosity = flag.Int("verbosity", config.GameEvents, "Log level: 0 silent, 1 game events, 2 rejected moves")
	logFile   = flag.String("l", "", "Write game log to file (default: stderr)")

	// Move generator verification
	perftDepth = flag.Int("perft", 0, "Count legal move paths to depth N from the start position and exit")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = one per CPU core)")

	// Interactive session
	historyFile = flag.String("history", ".chess_rules_history", "Prompt history file (empty disables)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration builder.
func applyFlags(b *config.ConfigBuilder) error {
	b.WithVerbosity(*verbosity).
		WithCastling(!*noCastling).
		WithEnPassant(!*noEnPassant).
		WithSelfCheck(*selfCheck).
		WithAutomaticDraws(!*noDraws)

	kind, err := parsePromotionFlag(*promoteTo)
	if err != nil {
		return err
	}
	b.WithDefaultPromotion(kind)
	return nil
}

// parsePromotionFlag accepts a piece letter or name.
func parsePromotionFlag(s string) (chess.Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	names := map[string]chess.Kind{
		"queen":  chess.Queen,
		"rook":   chess.Rook,
		"bishop": chess.Bishop,
		"knight": chess.Knight,
	}
	if kind, ok := names[s]; ok {
		return kind, nil
	}
	if len(s) == 1 {
		if kind := chess.KindFromLetter(s[0]); kind.IsPromotionTarget() {
			return kind, nil
		}
	}
	return chess.NoKind, fmt.Errorf("invalid promotion piece %q", s)
}
