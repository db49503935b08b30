package config

import "github.com/lgbarn/chess-rules-go/internal/chess"

// RulesConfig holds switches for the special moves and the self-check rule.
type RulesConfig struct {
	// Castling allows either side to castle.
	Castling bool

	// EnPassant allows en passant captures.
	EnPassant bool

	// AllowSelfCheck lets a player leave their own king attacked. The king
	// can then be taken, which ends the game.
	AllowSelfCheck bool

	// DefaultPromotion is the piece a pawn becomes when the caller does not choose.
	DefaultPromotion chess.Kind `validate:"oneof=2 3 4 5"`
}

// NewRulesConfig creates a RulesConfig for standard chess.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		Castling:         true,
		EnPassant:        true,
		AllowSelfCheck:   false,
		DefaultPromotion: chess.Queen,
	}
}
