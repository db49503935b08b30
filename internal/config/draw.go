package config

// DrawConfig selects which automatic draws end a game.
type DrawConfig struct {
	// InsufficientMaterial ends the game when neither side can mate.
	InsufficientMaterial bool

	// SeventyFiveMove ends the game after 75 moves each without a pawn move or capture.
	SeventyFiveMove bool

	// Fivefold ends the game when one position occurs for the fifth time.
	Fivefold bool
}

// NewDrawConfig creates a DrawConfig with every automatic draw enabled.
func NewDrawConfig() *DrawConfig {
	return &DrawConfig{
		InsufficientMaterial: true,
		SeventyFiveMove:      true,
		Fivefold:             true,
	}
}

// Any reports whether any automatic draw is enabled.
func (d DrawConfig) Any() bool {
	return d.InsufficientMaterial || d.SeventyFiveMove || d.Fivefold
}
