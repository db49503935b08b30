package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// BuildValid returns the built Config after validating it.
func (b *ConfigBuilder) BuildValid() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithCastling enables or disables castling.
func (b *ConfigBuilder) WithCastling(enabled bool) *ConfigBuilder {
	b.cfg.Rules.Castling = enabled
	return b
}

// WithEnPassant enables or disables en passant captures.
func (b *ConfigBuilder) WithEnPassant(enabled bool) *ConfigBuilder {
	b.cfg.Rules.EnPassant = enabled
	return b
}

// WithSelfCheck allows moves that leave the mover's king attacked.
func (b *ConfigBuilder) WithSelfCheck(allowed bool) *ConfigBuilder {
	b.cfg.Rules.AllowSelfCheck = allowed
	return b
}

// WithDefaultPromotion sets the piece an unspecified promotion produces.
func (b *ConfigBuilder) WithDefaultPromotion(kind chess.Kind) *ConfigBuilder {
	b.cfg.Rules.DefaultPromotion = kind
	return b
}

// WithAutomaticDraws enables or disables every automatic draw at once.
func (b *ConfigBuilder) WithAutomaticDraws(enabled bool) *ConfigBuilder {
	b.cfg.Draw = DrawConfig{
		InsufficientMaterial: enabled,
		SeventyFiveMove:      enabled,
		Fivefold:             enabled,
	}
	return b
}

// WithInsufficientMaterial controls the insufficient material draw.
func (b *ConfigBuilder) WithInsufficientMaterial(enabled bool) *ConfigBuilder {
	b.cfg.Draw.InsufficientMaterial = enabled
	return b
}

// WithSeventyFiveMove controls the seventy-five move draw.
func (b *ConfigBuilder) WithSeventyFiveMove(enabled bool) *ConfigBuilder {
	b.cfg.Draw.SeventyFiveMove = enabled
	return b
}

// WithFivefold controls the fivefold repetition draw.
func (b *ConfigBuilder) WithFivefold(enabled bool) *ConfigBuilder {
	b.cfg.Draw.Fivefold = enabled
	return b
}
