// Package config provides configuration for chess-rules games.
package config

import (
	"fmt"
	"io"
)

// Verbosity levels for LogFile output.
const (
	Silent     = 0 // Nothing is logged
	GameEvents = 1 // Game start, check, game end
	Rejections = 2 // Every rejected move with its reason
)

// Config holds the settings a game is created with.
// Fields are grouped into embedded sub-configs by concern.
type Config struct {
	Verbosity int `validate:"min=0,max=2"`

	// LogFile receives diagnostics; nil discards them.
	LogFile io.Writer

	// Rule variations
	Rules RulesConfig

	// Automatic draw detection
	Draw DrawConfig
}

// NewConfig creates a new Config with default values: standard rules and
// automatic draws enabled. LogFile is nil, so nothing is written until a
// caller supplies a writer.
func NewConfig() *Config {
	return &Config{
		Verbosity: GameEvents,
		Rules:     *NewRulesConfig(),
		Draw:      *NewDrawConfig(),
	}
}

// SetLogFile sets the diagnostics writer.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity reaches level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
