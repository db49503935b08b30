package game

// State is the coarse lifecycle of a game.
type State int

const (
	InProgress State = iota
	Over
)

func (s State) String() string {
	if s == Over {
		return "over"
	}
	return "in progress"
}

// Status says how a game stands, and for a finished game why it ended.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	KingCaptured
	InsufficientMaterial
	SeventyFiveMoveRule
	FivefoldRepetition
)

var statusNames = [...]string{
	Ongoing:              "ongoing",
	Checkmate:            "checkmate",
	Stalemate:            "stalemate",
	KingCaptured:         "king captured",
	InsufficientMaterial: "insufficient material",
	SeventyFiveMoveRule:  "seventy-five move rule",
	FivefoldRepetition:   "fivefold repetition",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// IsDraw reports whether the status ends the game without a winner.
func (s Status) IsDraw() bool {
	switch s {
	case Stalemate, InsufficientMaterial, SeventyFiveMoveRule, FivefoldRepetition:
		return true
	}
	return false
}

// IsDecisive reports whether the status ends the game with a winner.
func (s Status) IsDecisive() bool {
	return s == Checkmate || s == KingCaptured
}
