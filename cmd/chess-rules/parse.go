package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// moveInput is a move as typed at the prompt.
type moveInput struct {
	from, to  chess.Square
	promotion chess.Kind // NoKind when not given
}

// parseMove reads coordinate input such as "e2 e4", "e2e4", "e2-e4",
// "e7e8q" or "e7e8=Q".
func parseMove(text string) (moveInput, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '=' {
			return -1
		}
		return r
	}, strings.ToLower(text))

	if len(compact) != 4 && len(compact) != 5 {
		return moveInput{}, fmt.Errorf("cannot read move %q", strings.TrimSpace(text))
	}

	from, err := chess.ParseSquare(compact[0:2])
	if err != nil {
		return moveInput{}, err
	}
	to, err := chess.ParseSquare(compact[2:4])
	if err != nil {
		return moveInput{}, err
	}

	in := moveInput{from: from, to: to}
	if len(compact) == 5 {
		in.promotion = chess.KindFromLetter(compact[4])
		if !in.promotion.IsPromotionTarget() {
			return moveInput{}, fmt.Errorf("invalid promotion piece %q", compact[4:])
		}
	}
	return in, nil
}
