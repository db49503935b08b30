package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/game"
)

// renderBoard draws the board and a one-line summary of the game.
func renderBoard(w io.Writer, g *game.Game) {
	fmt.Fprintln(w, g.Board().String())
	fmt.Fprintln(w, statusLine(g))
}

// statusLine describes whose turn it is or how the game ended.
func statusLine(g *game.Game) string {
	if g.IsOver() {
		if g.Status().IsDecisive() {
			return fmt.Sprintf("Game over: %s, %s wins", g.Status(), g.Winner())
		}
		return fmt.Sprintf("Game over: %s", g.Status())
	}
	line := fmt.Sprintf("%s to move", g.Turn())
	if g.InCheck() {
		line += " (in check)"
	}
	return line
}

// renderHistory lists the accepted moves two plies to a line.
func renderHistory(w io.Writer, records []game.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No moves yet")
		return
	}
	for i := 0; i < len(records); i += 2 {
		line := fmt.Sprintf("%3d. %-7s", i/2+1, records[i])
		if i+1 < len(records) {
			line += " " + records[i+1].String()
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
