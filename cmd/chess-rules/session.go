package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// command is one prompt command with its handler.
type command struct {
	name        string
	shortName   string
	usage       string
	description string
	handler     func(s *session, args []string) error
}

// session is an interactive game at the prompt.
type session struct {
	cfg      *config.Config
	game     *game.Game
	out      io.Writer
	workers  int
	commands map[string]*command
	quit     bool
}

func newSession(cfg *config.Config, out io.Writer, numWorkers int) *session {
	s := &session{
		cfg:      cfg,
		out:      out,
		workers:  numWorkers,
		commands: make(map[string]*command),
	}
	for _, cmd := range commandTable() {
		s.commands[cmd.name] = cmd
		if cmd.shortName != "" {
			s.commands[cmd.shortName] = cmd
		}
	}
	s.newGame()
	return s
}

func commandTable() []*command {
	return []*command{
		{"help", "?", "help", "Show available commands", helpHandler},
		{"board", "b", "board", "Show the board", boardHandler},
		{"moves", "m", "moves", "List the moves the side to move may play", movesHandler},
		{"undo", "u", "undo [n]", "Take back n moves (default 1)", undoHandler},
		{"history", "h", "history", "List the moves played", historyHandler},
		{"new", "n", "new", "Start a new game", newHandler},
		{"perft", "p", "perft <depth>", "Count move paths from the current position", perftHandler},
		{"quit", "x", "quit", "Leave the program", quitHandler},
	}
}

func (s *session) newGame() {
	s.game = game.New(game.WithConfig(s.cfg))
	fmt.Fprintf(s.out, "Game %s\n", s.game.ID())
	renderBoard(s.out, s.game)
}

// execute runs one input line: a command or a move.
func (s *session) execute(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	if cmd, ok := s.commands[strings.ToLower(fields[0])]; ok {
		if err := cmd.handler(s, fields[1:]); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		return
	}

	if err := s.move(line); err != nil {
		fmt.Fprintf(s.out, "Rejected: %v\n", err)
		return
	}
	renderBoard(s.out, s.game)
}

func (s *session) move(text string) error {
	in, err := parseMove(text)
	if err != nil {
		return fmt.Errorf("%v (type 'help' for commands)", err)
	}
	if in.promotion != chess.NoKind {
		err = s.game.MoveWithPromotion(in.from, in.to, in.promotion)
	} else {
		err = s.game.TryMove(in.from, in.to)
	}
	if err != nil {
		return errors.Reason(err)
	}
	return nil
}

func helpHandler(s *session, _ []string) error {
	fmt.Fprintln(s.out, "Enter moves as e2e4, e2 e4 or e7e8q. Commands:")
	for _, cmd := range commandTable() {
		fmt.Fprintf(s.out, "  %-14s %-3s %s\n", cmd.usage, cmd.shortName, cmd.description)
	}
	return nil
}

func boardHandler(s *session, _ []string) error {
	renderBoard(s.out, s.game)
	return nil
}

func movesHandler(s *session, _ []string) error {
	moves := s.game.LegalMoves()
	if len(moves) == 0 {
		fmt.Fprintln(s.out, "No moves")
		return nil
	}
	texts := make([]string, 0, len(moves))
	for _, m := range moves {
		texts = append(texts, m.String())
	}
	sort.Strings(texts)
	fmt.Fprintf(s.out, "%d moves: %s\n", len(texts), strings.Join(texts, " "))
	return nil
}

func undoHandler(s *session, args []string) error {
	n := 1
	if len(args) > 0 {
		var err error
		if n, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid count %q", args[0])
		}
	}
	if err := s.game.Undo(n); err != nil {
		return err
	}
	renderBoard(s.out, s.game)
	return nil
}

func historyHandler(s *session, _ []string) error {
	renderHistory(s.out, s.game.History())
	return nil
}

func newHandler(s *session, _ []string) error {
	s.newGame()
	return nil
}

func perftHandler(s *session, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: perft <depth>")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		return fmt.Errorf("invalid depth %q", args[0])
	}
	if s.game.IsOver() {
		return errors.ErrGameOver
	}
	_, err = runPerft(context.Background(), s.out, s.game.Position(), s.game.Turn(), depth, worker.WithWorkers(s.workers))
	return err
}

func quitHandler(s *session, _ []string) error {
	s.quit = true
	return nil
}
