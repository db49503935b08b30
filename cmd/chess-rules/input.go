package main

import (
	"bufio"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// lineReader yields one input line at a time; io.EOF ends the session.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// scannerReader reads piped or redirected input without prompting.
type scannerReader struct {
	scanner *bufio.Scanner
}

func newScannerReader(r io.Reader) *scannerReader {
	return &scannerReader{scanner: bufio.NewScanner(r)}
}

func (s *scannerReader) Readline() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *scannerReader) Close() error { return nil }

// openInput prompts with readline on a terminal and reads plain lines
// otherwise.
func openInput(history string) (lineReader, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return newScannerReader(os.Stdin), nil
	}
	return readline.NewEx(&readline.Config{
		Prompt:          "chess> ",
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
}

// run feeds input lines to the session until quit or end of input.
func run(s *session, in lineReader) error {
	for !s.quit {
		line, err := in.Readline()
		switch {
		case err == io.EOF, err == readline.ErrInterrupt:
			return nil
		case err != nil:
			return err
		}
		s.execute(line)
	}
	return nil
}
