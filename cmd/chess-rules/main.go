// chess-rules is an interactive two-player chess board that enforces the
// rules of the game, with a perft mode for verifying move generation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	builder := config.NewConfigBuilder()
	if err := applyFlags(builder); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(builder)

	cfg, err := builder.BuildValid()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	numWorkers := *workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	if *perftDepth > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		_, err := runPerft(ctx, os.Stdout, chess.StandardPosition(), chess.White, *perftDepth, worker.WithWorkers(numWorkers))
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	in, err := openInput(*historyFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
		os.Exit(1)
	}

	s := newSession(cfg, os.Stdout, numWorkers)
	err = run(s, in)
	in.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile points the game log at the -l file, or at stderr when no
// file was given.
func setupLogFile(b *config.ConfigBuilder) {
	if *logFile == "" {
		b.WithLogFile(os.Stderr)
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	b.WithLogFile(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess at the prompt; illegal moves are refused.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves are typed in coordinate form: e2e4, e2 e4, e7e8q.\n")
	fmt.Fprintf(os.Stderr, "Type 'help' at the prompt for commands.\n")
}
