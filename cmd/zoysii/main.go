package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	flag "github.com/spf13/pflag"

	"github.com/Deminder/zoysii-solver/board"
	"github.com/Deminder/zoysii-solver/internal/config"
	"github.com/Deminder/zoysii-solver/internal/packed"
	"github.com/Deminder/zoysii-solver/shortcut"
	"github.com/Deminder/zoysii-solver/solver"
)

var (
	maxMoves = flag.IntP("moves", "m", 20, "max number of moves")
	stdin    = flag.BoolP("stdin", "s", false, "read boards as lines from stdin")
	strategy = flag.String("strategy", "shortcut", "expansion strategy: shortcut or direct")
	verbose  = flag.BoolP("verbose", "v", false, "enable debug logging")
)

func newSolver(cfg config.Config) (*solver.Solver, error) {
	var st solver.Strategy
	switch *strategy {
	case "direct":
		st = solver.Direct{}
	case "shortcut":
		st = &solver.Shortcut{Cache: shortcut.New()}
	default:
		return nil, fmt.Errorf("unknown strategy %q", *strategy)
	}
	return solver.New(st, solver.WithWorkers(cfg.Workers)), nil
}

func renderMoves(moves []board.Move, sep string) string {
	return strings.Join(lo.Map(moves, func(m board.Move, _ int) string { return m.String() }), sep)
}

// solveStdin reads one board per line and prints the comma separated move
// list, or "X" when there is no solution. Unparsable lines are reported
// and skipped so one bad board does not abort the batch.
func solveStdin(s *solver.Solver, r *os.File) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		b, err := board.Parse(line)
		if err != nil {
			log.Error().Err(err).Msg("skipping board")
			continue
		}
		if res := s.Solve(b, *maxMoves); res != nil {
			fmt.Println(renderMoves(res.Moves, ","))
		} else {
			fmt.Println("X")
		}
	}
	if err := sc.Err(); err != nil {
		log.Error().Err(err).Msg("reading stdin")
	}
}

func solveArgs(s *solver.Solver, args []string) error {
	for _, arg := range args {
		b, err := board.Parse(arg)
		if err != nil {
			return err
		}
		if res := s.Solve(b, *maxMoves); res != nil {
			fmt.Printf("Solution with %d moves: %s\n", len(res.Moves), renderMoves(res.Moves, ", "))
		} else {
			fmt.Println("No solution!")
		}
	}
	return nil
}

func main() {
	flag.Parse()
	cfg := config.Default()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(level)

	if *maxMoves > packed.MaxLen {
		fmt.Fprintf(os.Stderr, "Invalid: Max supported moves: %d\n", packed.MaxLen)
		os.Exit(1)
	}

	s, err := newSolver(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *stdin:
		solveStdin(s, os.Stdin)
	case len(flag.Args()) > 0:
		if err := solveArgs(s, flag.Args()); err != nil {
			fmt.Fprintln(os.Stderr, "Invalid: Failed to parse board!")
			os.Exit(2)
		}
	default:
		fmt.Println("No board to solve. Try --help.")
		os.Exit(3)
	}
}
