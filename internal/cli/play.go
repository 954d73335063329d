package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const separator = "====================================="

var ErrInputClosed = errors.New("input closed before the game finished")

// Options controls one terminal game.
type Options struct {
	Depth      int
	Difficulty string
	Parallel   bool
	// First is "player", "computer" or "random".
	First string
	Seed  uint64
}

// StartingDisc resolves who moves first.
func StartingDisc(first string, seed uint64) (domain.Disc, error) {
	switch strings.ToLower(first) {
	case "player":
		return domain.Player, nil
	case "computer":
		return domain.Computer, nil
	case "", "random":
		rng := rand.New(rand.NewSource(seed))
		if rng.Intn(2) == 0 {
			return domain.Player, nil
		}
		return domain.Computer, nil
	}
	return domain.Empty, fmt.Errorf("unknown starting side %q", first)
}

// Play runs a human-versus-computer game reading columns from in and writing
// the board and messages to out.
func Play(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	first, err := StartingDisc(opts.First, opts.Seed)
	if err != nil {
		return err
	}

	depth := opts.Depth
	if opts.Difficulty != "" {
		depth = bot.DepthForDifficulty(opts.Difficulty, depth)
	}

	gs, err := game.NewGameSession(first, game.Options{Depth: depth, Parallel: opts.Parallel})
	if err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	fmt.Fprintln(out, "Player's disc: ", int(domain.Player))
	fmt.Fprintln(out, "Computer's disc: ", int(domain.Computer))
	if first == domain.Player {
		fmt.Fprintln(out, "Player starts!")
	} else {
		fmt.Fprintf(out, "Computer starts! (%s, depth %d)\n", bot.GetBotName(opts.Difficulty), depth)
	}

	for !gs.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, gs.Render())

		if gs.CurrentTurn() == domain.Player {
			column, err := readColumn(ctx, lines, out, gs)
			if err != nil {
				return err
			}
			if _, err := gs.HandleMove(column); err != nil {
				return err
			}
			fmt.Fprintln(out, "Player's move: ", column)
		} else {
			res, err := gs.HandleBotMove(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Computer's move: ", res.Column)
			log.Debug().Int("score", res.Score).Dur("elapsed", res.Elapsed.Round(time.Millisecond)).Msg("computer moved")
		}
		fmt.Fprintln(out, separator)
	}

	fmt.Fprint(out, gs.Render())
	switch {
	case gs.Game.Winner == domain.Player:
		fmt.Fprintln(out, "Player wins!")
	case gs.Game.Winner == domain.Computer:
		fmt.Fprintln(out, "Computer wins!")
	default:
		fmt.Fprintln(out, "It's a tie!")
	}
	fmt.Fprintln(out, "Thank you for playing!")
	return nil
}

type inputLine struct {
	text string
	err  error
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. The goroutine exits once done is closed or input ends.
func readLines(in io.Reader, done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- inputLine{text: scanner.Text()}:
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-done:
			}
		}
	}()
	return lines
}

// readColumn prompts until the human types a playable column.
func readColumn(ctx context.Context, lines <-chan inputLine, out io.Writer, gs *game.GameSession) (int, error) {
	for {
		fmt.Fprint(out, "Enter a column number: ")

		var line inputLine
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return 0, ErrInputClosed
			}
			line = l
		}
		if line.err != nil {
			return 0, line.err
		}

		column, err := strconv.Atoi(strings.TrimSpace(line.text))
		switch {
		case err != nil:
			fmt.Fprintln(out, "Invalid input. Please enter a number.")
		case column < 0 || column >= domain.Columns:
			fmt.Fprintf(out, "Invalid input. Please enter a number between 0 and %d.\n", domain.Columns-1)
		case !gs.IsValidMove(column):
			fmt.Fprintln(out, "Invalid input. Please enter a number for a column that is not full.")
		default:
			return column, nil
		}
	}
}
