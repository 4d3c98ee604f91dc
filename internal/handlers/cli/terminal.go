// Package cli is the terminal front end: menus, prompts and the board,
// read from an io.Reader and written to an io.Writer.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	"github.com/KirkDiggler/reapers-guild/internal/game"
	"go.uber.org/zap"
)

var _ game.Console = (*Terminal)(nil)

// Terminal implements game.Console over line-based input
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
	log *zap.SugaredLogger
}

// TerminalConfig holds the terminal's streams
type TerminalConfig struct {
	In     io.Reader
	Out    io.Writer
	Logger *zap.SugaredLogger
}

// NewTerminal creates a terminal
func NewTerminal(cfg *TerminalConfig) *Terminal {
	if cfg.In == nil {
		panic("input is required")
	}
	if cfg.Out == nil {
		panic("output is required")
	}

	t := &Terminal{
		in:  bufio.NewScanner(cfg.In),
		out: cfg.Out,
		log: cfg.Logger,
	}
	if t.log == nil {
		t.log = zap.S()
	}
	return t
}

// Say prints a message on its own line
func (t *Terminal) Say(message string) {
	t.println(message)
}

// ShowBoard prints the rendered board with a blank line above it
func (t *Terminal) ShowBoard(rendered string) {
	t.println()
	t.println(rendered)
}

func (t *Terminal) println(a ...any) {
	if _, err := fmt.Fprintln(t.out, a...); err != nil {
		t.log.Warnw("failed to write to terminal", "error", err)
	}
}

// ask prints the prompt and reads one trimmed line
func (t *Terminal) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(t.out, prompt); err != nil {
		return "", rgerr.Wrap(err, "failed to write prompt")
	}

	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", rgerr.Wrap(err, "failed to read input")
		}
		return "", rgerr.Wrap(io.EOF, "input closed")
	}
	return strings.TrimSpace(t.in.Text()), nil
}

// askNumber reads an integer in [lo, hi]. badNumber is shown for input that
// is not a number and outOfRange for numbers outside the range; an empty
// message reuses the other one.
func (t *Terminal) askNumber(ctx context.Context, prompt string, lo, hi int, badNumber, outOfRange string) (int, error) {
	if badNumber == "" {
		badNumber = outOfRange
	}
	if outOfRange == "" {
		outOfRange = badNumber
	}

	for {
		line, err := t.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			t.println(badNumber)
			continue
		}
		if n < lo || n > hi {
			t.println(outOfRange)
			continue
		}
		return n, nil
	}
}

// AskName reads names until validate accepts one
func (t *Terminal) AskName(ctx context.Context, validate func(string) error) (string, error) {
	for {
		name, err := t.ask(ctx, "Please enter a valid character name (letters only): ")
		if err != nil {
			return "", err
		}
		if err := validate(name); err != nil {
			t.log.Debugw("name rejected", "error", err)
			t.println("Not a valid character name. Try again.")
			continue
		}
		return name, nil
	}
}

// AskDirection lists the moves and reads one. Invalid input re-prompts
// without a message.
func (t *Terminal) AskDirection(ctx context.Context) (game.Direction, error) {
	for _, d := range game.Directions {
		t.println(fmt.Sprintf("%d. %s", int(d), d))
	}

	for {
		line, err := t.ask(ctx, "Please enter 1, 2, 3, or 4 to move: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= int(game.DirectionUp) && n <= int(game.DirectionLeft) {
			return game.Direction(n), nil
		}
	}
}
