package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/view"
)

const helpText = "commands: 1-9 place a mark, n new game, q quit"

type gameSession interface {
	Click(cell int) entity.Game
	NewGame() entity.Game
	Snapshot() entity.Game
}

// Console - a line based view: one command per line in, the board after every command out.
type Console struct {
	logger  *slog.Logger
	session gameSession

	in  io.Reader
	out io.Writer

	theme Theme
}

func New(logger *slog.Logger, session gameSession, theme Theme, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		session: session,
		theme:   theme,
		in:      in,
		out:     out,
	}
}

// Run - reads commands until input ends, "q" is entered or ctx is canceled.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	if err := that.render(that.session.Snapshot()); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				log.Info("input closed")
				return nil
			}

			quit, err := that.handle(strings.TrimSpace(line))
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// handle - executes a single command line.
func (that *Console) handle(command string) (bool, error) {
	switch strings.ToLower(command) {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	case "n", "new", "new game":
		return false, that.render(that.session.NewGame())
	}

	number, err := strconv.Atoi(command)
	if err != nil {
		_, err = fmt.Fprintln(that.out, helpText)
		return false, err
	}

	return false, that.render(that.session.Click(view.CellIndex(number)))
}

func (that *Console) render(game entity.Game) error {
	var sb strings.Builder

	winning := view.WinningCells(game)
	for row := 0; row < entity.BoardSide; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := 0; col < entity.BoardSide; col++ {
			if col > 0 {
				sb.WriteString("|")
			}

			idx := row*entity.BoardSide + col
			sb.WriteString(" " + that.cell(game.Board[idx], winning[idx]) + " ")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(that.theme.Header.Sprint(view.HeaderText(game)) + "\n")

	if segment, ok := view.Overlay(game); ok {
		line, _ := game.Status.Line()
		fmt.Fprintf(&sb, "%c %d %d %d\n", view.OverlayGlyph(segment),
			view.CellNumber(line[0]), view.CellNumber(line[1]), view.CellNumber(line[2]))
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Console) cell(mark entity.Mark, winning bool) string {
	text := view.CellText(mark)

	switch {
	case winning:
		return that.theme.Win.Sprint(text)
	case mark == entity.PlayerX:
		return that.theme.MarkX.Sprint(text)
	case mark == entity.PlayerO:
		return that.theme.MarkO.Sprint(text)
	default:
		return text
	}
}
