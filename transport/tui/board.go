package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/view"
)

const (
	newGameLabel = "New Game"
	helpText     = "1-9 place a mark  n new game  Tab button  q quit"
)

type gameSession interface {
	Click(cell int) entity.Game
	NewGame() entity.Game
	Snapshot() entity.Game
}

// Board - the interactive terminal view: a header, a 3x3 table of cells and a New Game button.
type Board struct {
	logger  *slog.Logger
	session gameSession
	theme   Theme
	mouse   bool

	App     *tview.Application
	Table   *tview.Table
	Header  *tview.TextView
	Help    *tview.TextView
	NewGame *tview.Button
	Layout  *tview.Flex
}

func New(logger *slog.Logger, session gameSession, theme Theme, mouse bool) *Board {
	board := &Board{
		logger:  logger.With("component", "tui"),
		session: session,
		theme:   theme,
		mouse:   mouse,

		App:    tview.NewApplication(),
		Table:  tview.NewTable(),
		Header: tview.NewTextView(),
		Help:   tview.NewTextView(),
	}

	board.Header.
		SetTextAlign(tview.AlignCenter).
		SetTextColor(theme.Header)

	board.Help.
		SetTextAlign(tview.AlignCenter).
		SetText(helpText)

	board.NewGame = tview.NewButton(newGameLabel).SetSelectedFunc(board.onNewGame)

	board.Table.
		SetBorders(true).
		SetSelectable(true, true).
		SetSelectedFunc(board.onSelect)

	// 3 rows of cells plus 4 border lines
	board.Layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(board.Header, 1, 0, false).
		AddItem(board.Table, 2*entity.BoardSide+1, 0, true).
		AddItem(board.NewGame, 1, 0, false).
		AddItem(board.Help, 1, 0, false)

	board.App.SetInputCapture(board.onKey)

	board.render(session.Snapshot())

	return board
}

// Run - blocks until the user quits or ctx is canceled.
func (that *Board) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		that.App.Stop()
	}()

	that.logger.Info("terminal view started", "mouse", that.mouse)

	if err := that.App.SetRoot(that.Layout, true).EnableMouse(that.mouse).Run(); err != nil {
		return fmt.Errorf("failed to run terminal view: %w", err)
	}

	return nil
}

// onSelect - a cell was clicked or chosen with Enter.
func (that *Board) onSelect(row, col int) {
	that.render(that.session.Click(row*entity.BoardSide + col))
}

func (that *Board) onNewGame() {
	that.render(that.session.NewGame())
	that.App.SetFocus(that.Table)
}

// onKey - global shortcuts: digits 1-9 place a mark, n starts a new game, q or Esc quits.
func (that *Board) onKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		that.App.Stop()
		return nil
	case tcell.KeyTab:
		if that.Table.HasFocus() {
			that.App.SetFocus(that.NewGame)
		} else {
			that.App.SetFocus(that.Table)
		}
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch r := event.Rune(); {
	case r >= '1' && r <= '9':
		cell := view.CellIndex(int(r - '0'))
		that.Table.Select(cell/entity.BoardSide, cell%entity.BoardSide)
		that.onSelect(cell/entity.BoardSide, cell%entity.BoardSide)
	case r == 'n':
		that.onNewGame()
	case r == 'q':
		that.App.Stop()
	default:
		return event
	}

	return nil
}

func (that *Board) render(game entity.Game) {
	that.Header.SetText(view.HeaderText(game))

	winning := view.WinningCells(game)
	segment, won := view.Overlay(game)

	for idx, mark := range game.Board {
		text := " " + view.CellText(mark) + " "
		if won && winning[idx] {
			glyph := string(view.OverlayGlyph(segment))
			text = glyph + mark.String() + glyph
		}

		cell := tview.NewTableCell(text).
			SetAlign(tview.AlignCenter).
			SetExpansion(1).
			SetTextColor(that.theme.markColor(mark))

		if won && winning[idx] {
			cell.SetBackgroundColor(that.theme.Win)
		}

		that.Table.SetCell(idx/entity.BoardSide, idx%entity.BoardSide, cell)
	}
}
