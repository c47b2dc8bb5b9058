package suite

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
)

// DrawMoves - a move order that fills the board without completing a line.
var DrawMoves = []int{0, 1, 2, 4, 3, 5, 7, 6, 8}

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Logs   *bytes.Buffer

	Session *usecase.GameSession
}

// New - builds a game session backed by a real engine, logging JSON into Logs.
func New(t *testing.T) *Suite {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &Suite{
		T:       t,
		Logger:  logger,
		Logs:    logs,
		Session: usecase.NewGameSession(logger, tictactoe.NewEngine()),
	}
}

// Play - clicks the cells in order and returns the last snapshot.
func (that *Suite) Play(cells ...int) entity.Game {
	that.Helper()

	game := that.Session.Snapshot()
	for _, cell := range cells {
		game = that.Session.Click(cell)
	}

	return game
}
