package usecase

import (
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/pkg"
)

type gameEngine interface {
	ApplyMove(cell int) bool
	CheckMove(cell int) error
	Reset()
	State() entity.Game
}

// GameSession - the boundary between a view and the engine. Views dispatch clicks and
// new-game requests here and render the returned snapshot.
type GameSession struct {
	logger *slog.Logger
	engine gameEngine

	newEpochID func() string

	mu    sync.Mutex
	epoch string
	moves int
}

func NewGameSession(logger *slog.Logger, engine gameEngine) *GameSession {
	session := &GameSession{
		logger:     logger.With("component", "game_session"),
		engine:     engine,
		newEpochID: pkg.GenerateEpochID,
	}
	session.epoch = session.newEpochID()

	return session
}

// Click - applies a move at the cell. Rejected moves are logged and otherwise ignored.
func (that *GameSession) Click(cell int) entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "Click", "epoch", that.epoch, "cell", cell)

	turn := that.engine.State().Turn
	if !that.engine.ApplyMove(cell) {
		log.Debug("move ignored", "reason", that.engine.CheckMove(cell))
		return that.engine.State()
	}

	that.moves++
	game := that.engine.State()
	log.Debug("move applied", "mark", turn.String(), "moves", that.moves)

	switch {
	case game.Status.IsWon():
		line, _ := game.Status.Line()
		log.Info("game won", "winner", turn.String(), "line", line[:], "moves", that.moves)
	case game.Status.IsDraw():
		log.Info("game drawn", "moves", that.moves)
	}

	return game
}

// NewGame - resets the board and starts a new epoch.
func (that *GameSession) NewGame() entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	previous := that.engine.State()

	that.engine.Reset()
	that.moves = 0
	that.epoch = that.newEpochID()

	that.logger.Info("new game started",
		"method", "NewGame",
		"epoch", that.epoch,
		"previous_status", previous.Status.String(),
	)

	return that.engine.State()
}

func (that *GameSession) Snapshot() entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.engine.State()
}

func (that *GameSession) Epoch() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.epoch
}
