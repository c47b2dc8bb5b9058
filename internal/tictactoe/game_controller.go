package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// Engine - the game state machine. It is total: every input is either applied or ignored,
// so callers may forward clicks without checking them first.
//
// Engine is not safe for concurrent use.
type Engine struct {
	game entity.Game
}

func NewEngine() *Engine {
	return &Engine{game: entity.NewGame()}
}

// ApplyMove - places the current turn's mark at the cell index.
// Returns false and leaves the state untouched when the move is rejected.
func (that *Engine) ApplyMove(cell int) bool {
	if err := that.CheckMove(cell); err != nil {
		return false
	}

	that.game.Board[cell] = that.game.Turn
	updateGameStatus(&that.game)

	return true
}

// CheckMove - reports why a move at the cell would be rejected, nil if it would be accepted.
func (that *Engine) CheckMove(cell int) error {
	if that.game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(&that.game.Board, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	return nil
}

// Reset - starts a new game, discarding all prior state.
func (that *Engine) Reset() {
	that.game = entity.NewGame()
}

// State - returns a snapshot of the game. The snapshot is a copy and does not track later moves.
func (that *Engine) State() entity.Game {
	return that.game
}

// validateMove - checks if the cell can take a mark.
func validateMove(board *entity.Board, cell int) error {
	if !board.InRange(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// updateGameStatus - checks the game status after a move by the current turn.
func updateGameStatus(game *entity.Game) {
	if line, ok := game.Board.WinningLine(); ok {
		game.Status = entity.Won(game.Turn, line)
		return
	}

	if game.Board.IsFull() {
		game.Status = entity.Draw()
		return
	}

	game.Turn = game.Turn.Opponent()
}
