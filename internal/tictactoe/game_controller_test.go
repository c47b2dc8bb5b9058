package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

// canonical draw: X at 0,2,3,7,8 and O at 1,4,5,6
var drawMoves = []int{0, 1, 2, 4, 3, 5, 7, 6, 8}

func play(t *testing.T, engine *Engine, cells ...int) {
	t.Helper()

	for i, cell := range cells {
		require.True(t, engine.ApplyMove(cell), "move %d at cell %d rejected", i, cell)
	}
}

func TestNewEngine(t *testing.T) {
	// Given: a new engine
	engine := NewEngine()

	// Then: the game state should correspond to the expected initial state
	require.Equal(t, entity.NewGame(), engine.State())
}

func TestEngine_ApplyMove(t *testing.T) {
	t.Run("ApplyMove", func(t *testing.T) {
		// Given: a new game
		engine := NewEngine()

		// When: player X makes a turn
		ok := engine.ApplyMove(0)
		require.True(t, ok)

		// Then: the game state should reflect the turn and queue change
		state := engine.State()
		assert.Equal(t, entity.Board{x, e, e, e, e, e, e, e, e}, state.Board)
		assert.Equal(t, o, state.Turn)
		assert.True(t, state.Status.IsInProgress())
	})

	t.Run("Turn alternates on accepted moves", func(t *testing.T) {
		engine := NewEngine()

		for i, cell := range []int{4, 0, 8, 2} {
			expected := x
			if i%2 == 1 {
				expected = o
			}

			require.Equal(t, expected, engine.State().Turn)
			require.True(t, engine.ApplyMove(cell))
			assert.Equal(t, expected, engine.State().Board[cell])
		}

		assert.Equal(t, x, engine.State().Turn)
	})

	t.Run("Cell already occupied is ignored", func(t *testing.T) {
		// Given: X occupies cell 0
		engine := NewEngine()
		play(t, engine, 0)
		before := engine.State()

		// When: O tries to make a move to the same square
		ok := engine.ApplyMove(0)

		// Then: the move is rejected and the state remains unchanged
		assert.False(t, ok)
		assert.Equal(t, before, engine.State())
		assert.Equal(t, o, engine.State().Turn)
	})

	t.Run("Out of range cells are ignored", func(t *testing.T) {
		for _, cell := range []int{-1, 9, 20} {
			// Given: a new game
			engine := NewEngine()

			// When: an invalid cell index is passed
			ok := engine.ApplyMove(cell)

			// Then: nothing changes
			assert.False(t, ok)
			assert.Equal(t, entity.NewGame(), engine.State())
		}
	})

	t.Run("Move after win is ignored", func(t *testing.T) {
		// Given: X has won on the top row
		engine := NewEngine()
		play(t, engine, 0, 3, 1, 4, 2)
		before := engine.State()

		// When: another cell is clicked
		ok := engine.ApplyMove(5)

		// Then: board and status are unchanged
		assert.False(t, ok)
		assert.Equal(t, before, engine.State())
	})

	t.Run("Move after draw is ignored", func(t *testing.T) {
		engine := NewEngine()
		play(t, engine, drawMoves...)
		before := engine.State()

		for cell := 0; cell < entity.BoardSize; cell++ {
			assert.False(t, engine.ApplyMove(cell))
		}

		assert.Equal(t, before, engine.State())
	})

	t.Run("Set cells never change before reset", func(t *testing.T) {
		// Given: a game played to completion with every cell clicked repeatedly
		engine := NewEngine()
		seen := entity.Board{}

		for round := 0; round < 3; round++ {
			for cell := 0; cell < entity.BoardSize; cell++ {
				engine.ApplyMove(cell)

				// Then: a cell that has been set keeps its mark
				board := engine.State().Board
				for idx, mark := range seen {
					if mark != e {
						require.Equal(t, mark, board[idx], "cell %d changed", idx)
					}
				}
				seen = board
			}
		}
	})
}

func TestEngine_Win(t *testing.T) {
	cases := []struct {
		name   string
		moves  []int
		winner entity.Mark
		line   entity.Line
	}{
		{name: "Top row", moves: []int{0, 3, 1, 4, 2}, winner: x, line: entity.Line{0, 1, 2}},
		{name: "Middle row", moves: []int{3, 0, 4, 1, 5}, winner: x, line: entity.Line{3, 4, 5}},
		{name: "Bottom row", moves: []int{6, 0, 7, 1, 8}, winner: x, line: entity.Line{6, 7, 8}},
		{name: "Left column", moves: []int{0, 1, 3, 2, 6}, winner: x, line: entity.Line{0, 3, 6}},
		{name: "Middle column", moves: []int{1, 0, 4, 2, 7}, winner: x, line: entity.Line{1, 4, 7}},
		{name: "Right column", moves: []int{2, 0, 5, 1, 8}, winner: x, line: entity.Line{2, 5, 8}},
		{name: "Main diagonal", moves: []int{0, 1, 4, 2, 8}, winner: x, line: entity.Line{0, 4, 8}},
		{name: "Anti diagonal", moves: []int{2, 0, 4, 1, 6}, winner: x, line: entity.Line{2, 4, 6}},
		{name: "Player O wins", moves: []int{0, 1, 3, 4, 8, 7}, winner: o, line: entity.Line{1, 4, 7}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a new game
			engine := NewEngine()

			// When: the moves are played
			play(t, engine, tc.moves...)

			// Then: the game is won by the expected mark along the expected line
			state := engine.State()
			require.True(t, state.Status.IsWon())

			winner, _ := state.Status.Winner()
			line, _ := state.Status.Line()
			assert.Equal(t, tc.winner, winner)
			assert.Equal(t, tc.line, line)

			// Then: the turn is not flipped after the winning move
			assert.Equal(t, tc.winner, state.Turn)
		})
	}
}

func TestEngine_Draw(t *testing.T) {
	// Given: a new game
	engine := NewEngine()

	// When: the canonical draw sequence is played
	play(t, engine, drawMoves...)

	// Then: the board is full and the game is a draw
	state := engine.State()
	assert.True(t, state.Status.IsDraw())
	assert.Equal(t, entity.Board{x, o, x, x, o, o, o, x, x}, state.Board)
}

func TestEngine_LastCellWinIsNotDraw(t *testing.T) {
	// Given: X fills the last empty cell while completing the left column
	engine := NewEngine()
	play(t, engine, 0, 1, 3, 4, 2, 5, 7, 8)

	// When: X plays the final cell
	play(t, engine, 6)

	// Then: the win takes precedence over the full board
	state := engine.State()
	require.True(t, state.Status.IsWon())
	line, _ := state.Status.Line()
	assert.Equal(t, entity.Line{0, 3, 6}, line)
}

func TestEngine_Reset(t *testing.T) {
	cases := map[string][]int{
		"New game":   {},
		"Mid game":   {4, 0, 8},
		"After win":  {0, 3, 1, 4, 2},
		"After draw": drawMoves,
	}

	for name, moves := range cases {
		t.Run(name, func(t *testing.T) {
			// Given: a game in some state
			engine := NewEngine()
			play(t, engine, moves...)

			// When: the game is reset
			engine.Reset()

			// Then: the state is the initial one and moves are accepted again
			assert.Equal(t, entity.NewGame(), engine.State())
			assert.True(t, engine.ApplyMove(0))
		})
	}
}

func TestEngine_CheckMove(t *testing.T) {
	t.Run("Valid move", func(t *testing.T) {
		engine := NewEngine()

		assert.NoError(t, engine.CheckMove(4))
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		engine := NewEngine()

		assert.ErrorIs(t, engine.CheckMove(20), apperror.ErrInvalidCell)
		assert.ErrorIs(t, engine.CheckMove(-1), apperror.ErrInvalidCell)
	})

	t.Run("Occupied Cell", func(t *testing.T) {
		engine := NewEngine()
		play(t, engine, 4)

		assert.ErrorIs(t, engine.CheckMove(4), apperror.ErrCellOccupied)
	})

	t.Run("Game Finished", func(t *testing.T) {
		engine := NewEngine()
		play(t, engine, 0, 3, 1, 4, 2)

		assert.ErrorIs(t, engine.CheckMove(8), apperror.ErrGameFinished)
	})
}

func TestEngine_StateIsSnapshot(t *testing.T) {
	// Given: a snapshot taken before a move
	engine := NewEngine()
	snapshot := engine.State()

	// When: a move is applied
	play(t, engine, 4)

	// Then: the earlier snapshot is unaffected
	assert.Equal(t, e, snapshot.Board[4])
	assert.Equal(t, x, engine.State().Board[4])
}
