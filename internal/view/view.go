// Package view turns a game snapshot into the texts and geometry a renderer needs.
// It knows nothing about terminals; transport packages draw what it describes.
package view

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const DrawText = "It's a Draw!"

// PlayerLabel - "Player 1" for X, "Player 2" for O.
func PlayerLabel(mark entity.Mark) string {
	return fmt.Sprintf("Player %d", entity.PlayerFor(mark).Number)
}

// HeaderText - the whose-turn or outcome line shown above the board.
func HeaderText(game entity.Game) string {
	switch {
	case game.Status.IsDraw():
		return DrawText
	case game.Status.IsWon():
		winner, _ := game.Status.Winner()
		return PlayerLabel(winner) + " Wins!"
	default:
		return PlayerLabel(game.Turn)
	}
}

// CellText - the glyph for a cell, blank when empty.
func CellText(mark entity.Mark) string {
	if mark == entity.EmptyCell {
		return " "
	}
	return mark.String()
}

// Point - a position on the board measured in cells, (0,0) is the top-left corner.
type Point struct {
	X float64
	Y float64
}

// Segment - the overlay drawn through the winning cells.
type Segment struct {
	From Point
	To   Point
}

// CellCenter - the center of the cell at index.
func CellCenter(index int) Point {
	row, col := index/entity.BoardSide, index%entity.BoardSide
	return Point{X: float64(col) + 0.5, Y: float64(row) + 0.5}
}

// Overlay - the segment from the first to the last winning cell's center.
// ok is false unless the game is won.
func Overlay(game entity.Game) (Segment, bool) {
	line, ok := game.Status.Line()
	if !ok {
		return Segment{}, false
	}

	return Segment{From: CellCenter(line[0]), To: CellCenter(line[2])}, true
}

// OverlayGlyph - a character that draws the segment through a single terminal cell.
func OverlayGlyph(segment Segment) rune {
	switch from, to := segment.From, segment.To; {
	case from.Y == to.Y:
		return '─'
	case from.X == to.X:
		return '│'
	case from.X < to.X:
		return '╲'
	default:
		return '╱'
	}
}

// CellNumber - the 1-9 number players use for the cell at index, reading left to right, top to bottom.
func CellNumber(index int) int {
	return index + 1
}

// CellIndex - the board index for a cell number entered by a player.
func CellIndex(number int) int {
	return number - 1
}

// WinningCells - the set of cells on the winning line, empty unless the game is won.
func WinningCells(game entity.Game) map[int]bool {
	cells := make(map[int]bool, 3)

	if line, ok := game.Status.Line(); ok {
		for _, idx := range line {
			cells[idx] = true
		}
	}

	return cells
}
