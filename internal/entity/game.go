package entity

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Mark - the content of a single cell, or the symbol a player places.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Opponent - returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Line - an ordered triple of cell indices.
type Line [3]int

// WinCombos - rows, columns and diagonals, in the order they are checked.
var WinCombos = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - cells in row-major order, index = row*3 + col.
type Board [BoardSize]Mark

// WinningLine - returns the first line whose three cells hold the same mark.
func (that *Board) WinningLine() (Line, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return combo, true
		}
	}

	return Line{}, false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Board) InRange(index int) bool {
	return index >= 0 && index < len(that)
}

// Game - a read-only snapshot of a game: board contents, whose turn it is and the outcome.
type Game struct {
	Board  Board
	Turn   Mark
	Status Status
}

func NewGame() Game {
	return Game{
		Turn:   PlayerX,
		Status: InProgress(),
	}
}

func (that *Game) IsFinished() bool {
	return !that.Status.IsInProgress()
}
