package entity

// Player - a seat at the board. Player 1 always places X, Player 2 always places O.
type Player struct {
	Number int
	Mark   Mark
}

var (
	PlayerOne = Player{Number: 1, Mark: PlayerX}
	PlayerTwo = Player{Number: 2, Mark: PlayerO}
)

// PlayerFor - returns the player who places the given mark.
func PlayerFor(mark Mark) Player {
	if mark == PlayerO {
		return PlayerTwo
	}
	return PlayerOne
}
