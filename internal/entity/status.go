package entity

type StatusKind uint8

const (
	StatusInProgress StatusKind = iota
	StatusWon
	StatusDraw
)

func (that StatusKind) String() string {
	switch that {
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Status - the outcome of a game. Winner and line are only set for StatusWon,
// which is why the fields are private and values come from the constructors below.
type Status struct {
	kind   StatusKind
	winner Mark
	line   Line
}

func InProgress() Status {
	return Status{kind: StatusInProgress}
}

func Won(winner Mark, line Line) Status {
	return Status{kind: StatusWon, winner: winner, line: line}
}

func Draw() Status {
	return Status{kind: StatusDraw}
}

func (that Status) Kind() StatusKind {
	return that.kind
}

func (that Status) IsInProgress() bool {
	return that.kind == StatusInProgress
}

func (that Status) IsWon() bool {
	return that.kind == StatusWon
}

func (that Status) IsDraw() bool {
	return that.kind == StatusDraw
}

// Winner - returns the winning mark, ok is false unless the game is won.
func (that Status) Winner() (Mark, bool) {
	return that.winner, that.kind == StatusWon
}

// Line - returns the winning line, ok is false unless the game is won.
func (that Status) Line() (Line, bool) {
	return that.line, that.kind == StatusWon
}

func (that Status) String() string {
	if that.kind == StatusWon {
		return that.kind.String() + ":" + that.winner.String()
	}
	return that.kind.String()
}
