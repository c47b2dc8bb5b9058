package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// Theme is used for coloring the board
type Theme struct {
	MarkX  tcell.Color
	MarkO  tcell.Color
	Win    tcell.Color
	Header tcell.Color
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	MarkX:  tcell.ColorDodgerBlue,
	MarkO:  tcell.ColorOrangeRed,
	Win:    tcell.ColorGold,
	Header: tcell.ColorWhite,
}

// ThemeFromConfig converts color names to a Theme, unknown names keep the basic color
func ThemeFromConfig(conf config.Theme) Theme {
	return Theme{
		MarkX:  colorOr(conf.MarkX, ThemeBasic.MarkX),
		MarkO:  colorOr(conf.MarkO, ThemeBasic.MarkO),
		Win:    colorOr(conf.Win, ThemeBasic.Win),
		Header: colorOr(conf.Header, ThemeBasic.Header),
	}
}

func colorOr(name string, fallback tcell.Color) tcell.Color {
	if c := tcell.GetColor(name); c != tcell.ColorDefault {
		return c
	}
	return fallback
}

func (t Theme) markColor(mark entity.Mark) tcell.Color {
	switch mark {
	case entity.PlayerX:
		return t.MarkX
	case entity.PlayerO:
		return t.MarkO
	default:
		return tcell.ColorDefault
	}
}
