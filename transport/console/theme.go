package console

import (
	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
)

// SGR codes for a 24-bit foreground color: 38;2;r;g;b
const (
	fgExtended color.Attribute = 38
	fgRGB      color.Attribute = 2
)

// Theme is used for coloring the board
type Theme struct {
	MarkX  *color.Color
	MarkO  *color.Color
	Win    *color.Color
	Header *color.Color
}

// ThemeBasic uses the 16 ANSI colors only
var ThemeBasic = Theme{
	MarkX:  color.New(color.FgCyan, color.Bold),
	MarkO:  color.New(color.FgYellow, color.Bold),
	Win:    color.New(color.FgGreen, color.Bold, color.Underline),
	Header: color.New(color.Bold),
}

// ThemeFromConfig converts tcell color names to true color output, unknown names keep the basic color
func ThemeFromConfig(conf config.Theme) Theme {
	return Theme{
		MarkX:  colorOr(conf.MarkX, ThemeBasic.MarkX, color.Bold),
		MarkO:  colorOr(conf.MarkO, ThemeBasic.MarkO, color.Bold),
		Win:    colorOr(conf.Win, ThemeBasic.Win, color.Bold, color.Underline),
		Header: colorOr(conf.Header, ThemeBasic.Header, color.Bold),
	}
}

func colorOr(name string, fallback *color.Color, attrs ...color.Attribute) *color.Color {
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}

	r, g, b := c.RGB()

	return color.New(fgExtended, fgRGB, color.Attribute(r), color.Attribute(g), color.Attribute(b)).Add(attrs...)
}
