package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Styles maps core colors to lipgloss styles for one output.
type Styles map[core.Color]lipgloss.Style

// ansiCodes holds the ANSI 256-color code for each core color.
var ansiCodes = map[core.Color]string{
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorCyan:        "6",
	core.ColorBrightGreen: "10",
	core.ColorBrightWhite: "15",
	core.ColorGray:        "245",
}

// NewStyles builds styles bound to r. SSH sessions pass a renderer made for
// the client so colors follow the remote terminal's profile.
// A nil renderer uses the local terminal.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	styles := Styles{core.ColorDefault: r.NewStyle()}
	for c, code := range ansiCodes {
		styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	styles[core.ColorBrightGreen] = styles[core.ColorBrightGreen].Bold(true)
	return styles
}

func (st Styles) style(c core.Color) lipgloss.Style {
	if s, ok := st[c]; ok {
		return s
	}
	return st[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a string using the local
// terminal's styles.
func RenderScreen(s *core.Screen) string {
	return NewStyles(nil).Render(s)
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func (st Styles) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(st.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
