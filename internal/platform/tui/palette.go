package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/xenon/internal/core"
)

// palette holds one style per core.Color, tuned for a dark space backdrop:
// cold cyans for the player, hot reds and magentas for hostiles.
var palette = [...]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           fg("160"),
	core.ColorGreen:         fg("34"),
	core.ColorYellow:        fg("178"),
	core.ColorBlue:          fg("27"),
	core.ColorMagenta:       fg("127"),
	core.ColorCyan:          fg("37"),
	core.ColorWhite:         fg("252"),
	core.ColorBrightRed:     fg("196").Bold(true),
	core.ColorBrightGreen:   fg("46").Bold(true),
	core.ColorBrightYellow:  fg("226"),
	core.ColorBrightBlue:    fg("33"),
	core.ColorBrightMagenta: fg("201").Bold(true),
	core.ColorBrightCyan:    fg("51").Bold(true),
	core.ColorBrightWhite:   fg("231"),
	core.ColorOrange:        fg("208"),
	core.ColorGray:          fg("240"),
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// span is a horizontal run of cells sharing one colour.
type span struct {
	color core.Color
	text  string
}

// rowSpans splits row y of s into same-colour runs. Blank cells join the
// run before them whatever their colour, since a space shows no colour.
func rowSpans(s *core.Screen, y int) []span {
	var spans []span
	var sb strings.Builder
	cur := core.ColorDefault
	for x := range s.Width() {
		c := s.GetCell(x, y)
		if c.Rune != ' ' && c.Color != cur && sb.Len() > 0 {
			spans = append(spans, span{cur, sb.String()})
			sb.Reset()
		}
		if c.Rune != ' ' || sb.Len() == 0 {
			cur = c.Color
		}
		sb.WriteRune(c.Rune)
	}
	if sb.Len() > 0 {
		spans = append(spans, span{cur, sb.String()})
	}
	return spans
}

// RenderScreen converts a Screen buffer to styled terminal output.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, sp := range rowSpans(s, y) {
			sb.WriteString(styleFor(sp.color).Render(sp.text))
		}
	}
	return sb.String()
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))
	statusAccent = statusStyle.
			Foreground(lipgloss.Color("226")).
			Bold(true)
)

// statusBar renders one full-width line with left and right aligned parts.
// The right part is highlighted when accent is set.
func statusBar(width int, left, right string, accent bool) string {
	if width <= 0 {
		return ""
	}
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	r := statusStyle.Render(right)
	if accent {
		r = statusAccent.Render(right)
	}
	line := statusStyle.Render(left+strings.Repeat(" ", gap)) + r
	if lipgloss.Width(line) > width {
		return statusStyle.Render(truncate(left, width))
	}
	return line
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s + strings.Repeat(" ", width-len(r))
	}
	return string(r[:width])
}
