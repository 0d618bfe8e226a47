// Package login renders the screens of the authentication entry flow: the
// startup splash, the connectivity failure screen and the sign-up/login
// intro with its status banners.
//
// Screens decide what to show. Navigation between them and the meaning of
// each action belong to the host that mounts them.
package login

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Screen is a mountable view. Init mounts it and Unmount releases anything it
// acquired; a screen must not change state after Unmount.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Unmount()
	Title() string
}

// Action is a caller-owned callback bound to a control. The returned command
// is handed back to the Bubble Tea loop.
type Action func() tea.Cmd

func (a Action) invoke() tea.Cmd {
	if a == nil {
		return nil
	}
	return a()
}

// column accumulates a vertically stacked layout of a fixed width.
type column struct {
	width int
	lines []string
}

func newColumn(width int) *column {
	return &column{width: viewWidth(width)}
}

// gap adds the blank rows equivalent to units of margin.
func (c *column) gap(units int) {
	for i := 0; i < rows(units); i++ {
		c.lines = append(c.lines, "")
	}
}

func (c *column) center(block string) {
	c.stretch(lipgloss.PlaceHorizontal(c.width, lipgloss.Center, block))
}

func (c *column) right(block string) {
	c.stretch(lipgloss.PlaceHorizontal(c.width, lipgloss.Right, block))
}

// stretch adds a block that is already laid out across the full width.
// Lines wider than the column are truncated.
func (c *column) stretch(block string) {
	for _, line := range strings.Split(block, "\n") {
		if ansi.StringWidth(line) > c.width {
			line = ansi.Truncate(line, c.width, "")
		}
		c.lines = append(c.lines, line)
	}
}

func (c *column) String() string {
	return strings.Join(c.lines, "\n")
}

func viewWidth(width int) int {
	if width <= 0 {
		return defaultWidth
	}
	return width
}

// placeCenter centers the column vertically when the height is known.
func placeCenter(c *column, height int) string {
	if height <= 0 {
		return c.String()
	}
	return lipgloss.PlaceVertical(height, lipgloss.Center, c.String())
}
