package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ControlKind is the visual weight of an activatable element.
type ControlKind int

const (
	ControlPrimary ControlKind = iota
	ControlSecondary
	ControlLink
	// ControlText is body text that also responds to activation.
	ControlText
)

func (k ControlKind) String() string {
	switch k {
	case ControlPrimary:
		return "primary"
	case ControlSecondary:
		return "secondary"
	case ControlLink:
		return "link"
	case ControlText:
		return "text"
	default:
		return "unknown"
	}
}

// Control is a labelled element bound to an Action.
type Control struct {
	Label  string
	Kind   ControlKind
	action Action
}

// IsButton reports whether the control renders as a button.
func (c Control) IsButton() bool {
	return c.Kind == ControlPrimary || c.Kind == ControlSecondary
}

func (c Control) render(focused bool) string {
	var s string
	switch c.Kind {
	case ControlPrimary:
		s = primaryButtonStyle.Render(c.Label)
	case ControlSecondary:
		s = secondaryButtonStyle.Render(c.Label)
	case ControlLink:
		s = linkStyle.Render(c.Label)
	default:
		s = bodyStyle.Render(c.Label)
	}
	if focused {
		return focusMarkStyle.Render("›") + " " + s
	}
	return "  " + s
}

// focusRing tracks which control has keyboard focus.
type focusRing struct {
	controls []Control
	focus    int
}

func newFocusRing(controls ...Control) focusRing {
	return focusRing{controls: controls}
}

// handleKey moves focus or activates the focused control. The bool reports
// whether the key was consumed.
func (r *focusRing) handleKey(msg tea.KeyMsg, keys keyMap) (tea.Cmd, bool) {
	if len(r.controls) == 0 {
		return nil, false
	}
	switch {
	case key.Matches(msg, keys.Next):
		r.focus = (r.focus + 1) % len(r.controls)
		return nil, true
	case key.Matches(msg, keys.Prev):
		r.focus = (r.focus - 1 + len(r.controls)) % len(r.controls)
		return nil, true
	case key.Matches(msg, keys.Activate):
		return r.activate(r.focus), true
	}
	return nil, false
}

func (r *focusRing) activate(i int) tea.Cmd {
	if i < 0 || i >= len(r.controls) {
		return nil
	}
	return r.controls[i].action.invoke()
}

func (r *focusRing) render(i int) string {
	return r.controls[i].render(i == r.focus)
}

// renderRow lays the controls at indexes side by side.
func (r *focusRing) renderRow(gapCols int, indexes ...int) string {
	parts := make([]string, 0, len(indexes)*2)
	for n, i := range indexes {
		if n > 0 {
			parts = append(parts, strings.Repeat(" ", gapCols))
		}
		parts = append(parts, r.render(i))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *focusRing) snapshot() []Control {
	out := make([]Control, len(r.controls))
	copy(out, r.controls)
	return out
}

func helpLine(keys keyMap) string {
	bindings := keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return smallStyle.Render(strings.Join(parts, "  "))
}
