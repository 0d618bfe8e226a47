package login

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestFailureRendersOneBannerTwoButtons(t *testing.T) {
	f := NewFailure(nil, nil)

	banners := f.Banners()
	if len(banners) != 1 {
		t.Fatalf("banners = %d, want 1", len(banners))
	}
	if banners[0].Kind != BannerError {
		t.Errorf("banner kind = %v, want error", banners[0].Kind)
	}

	var labels []string
	for _, c := range f.Controls() {
		if !c.IsButton() {
			t.Errorf("control %q is not a button", c.Label)
		}
		labels = append(labels, c.Label)
	}
	if got := strings.Join(labels, ","); got != "Reload,Send us feedback" {
		t.Fatalf("buttons = %q", got)
	}

	view := ansi.Strip(f.View(200, 0))
	for _, want := range []string{"Oops, we had a problem communicating with our services.", "Reload", "Send us feedback"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFailureButtonsInvokeTheirCallbackOnce(t *testing.T) {
	tests := []struct {
		name         string
		keys         []tea.KeyMsg
		wantRetry    int
		wantFeedback int
	}{
		{
			name:      "reload is focused first",
			keys:      []tea.KeyMsg{{Type: tea.KeyEnter}},
			wantRetry: 1,
		},
		{
			name:         "tab to feedback",
			keys:         []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyEnter}},
			wantFeedback: 1,
		},
		{
			name:      "space activates",
			keys:      []tea.KeyMsg{{Type: tea.KeySpace, Runes: []rune{' '}}},
			wantRetry: 1,
		},
		{
			name:         "shift+tab wraps to feedback",
			keys:         []tea.KeyMsg{{Type: tea.KeyShiftTab}, {Type: tea.KeyEnter}},
			wantFeedback: 1,
		},
		{
			name:         "each click counts",
			keys:         []tea.KeyMsg{{Type: tea.KeyEnter}, {Type: tea.KeyEnter}, {Type: tea.KeyTab}, {Type: tea.KeyEnter}},
			wantRetry:    2,
			wantFeedback: 1,
		},
		{
			name: "unbound key does nothing",
			keys: []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'x'}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var retry, feedback int
			f := NewFailure(counter(&retry), counter(&feedback))
			for _, k := range tt.keys {
				f.Update(k)
			}
			if retry != tt.wantRetry {
				t.Errorf("retry = %d, want %d", retry, tt.wantRetry)
			}
			if feedback != tt.wantFeedback {
				t.Errorf("feedback = %d, want %d", feedback, tt.wantFeedback)
			}
		})
	}
}

func TestFailureReturnsActionCommand(t *testing.T) {
	type retried struct{}
	f := NewFailure(func() tea.Cmd {
		return func() tea.Msg { return retried{} }
	}, nil)

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from retry action")
	}
	if _, ok := cmd().(retried); !ok {
		t.Fatal("command did not come from retry action")
	}
}

func TestFailureNilActionIsNoop(t *testing.T) {
	f := NewFailure(nil, nil)
	if _, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("nil action should not produce a command")
	}
}
