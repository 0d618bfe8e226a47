package flow

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/loginflow/internal/login"
	"github.com/jask/loginflow/internal/schedule"
)

func TestParseScreen(t *testing.T) {
	tests := []struct {
		in      string
		want    ScreenKind
		wantErr string
	}{
		{in: "splash", want: ScreenSplash},
		{in: " Intro ", want: ScreenIntro},
		{in: "FAILURE", want: ScreenFailure},
		{in: "intr", wantErr: `did you mean "intro"`},
		{in: "splsh", wantErr: `did you mean "splash"`},
		{in: "dashboard", wantErr: `unknown screen "dashboard"`},
		{in: "", wantErr: `unknown screen ""`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScreen(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrUnknownScreen))
				require.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseScreenNoSuggestionForDistantNames(t *testing.T) {
	_, err := ParseScreen("dashboard")
	require.NotContains(t, err.Error(), "did you mean")
}

// drive feeds msg to the host and runs any command chain until it settles,
// returning the messages produced.
func drive(h *Host, msg tea.Msg) []tea.Msg {
	var seen []tea.Msg
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		seen = append(seen, next)
		_, cmd := h.Update(next)
		if cmd == nil {
			continue
		}
		if out := cmd(); out != nil {
			if _, quit := out.(tea.QuitMsg); quit {
				seen = append(seen, out)
				continue
			}
			queue = append(queue, out)
		}
	}
	return seen
}

func hasQuit(msgs []tea.Msg) bool {
	for _, m := range msgs {
		if _, ok := m.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func TestHostFailureRetryEndsFlow(t *testing.T) {
	var logs bytes.Buffer
	h := NewHost(Build(ScreenFailure, Options{}), slog.New(slog.NewTextHandler(&logs, nil)))
	require.Nil(t, h.Init())

	msgs := drive(h, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, hasQuit(msgs))
	require.Equal(t, OutcomeRetry, h.Outcome())
	require.Empty(t, h.View())
	require.Contains(t, logs.String(), "outcome=retry")
	require.Contains(t, logs.String(), "screen unmounted")
}

func TestHostIntroOutcomes(t *testing.T) {
	tests := []struct {
		tabs int
		want Outcome
	}{
		{0, OutcomeSignup},
		{1, OutcomeLogin},
		{2, OutcomeLogin},
		{3, OutcomeFeedback},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			h := NewHost(Build(ScreenIntro, Options{Flags: login.StatusFlags{JustLoginFromRevokedDevice: true}}), nil)
			h.Init()
			for i := 0; i < tt.tabs; i++ {
				drive(h, tea.KeyMsg{Type: tea.KeyTab})
			}
			require.True(t, hasQuit(drive(h, tea.KeyMsg{Type: tea.KeyEnter})))
			require.Equal(t, tt.want, h.Outcome())
		})
	}
}

func TestHostQuitUnmountsSplash(t *testing.T) {
	clock := schedule.NewManual()
	h := NewHost(Build(ScreenSplash, Options{Scheduler: clock}), nil)
	wait := h.Init()
	require.NotNil(t, wait)
	require.Equal(t, 1, clock.Pending())

	require.True(t, hasQuit(drive(h, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})))
	require.Equal(t, 0, clock.Pending())
	require.Equal(t, OutcomeNone, h.Outcome())

	splash := h.Screen().(*login.Splash)
	require.False(t, splash.Mounted())
	clock.Advance(login.FeedbackDelay)
	require.Nil(t, wait())
	require.False(t, splash.ShowFeedback())
}

func TestHostSplashFeedbackFlow(t *testing.T) {
	clock := schedule.NewManual()
	h := NewHost(Build(ScreenSplash, Options{Scheduler: clock}), nil)
	wait := h.Init()

	drive(h, tea.WindowSizeMsg{Width: 60, Height: 20})
	clock.Advance(login.FeedbackDelay)
	drive(h, wait())
	require.Contains(t, h.View(), "Let us know")
	require.Len(t, strings.Split(h.View(), "\n"), 20)

	require.True(t, hasQuit(drive(h, tea.KeyMsg{Type: tea.KeyEnter})))
	require.Equal(t, OutcomeFeedback, h.Outcome())
}

func TestBuildDefaultsToWallClock(t *testing.T) {
	s := Build(ScreenSplash, Options{})
	s.Init()
	s.Unmount()
	require.Equal(t, "splash", s.Title())
}
