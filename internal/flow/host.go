package flow

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/loginflow/internal/login"
	"github.com/jask/loginflow/internal/schedule"
)

// Outcome is the action the user took before the host quit.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeRetry    Outcome = "retry"
	OutcomeFeedback Outcome = "feedback"
	OutcomeSignup   Outcome = "signup"
	OutcomeLogin    Outcome = "login"
)

// outcomeMsg is emitted by the actions Build binds to a screen.
type outcomeMsg struct {
	outcome Outcome
}

// Report returns an action that ends the flow with o.
func Report(o Outcome) login.Action {
	return func() tea.Cmd {
		return func() tea.Msg { return outcomeMsg{outcome: o} }
	}
}

// Options configure the screen Build creates.
type Options struct {
	Scheduler schedule.Scheduler
	Flags     login.StatusFlags
}

// Build creates a screen of kind whose actions end the flow.
func Build(kind ScreenKind, opts Options) login.Screen {
	switch kind {
	case ScreenSplash:
		sched := opts.Scheduler
		if sched == nil {
			sched = schedule.NewClock()
		}
		return login.NewSplash(sched, Report(OutcomeFeedback))
	case ScreenFailure:
		return login.NewFailure(Report(OutcomeRetry), Report(OutcomeFeedback))
	default:
		return login.NewIntro(opts.Flags, login.IntroActions{
			OnSignup:   Report(OutcomeSignup),
			OnLogin:    Report(OutcomeLogin),
			OnFeedback: Report(OutcomeFeedback),
		})
	}
}

type hostKeys struct {
	Quit key.Binding
}

// Host is the root Bubble Tea model. It owns the mounted screen's lifetime.
type Host struct {
	screen login.Screen
	logger *slog.Logger
	keys   hostKeys

	width, height int
	mounted       bool
	outcome       Outcome
}

// NewHost wraps screen. A nil logger discards records.
func NewHost(screen login.Screen, logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Host{
		screen: screen,
		logger: logger,
		keys: hostKeys{
			Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		},
	}
}

// Outcome returns the action that ended the flow, if any.
func (h *Host) Outcome() Outcome { return h.outcome }

// Screen returns the hosted screen.
func (h *Host) Screen() login.Screen { return h.screen }

func (h *Host) Init() tea.Cmd {
	h.mounted = true
	h.logger.Info("screen mounted", "screen", h.screen.Title())
	return h.screen.Init()
}

func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		return h, nil
	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Quit) {
			return h, h.teardown()
		}
	case outcomeMsg:
		h.outcome = msg.outcome
		h.logger.Info("action selected", "screen", h.screen.Title(), "outcome", string(msg.outcome))
		return h, h.teardown()
	}
	if !h.mounted {
		return h, nil
	}
	var cmd tea.Cmd
	h.screen, cmd = h.screen.Update(msg)
	return h, cmd
}

func (h *Host) teardown() tea.Cmd {
	if h.mounted {
		h.screen.Unmount()
		h.mounted = false
		h.logger.Info("screen unmounted", "screen", h.screen.Title())
	}
	return tea.Quit
}

func (h *Host) View() string {
	if !h.mounted {
		return ""
	}
	return h.screen.View(h.width, h.height)
}
