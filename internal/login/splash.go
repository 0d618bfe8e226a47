package login

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/loginflow/internal/schedule"
)

// FeedbackDelay is how long the splash screen stays quiet before offering a
// way to contact support.
const FeedbackDelay = 4000 * time.Millisecond

// revealFeedbackMsg is produced when a mount's timer fires.
type revealFeedbackMsg struct {
	mountID uuid.UUID
}

// Splash is the startup screen. It owns at most one pending timer, acquired
// on mount and released on unmount or re-mount.
type Splash struct {
	sched      schedule.Scheduler
	onFeedback Action
	keys       keyMap

	mounted bool
	mountID uuid.UUID
	handle  schedule.Handle
	fired   chan struct{}
	done    chan struct{}

	showFeedback bool
	ring         focusRing
}

// NewSplash returns an unmounted splash screen.
func NewSplash(sched schedule.Scheduler, onFeedback Action) *Splash {
	return &Splash{
		sched:      sched,
		onFeedback: onFeedback,
		keys:       newKeyMap(),
	}
}

func (s *Splash) Title() string { return "splash" }

func (s *Splash) Init() tea.Cmd { return s.Mount() }

// Mount cancels any pending timer and schedules a fresh one. The returned
// command waits for the timer and yields nothing if the screen is unmounted
// first.
func (s *Splash) Mount() tea.Cmd {
	s.release()
	if !s.mounted {
		s.showFeedback = false
		s.ring = focusRing{}
	}

	id := uuid.New()
	fired := make(chan struct{}, 1)
	done := make(chan struct{})
	s.mounted, s.mountID, s.fired, s.done = true, id, fired, done
	s.handle = s.sched.Schedule(FeedbackDelay, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	return func() tea.Msg {
		select {
		case <-fired:
			return revealFeedbackMsg{mountID: id}
		case <-done:
			return nil
		}
	}
}

// Unmount cancels the pending timer. Calling it more than once is safe.
func (s *Splash) Unmount() {
	s.release()
	s.mounted = false
}

func (s *Splash) release() {
	s.sched.Cancel(s.handle)
	s.handle = schedule.Handle{}
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
}

// Mounted reports whether the screen is between Mount and Unmount.
func (s *Splash) Mounted() bool { return s.mounted }

// ShowFeedback reports whether the support prompt has been revealed.
func (s *Splash) ShowFeedback() bool { return s.showFeedback }

// Controls returns the activatable elements currently on screen.
func (s *Splash) Controls() []Control { return s.ring.snapshot() }

func (s *Splash) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case revealFeedbackMsg:
		if !s.mounted || msg.mountID != s.mountID || s.showFeedback {
			return s, nil
		}
		s.showFeedback = true
		s.handle = schedule.Handle{}
		s.ring = newFocusRing(Control{Label: "Let us know", Kind: ControlPrimary, action: s.onFeedback})
	case tea.KeyMsg:
		if cmd, ok := s.ring.handleKey(msg, s.keys); ok {
			return s, cmd
		}
	}
	return s, nil
}

func (s *Splash) View(width, height int) string {
	col := newColumn(width)
	col.center(logoStyle.Render(logoArt))
	col.gap(marginSmall)
	col.center(headerStyle.Render("Keybase"))
	if s.showFeedback {
		col.gap(marginLarge)
		col.center(smallStyle.Render("Keybase not starting up?"))
		col.gap(marginSmall)
		col.center(s.ring.render(0))
	}
	return placeCenter(col, height)
}
