package login

import tea "github.com/charmbracelet/bubbletea"

// IntroActions are the callbacks bound to the intro screen's controls.
type IntroActions struct {
	OnSignup   Action
	OnLogin    Action
	OnFeedback Action
}

// Intro is the sign-up/login entry point. Banners describing the previous
// session come first, then the fixed call-to-action section.
type Intro struct {
	flags StatusFlags
	keys  keyMap
	ring  focusRing
}

// Control indexes within the intro's focus ring.
const (
	introSignup = iota
	introLoginPrompt
	introLogin
	introFeedback
)

// NewIntro returns an intro screen for the given session flags.
func NewIntro(flags StatusFlags, actions IntroActions) *Intro {
	return &Intro{
		flags: flags,
		keys:  newKeyMap(),
		ring: newFocusRing(
			Control{Label: "Create an account", Kind: ControlPrimary, action: actions.OnSignup},
			Control{Label: "Already on Keybase?", Kind: ControlText, action: actions.OnLogin},
			Control{Label: "Log in", Kind: ControlSecondary, action: actions.OnLogin},
			Control{Label: "Problems logging in?", Kind: ControlLink, action: actions.OnFeedback},
		),
	}
}

func (i *Intro) Title() string { return "intro" }

func (i *Intro) Init() tea.Cmd { return nil }

func (i *Intro) Unmount() {}

// Flags returns the flags the screen was built with.
func (i *Intro) Flags() StatusFlags { return i.flags }

// Banners returns the banners on screen, in display order.
func (i *Intro) Banners() []Banner { return SelectBanners(i.flags) }

// TopMargin returns the screen's top offset in layout units.
func (i *Intro) TopMargin() int { return TopMargin(i.flags) }

// Controls returns the activatable elements on screen.
func (i *Intro) Controls() []Control { return i.ring.snapshot() }

func (i *Intro) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		cmd, _ := i.ring.handleKey(msg, i.keys)
		return i, cmd
	}
	return i, nil
}

func (i *Intro) View(width, height int) string {
	col := newColumn(width)
	col.gap(i.TopMargin())
	for _, b := range i.Banners() {
		col.gap(bannerMarginTop)
		col.stretch(b.render(col.width))
		col.gap(bannerMarginBottom)
	}

	col.center(logoStyle.Render(logoArt))
	col.gap(marginSmall)
	col.center(headerStyle.Render("Join Keybase"))
	col.gap(marginTiny)
	col.center(bodyStyle.Render("Folders for anyone in the world."))
	col.gap(marginMedium)
	col.center(i.ring.render(introSignup))

	footer := newColumn(width)
	footer.center(i.ring.render(introLoginPrompt))
	footer.gap(marginSmall)
	footer.center(i.ring.render(introLogin))
	footer.gap(marginSmall)
	footer.right(i.ring.render(introFeedback))
	footer.center(helpLine(i.keys))

	// The footer sits at the bottom when there is room, like a flex spacer.
	fill := 1
	if height > 0 {
		if free := height - len(col.lines) - len(footer.lines); free > fill {
			fill = free
		}
	}
	col.lines = append(col.lines, make([]string, fill)...)
	col.lines = append(col.lines, footer.lines...)
	return col.String()
}
