package login

import tea "github.com/charmbracelet/bubbletea"

const failureText = "Oops, we had a problem communicating with our services. " +
	"This might be because you lost connectivity."

// Failure is shown after the client failed to reach its services. It always
// renders one banner and the Reload and Send us feedback buttons.
type Failure struct {
	keys keyMap
	ring focusRing
}

// NewFailure binds the two recovery actions.
func NewFailure(onRetry, onFeedback Action) *Failure {
	return &Failure{
		keys: newKeyMap(),
		ring: newFocusRing(
			Control{Label: "Reload", Kind: ControlPrimary, action: onRetry},
			Control{Label: "Send us feedback", Kind: ControlSecondary, action: onFeedback},
		),
	}
}

func (f *Failure) Title() string { return "failure" }

func (f *Failure) Init() tea.Cmd { return nil }

func (f *Failure) Unmount() {}

// Banners returns the banners on screen.
func (f *Failure) Banners() []Banner {
	return []Banner{{Kind: BannerError, Prefix: failureText}}
}

// Controls returns the activatable elements on screen.
func (f *Failure) Controls() []Control { return f.ring.snapshot() }

func (f *Failure) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		cmd, _ := f.ring.handleKey(msg, f.keys)
		return f, cmd
	}
	return f, nil
}

func (f *Failure) View(width, height int) string {
	top := newColumn(width)
	top.gap(bannerMarginTop)
	for _, b := range f.Banners() {
		top.stretch(b.render(top.width))
	}

	body := newColumn(width)
	body.center(logoLoggedOutStyle.Render(logoArt))
	body.gap(marginXLarge)
	body.center(f.ring.renderRow(rows(marginSmall)*2, 0, 1))
	body.gap(marginSmall)
	body.center(helpLine(f.keys))

	if height <= 0 {
		return top.String() + "\n" + body.String()
	}
	rest := height - len(top.lines)
	if rest < 1 {
		rest = 1
	}
	return top.String() + "\n" + placeCenter(body, rest)
}
