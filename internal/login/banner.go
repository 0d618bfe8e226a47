package login

import (
	"github.com/charmbracelet/lipgloss"
)

// BannerKind selects a banner's fill color.
type BannerKind int

const (
	BannerSuccess BannerKind = iota
	BannerInfo
	BannerError
)

func (k BannerKind) String() string {
	switch k {
	case BannerSuccess:
		return "success"
	case BannerInfo:
		return "info"
	case BannerError:
		return "error"
	default:
		return "unknown"
	}
}

func (k BannerKind) color() lipgloss.Color {
	switch k {
	case BannerSuccess:
		return colorSuccess
	case BannerError:
		return colorError
	default:
		return colorInfo
	}
}

// Banner is a full-width status message. Value, when set, is rendered with
// emphasis between Prefix and Suffix.
type Banner struct {
	Kind   BannerKind
	Prefix string
	Value  string
	Suffix string
}

// Text returns the banner's message without styling.
func (b Banner) Text() string {
	return b.Prefix + b.Value + b.Suffix
}

func (b Banner) render(width int) string {
	base := bannerStyle.Background(b.Kind.color())
	text := base.UnsetPadding().UnsetAlign().Render(b.Prefix)
	if b.Value != "" {
		text += base.UnsetPadding().UnsetAlign().Inherit(bannerEmphasisStyle).Render(b.Value)
	}
	text += base.UnsetPadding().UnsetAlign().Render(b.Suffix)
	return base.Width(width).Render(text)
}

// StatusFlags describe the outcome of a previous session. They come from the
// caller and are read once per render.
type StatusFlags struct {
	// JustRevokedSelf names a device the user just revoked.
	JustRevokedSelf string
	// JustDeletedSelf names the account the user just deleted.
	JustDeletedSelf string
	// JustLoginFromRevokedDevice is set when this device was revoked
	// elsewhere.
	JustLoginFromRevokedDevice bool
}

// Any reports whether at least one flag is set.
func (f StatusFlags) Any() bool {
	return f.JustRevokedSelf != "" || f.JustDeletedSelf != "" || f.JustLoginFromRevokedDevice
}

// SelectBanners returns one banner per set flag, in fixed order. The checks
// are independent: several set flags render stacked banners.
func SelectBanners(f StatusFlags) []Banner {
	var out []Banner
	if f.JustRevokedSelf != "" {
		out = append(out, Banner{
			Kind:   BannerSuccess,
			Value:  f.JustRevokedSelf,
			Suffix: " was revoked successfully.",
		})
	}
	if f.JustDeletedSelf != "" {
		out = append(out, Banner{
			Kind:   BannerInfo,
			Prefix: "Your Keybase account ",
			Value:  f.JustDeletedSelf,
			Suffix: " has been deleted.",
		})
	}
	if f.JustLoginFromRevokedDevice {
		out = append(out, Banner{
			Kind:   BannerInfo,
			Prefix: "Your device has been revoked, please log in again.",
		})
	}
	return out
}

// introTopMargin is the intro screen's top offset, in layout units, when no
// banner is shown.
const introTopMargin = 55

// TopMargin returns the intro screen's top offset in layout units. Any banner
// collapses it to zero.
func TopMargin(f StatusFlags) int {
	if f.Any() {
		return 0
	}
	return introTopMargin
}
