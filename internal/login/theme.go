package login

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPeach    lipgloss.Color = "#fab387"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorBrand   = colorPeach
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorInfo    = colorBlue
	colorError   = colorRed
	colorMuted   = colorOverlay1
	colorOnFill  = colorCrust
)

// AllPaletteColors returns every color the login screens draw with.
func AllPaletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorPeach, colorRed, colorGreen, colorBlue, colorLavender,
		colorText, colorSubtext0, colorOverlay1, colorSurface1, colorCrust,
	}
}

// ---------------------------------------------------------------------------
// Spacing
// ---------------------------------------------------------------------------

// Margins are expressed in layout units and converted to terminal rows with
// unitsPerRow when rendered.
const (
	marginTiny   = 8
	marginSmall  = 16
	marginMedium = 24
	marginLarge  = 40
	marginXLarge = 64

	bannerMarginTop    = 20
	bannerMarginBottom = 40

	unitsPerRow = 16

	// defaultWidth is used until the host reports a window size.
	defaultWidth = 64
)

// rows converts layout units to terminal rows, rounding to nearest.
func rows(units int) int {
	if units <= 0 {
		return 0
	}
	return (units + unitsPerRow/2) / unitsPerRow
}

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	headerStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	bodyStyle   = lipgloss.NewStyle().Foreground(colorText)
	smallStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)

	logoStyle          = lipgloss.NewStyle().Foreground(colorBrand)
	logoLoggedOutStyle = lipgloss.NewStyle().Foreground(colorMuted)

	bannerStyle = lipgloss.NewStyle().
			Foreground(colorOnFill).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 2)
	bannerEmphasisStyle = lipgloss.NewStyle().Italic(true)

	primaryButtonStyle = lipgloss.NewStyle().
				Foreground(colorOnFill).
				Background(colorInfo).
				Bold(true).
				Padding(0, 2)
	secondaryButtonStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface1).
				Padding(0, 2)
	linkStyle      = lipgloss.NewStyle().Foreground(colorInfo).Underline(true)
	focusMarkStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
)

const logoArt = "▄▀▀▀▀▄\n█ ▄▀ █\n▀▄▄▄▄▀"
