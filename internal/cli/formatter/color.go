package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisableColor forces plain output for every style, regardless of the
// terminal lipgloss detected.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// UrgencyColor returns the style for an urgency tier.
func UrgencyColor(u domain.Urgency) lipgloss.Style {
	switch u {
	case domain.UrgencyCritical:
		return StyleRed
	case domain.UrgencyUrgent:
		return StyleYellow
	case domain.UrgencyUpcoming:
		return StyleBlue
	case domain.UrgencyReady:
		return StyleGreen
	default:
		return StyleDim
	}
}

// UrgencyIndicator returns a colored tier marker such as "● CRITICAL".
func UrgencyIndicator(u domain.Urgency) string {
	if u == "" {
		return StyleDim.Render("● UNKNOWN")
	}
	return UrgencyColor(u).Render("● " + strings.ToUpper(string(u)))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Warn renders a warning line.
func Warn(text string) string {
	return StyleYellow.Render("  WARNING: " + text)
}
