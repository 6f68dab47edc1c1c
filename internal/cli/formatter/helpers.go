package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	titleCaser = cases.Title(language.English)
	printer    = message.NewPrinter(language.English)
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// DaysLabel turns a days-until count into "Today", "In 5d", "2d ago" and so on.
func DaysLabel(days int) string {
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DaysStyled colors DaysLabel: red when past or within three days, yellow
// within a week.
func DaysStyled(days int) string {
	text := DaysLabel(days)
	switch {
	case days <= 3:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// StatusPill returns a colored status indicator.
func StatusPill(s domain.Status) string {
	label := Label(string(s))
	switch s {
	case domain.StatusResearch:
		return StyleDim.Render("○ " + label)
	case domain.StatusQualified, domain.StatusDrafting:
		return StyleBlue.Render("◐ " + label)
	case domain.StatusStaged:
		return StyleYellow.Render("◑ " + label)
	case domain.StatusSubmitted, domain.StatusAcknowledged, domain.StatusInterview:
		return StyleGreen.Render("● " + label)
	case domain.StatusOutcome:
		return StylePurple.Render("✔ " + label)
	case domain.StatusWithdrawn:
		return StyleDim.Render("✖ " + label)
	default:
		return StyleDim.Render(string(s))
	}
}

// Label title-cases an identifier such as "identity_position".
func Label(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

// Count formats an integer with thousands separators.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// Percent formats a 0..1 ratio as a whole percentage.
func Percent(r float64) string {
	return fmt.Sprintf("%.0f%%", r*100)
}

// Score formats an optional fit score.
func Score(s *float64) string {
	if s == nil {
		return "--"
	}
	return fmt.Sprintf("%.1f", *s)
}

// Deadline formats a summary's deadline date or its undated type.
func Deadline(date *string, typ domain.DeadlineType) string {
	if date == nil {
		return Dim(string(typ))
	}
	return *date
}

// Days formats an optional days-left count.
func Days(days *int) string {
	if days == nil {
		return Dim("--")
	}
	return DaysStyled(*days)
}

// Truncate shortens s to n visible runes with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
