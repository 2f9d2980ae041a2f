package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// editHelp lists the edit prompt forms shown in the help overlay.
var editHelp = []string{
	"monthlySales[3]=12000    one element",
	"activeDeals=60           a scalar",
	"leadConversion=1,2,...   a whole series",
}

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
func (m Model) renderHelpOverlay() string {
	var lines []string
	lines = append(lines, helpTitleStyle.Render("Keyboard Shortcuts"))
	lines = append(lines, m.help.FullHelpView(m.keys.FullHelp()))
	lines = append(lines, "")
	lines = append(lines, CardTitleStyle.Render("Edit prompt"))
	for _, l := range editHelp {
		lines = append(lines, LabelStyle.Render(l))
	}
	lines = append(lines, "")
	lines = append(lines, FooterStyle.UnsetPadding().Render("Press ? or esc to close"))

	helpBox := helpBoxStyle.Render(strings.Join(lines, "\n"))

	width, height := m.layoutWidth(), m.height
	if height <= 0 {
		height = lipgloss.Height(helpBox)
	}

	// Center the help box using lipgloss.Place
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorDarkBg),
	)
}
