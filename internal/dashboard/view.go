package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// shakeRoom is the left margin reserved for the alert shake, in columns.
func (m Model) shakeRoom() int {
	return max(colsFor(m.cfg.Animation.Alert.Distance), 0)
}

func (m Model) layoutWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

// TwoColumn reports whether the current width uses the two-column layout.
func (m Model) TwoColumn() bool {
	return m.layoutWidth() >= BreakpointTwoColumn
}

// renderDashboard renders the complete dashboard view at time now.
func (m Model) renderDashboard(now time.Time) string {
	width := m.layoutWidth()

	sections := []string{m.renderHeader(now)}

	if msg, ok := m.store.Alert(); ok {
		props := m.engine.Props(TargetAlert, now)
		sections = append(sections, renderAlert(msg, width, props, m.shakeRoom()))
	}

	sections = append(sections, m.renderBody(width, now))

	if line := m.renderStatusLine(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderHeader renders the title bar with the refresh age.
func (m Model) renderHeader(now time.Time) string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render(m.cfg.Display.Title)

	age := int(now.Sub(m.derived.refreshedAt).Seconds())
	var updateText string
	switch {
	case m.derived.refreshes == 0:
		updateText = "placeholder data"
	case age <= 0:
		updateText = "refreshed just now"
	case age == 1:
		updateText = "refreshed 1s ago"
	default:
		updateText = fmt.Sprintf("refreshed %ds ago", age)
	}

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(" | " + updateText)

	header := HeaderStyle.Render(title + stats)
	if m.cfg.Display.Subtitle == "" {
		return header
	}
	return header + "\n" + SubtitleStyle.Render(" "+m.cfg.Display.Subtitle)
}

// renderBody lays out the two dashboard columns. Below the breakpoint the
// right column stacks under the left one; chart order stays bar, line, pie.
func (m Model) renderBody(width int, now time.Time) string {
	set := m.derived.charts
	colW := width
	if m.TwoColumn() {
		colW = (width - 1) / 2
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		renderKPIRow(KPIs(m.store.Snapshot()), colW),
		renderChartCard(set.Bar.Title, set.Bar, colW, barHeight, m.engine.Props(TargetBar, now)),
		renderChartCard(set.Line.Title, set.Line, colW, lineHeight, m.engine.Props(TargetLine, now)),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		renderChartCard(set.Pie.Title, set.Pie, colW, pieHeight, m.engine.Props(TargetPie, now)),
		renderInfoPanel("Recent Activities", m.cfg.Panels.RecentActivities, colW),
		renderInfoPanel("Top Customers", m.cfg.Panels.TopCustomers, colW),
	)

	if m.TwoColumn() {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, left, right)
}

// renderStatusLine shows the edit prompt or the last edit result.
func (m Model) renderStatusLine() string {
	if m.editing {
		return " " + m.input.View()
	}
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return StatusErrorStyle.Render(m.status)
	}
	return StatusStyle.Render(m.status)
}

// renderFooter renders the refresh action and key hints.
func (m Model) renderFooter() string {
	button := ButtonStyle.Render("Refresh CRM Data")
	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	return FooterStyle.Render(button + "  " + hints)
}
