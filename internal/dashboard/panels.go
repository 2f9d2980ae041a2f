package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/crmdash/internal/anim"
	"github.com/rileyhilliard/crmdash/internal/charts"
	"github.com/rileyhilliard/crmdash/internal/crm"
	"github.com/rileyhilliard/crmdash/internal/ui"
)

// Animation units per terminal cell. translateY 20 slides a card two rows.
const (
	unitsPerRow    = 10.0
	unitsPerColumn = 5.0
)

// Chart body heights in rows, excluding the card title and border.
const (
	barHeight  = 9
	lineHeight = 7
	pieHeight  = 6
)

// KPI is one headline metric tile.
type KPI struct {
	Title  string
	Value  string
	Change string
}

// KPIs formats the headline metrics of s. Change texts are fixed.
func KPIs(s *crm.Snapshot) []KPI {
	return []KPI{
		{Title: "Total Customers", Value: humanize.Comma(int64(s.TotalCustomers)), Change: "+5.7%"},
		{Title: "Active Deals", Value: fmt.Sprintf("%d", s.ActiveDeals), Change: "+2.3%"},
		{Title: "Customer Satisfaction", Value: fmt.Sprintf("%.1f/5", s.CustomerSatisfaction), Change: "+0.2"},
	}
}

// renderKPIRow lays the KPI tiles side by side across width.
func renderKPIRow(kpis []KPI, width int) string {
	if len(kpis) == 0 {
		return ""
	}
	tileW := width / len(kpis)

	tiles := make([]string, 0, len(kpis))
	for i, k := range kpis {
		w := tileW
		// Last tile absorbs the rounding remainder.
		if i == len(kpis)-1 {
			w = width - tileW*(len(kpis)-1)
		}
		content := strings.Join([]string{
			LabelStyle.Render(truncate(k.Title, w-4)),
			KPIValueStyle.Render(k.Value),
			KPIChangeStyle.Render(k.Change),
		}, "\n")
		tiles = append(tiles, CardStyle.
			BorderForeground(ColorBorder).
			Width(max(w-2, 1)).
			Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// renderChartCard draws a titled chart container with its animation props
// applied: opacity fades every color, OffsetY shifts the card down.
func renderChartCard(title string, view charts.View, width, chartHeight int, props anim.Props) string {
	innerW := max(width-4, 1)
	body := charts.Render(view, innerW, chartHeight, props.Opacity)

	titleLine := CardTitleStyle.
		Foreground(charts.FadeColor(ColorTextPrimary, props.Opacity)).
		Render(title)

	card := CardStyle.
		BorderForeground(charts.FadeColor(ColorAccentDim, props.Opacity)).
		Width(max(width-2, 1)).
		Render(titleLine + "\n" + body)

	return shiftVertical(card, rowsFor(props.OffsetY))
}

// renderInfoPanel draws a static list card.
func renderInfoPanel(title string, items []string, width int) string {
	lines := []string{CardTitleStyle.Render(title)}
	if len(items) == 0 {
		lines = append(lines, LabelStyle.Render("Nothing to show"))
	}
	for _, item := range items {
		lines = append(lines, LabelStyle.Render(ui.SymbolBullet+" "+truncate(item, width-6)))
	}
	return CardStyle.
		BorderForeground(ColorBorder).
		Width(max(width-2, 1)).
		Render(strings.Join(lines, "\n"))
}

// renderAlert draws the error banner. OffsetX shakes it sideways around a
// fixed left margin, opacity fades it in.
func renderAlert(message string, width int, props anim.Props, shakeRoom int) string {
	color := charts.FadeColor(ColorAlert, props.Opacity)
	text := lipgloss.NewStyle().Foreground(color).Bold(true).Render("Error: ") +
		lipgloss.NewStyle().Foreground(charts.FadeColor(ColorTextPrimary, props.Opacity)).Render(message)

	margin := max(shakeRoom+colsFor(props.OffsetX), 0)
	return AlertStyle.
		BorderForeground(color).
		Width(max(width-2*shakeRoom-2, 1)).
		MarginLeft(margin).
		Render(text)
}

func rowsFor(offsetY float64) int {
	return int(math.Round(offsetY / unitsPerRow))
}

func colsFor(offsetX float64) int {
	return int(math.Round(offsetX / unitsPerColumn))
}

// shiftVertical moves a block down (rows > 0) or up (rows < 0) inside its
// own height, so the surrounding layout does not move.
func shiftVertical(block string, rows int) string {
	if rows == 0 {
		return block
	}
	lines := strings.Split(block, "\n")
	n := len(lines)
	if rows > n {
		rows = n
	}
	if rows < -n {
		rows = -n
	}

	blank := strings.Repeat(" ", lipgloss.Width(block))
	out := make([]string, 0, n)
	if rows > 0 {
		for i := 0; i < rows; i++ {
			out = append(out, blank)
		}
		out = append(out, lines[:n-rows]...)
	} else {
		out = append(out, lines[-rows:]...)
		for i := 0; i < -rows; i++ {
			out = append(out, blank)
		}
	}
	return strings.Join(out, "\n")
}

// truncate shortens s to at most w cells, marking the cut with an ellipsis.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > w {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
