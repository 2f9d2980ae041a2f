package charts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/crmdash/internal/ui"
)

// View is any chart view model.
type View interface {
	Kind() Kind
}

// Render draws a view model with the renderer registered for its kind.
// Opacity (0-1) fades every color toward the surface background.
func Render(v View, width, height int, opacity float64) string {
	switch vm := v.(type) {
	case Bar:
		return RenderBar(vm, width, height, opacity)
	case Pie:
		return RenderPie(vm, width, height, opacity)
	case Line:
		return RenderLine(vm, width, height, opacity)
	default:
		return ""
	}
}

// eighthBlocks are partial block characters for 1/8 vertical resolution.
var eighthBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderBar draws vertical bars, one per data point, with the labels
// underneath and the scale maximum above. Bars start at zero.
func RenderBar(b Bar, width, height int, opacity float64) string {
	n := len(b.Data)
	if n == 0 || width <= 0 || height < 3 {
		return ""
	}

	colW := width / n
	if colW < 1 {
		colW = 1
	}
	barW := colW - 1
	if barW < 1 {
		barW = 1
	}

	maxVal := 0
	for _, v := range b.Data {
		if v > maxVal {
			maxVal = v
		}
	}

	plotRows := height - 2 // scale line + label line
	levels := plotRows * 8

	barStyle := lipgloss.NewStyle().Foreground(Fade(colorOr(b.Color), opacity))
	mutedStyle := lipgloss.NewStyle().Foreground(FadeColor(ui.ColorMuted, opacity))

	var lines []string
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("max %s", humanize.Comma(int64(maxVal)))))

	filled := make([]int, n)
	for i, v := range b.Data {
		if maxVal > 0 && v > 0 {
			filled[i] = clampInt(int(normalizeValue(float64(v), 0, float64(maxVal))*float64(levels)+0.5), levels)
		}
	}

	for row := 0; row < plotRows; row++ {
		rowFromBottom := plotRows - 1 - row
		var sb strings.Builder
		for i := 0; i < n; i++ {
			eighths := filled[i] - rowFromBottom*8
			ch := eighthBlocks[clampInt(eighths, 8)]
			sb.WriteString(strings.Repeat(string(ch), barW))
			if colW > barW {
				sb.WriteString(strings.Repeat(" ", colW-barW))
			}
		}
		lines = append(lines, barStyle.Render(sb.String()))
	}

	lines = append(lines, mutedStyle.Render(labelRow(b.Labels, colW, barW)))
	return strings.Join(lines, "\n")
}

// labelRow truncates each label to fit its column.
func labelRow(labels []string, colW, barW int) string {
	var sb strings.Builder
	for _, l := range labels {
		r := []rune(l)
		if len(r) > barW {
			r = r[:barW]
		}
		sb.WriteString(string(r))
		sb.WriteString(strings.Repeat(" ", colW-len(r)))
	}
	return sb.String()
}

// RenderPie draws the segments as a proportional stacked bar (the terminal
// stand-in for a pie) followed by a legend with each share.
func RenderPie(p Pie, width, height int, opacity float64) string {
	if len(p.Data) == 0 || width <= 0 {
		return ""
	}

	widths := proportionalWidths(p.Data, width)

	legendRows := 0
	if p.Options.ShowLegend {
		legendRows = len(p.Labels)
	}
	barRows := height - legendRows
	if barRows < 1 {
		barRows = 1
	}

	var bar strings.Builder
	for i, w := range widths {
		if w <= 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(Fade(colorOr(sliceColor(p.Colors, i)), opacity))
		bar.WriteString(style.Render(strings.Repeat("█", w)))
	}

	var lines []string
	for i := 0; i < barRows; i++ {
		lines = append(lines, bar.String())
	}

	if p.Options.ShowLegend {
		total := positiveSum(p.Data)
		textStyle := lipgloss.NewStyle().Foreground(FadeColor(ui.ColorSecondary, opacity))
		for i, label := range p.Labels {
			share := 0.0
			if total > 0 && i < len(p.Data) && p.Data[i] > 0 {
				share = float64(p.Data[i]) / total * 100
			}
			swatch := lipgloss.NewStyle().Foreground(Fade(colorOr(sliceColor(p.Colors, i)), opacity)).Render("■")
			lines = append(lines, swatch+" "+textStyle.Render(fmt.Sprintf("%-11s %4.1f%%", label, share)))
		}
	}

	return strings.Join(lines, "\n")
}

// proportionalWidths splits width across values using largest remainders so
// the parts always add up to width. Negative values count as zero. Shares are
// computed in float64 so totals past the int range still split cleanly.
func proportionalWidths(values []int, width int) []int {
	out := make([]int, len(values))
	total := positiveSum(values)
	if total == 0 {
		return out
	}

	type rem struct {
		idx  int
		frac float64
	}
	used := 0
	rems := make([]rem, 0, len(values))
	for i, v := range values {
		if v <= 0 {
			continue
		}
		exact := float64(v) / total * float64(width)
		out[i] = clampInt(int(exact), width)
		used += out[i]
		rems = append(rems, rem{idx: i, frac: exact - float64(out[i])})
	}

	for left := width - used; left > 0 && len(rems) > 0; left-- {
		best := 0
		for j := range rems {
			if rems[j].frac > rems[best].frac {
				best = j
			}
		}
		out[rems[best].idx]++
		rems[best].frac = -1
	}
	return out
}

func positiveSum(values []int) float64 {
	total := 0.0
	for _, v := range values {
		if v > 0 {
			total += float64(v)
		}
	}
	return total
}

func sliceColor(colors []string, i int) string {
	if len(colors) == 0 {
		return ""
	}
	return colors[i%len(colors)]
}

// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
const brailleBase = '⠀'

// brailleDots maps [row][col] inside a cell to the pattern bit.
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// RenderLine draws the series as a braille line on a fixed 0-100 scale
// (the data are percentages), with weekday labels underneath.
func RenderLine(l Line, width, height int, opacity float64) string {
	if len(l.Data) == 0 || width <= 0 || height < 2 {
		return ""
	}

	plotRows := height - 1
	totalDots := plotRows * 4
	points := width * 2

	data := make([]float64, len(l.Data))
	for i, v := range l.Data {
		data[i] = float64(v)
	}
	resampled := resampleData(data, points)

	grid := make([][]rune, plotRows)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	set := func(x, dot int) {
		row := plotRows - 1 - dot/4
		if row < 0 || row >= plotRows {
			return
		}
		grid[row][x/2] |= rune(1) << brailleDots[3-dot%4][x%2]
	}

	prev := -1
	for x, v := range resampled {
		dot := clampInt(int(normalizeValue(v, 0, 100)*float64(totalDots-1)+0.5), totalDots-1)
		set(x, dot)
		// Connect steep segments so the line stays continuous.
		if prev >= 0 {
			lo, hi := prev, dot
			if lo > hi {
				lo, hi = hi, lo
			}
			for d := lo + 1; d < hi; d++ {
				set(x, d)
			}
		}
		prev = dot
	}

	lineStyle := lipgloss.NewStyle().Foreground(Fade(colorOr(l.BorderColor), opacity))
	mutedStyle := lipgloss.NewStyle().Foreground(FadeColor(ui.ColorMuted, opacity))

	lines := make([]string, 0, height)
	for _, row := range grid {
		lines = append(lines, lineStyle.Render(string(row)))
	}
	lines = append(lines, mutedStyle.Render(spreadLabels(l.Labels, width)))
	return strings.Join(lines, "\n")
}

// spreadLabels places labels at evenly spaced columns across width.
func spreadLabels(labels []string, width int) string {
	row := []rune(strings.Repeat(" ", width))
	n := len(labels)
	for i, label := range labels {
		pos := 0
		if n > 1 {
			pos = i * (width - 1) / (n - 1)
		}
		r := []rune(label)
		// Right-align the last label so it stays inside the row.
		if pos+len(r) > width {
			pos = width - len(r)
		}
		if pos < 0 {
			continue
		}
		copy(row[pos:], r)
	}
	return string(row)
}

// normalizeValue converts a value to 0-1 range given min/max bounds.
func normalizeValue(val, minVal, maxVal float64) float64 {
	if maxVal > minVal {
		n := (val - minVal) / (maxVal - minVal)
		if n < 0 {
			return 0
		}
		if n > 1 {
			return 1
		}
		return n
	}
	return 0.5
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// resampleData resamples data to the target size.
// Downsampling keeps the max of each bucket; upsampling interpolates linearly.
func resampleData(data []float64, targetSize int) []float64 {
	if len(data) == 0 || targetSize <= 0 {
		return nil
	}

	if len(data) == targetSize {
		return data
	}

	result := make([]float64, targetSize)

	if len(data) == 1 {
		for i := range result {
			result[i] = data[0]
		}
		return result
	}

	if len(data) > targetSize {
		bucketSize := float64(len(data)) / float64(targetSize)
		for i := 0; i < targetSize; i++ {
			start := int(float64(i) * bucketSize)
			end := int(float64(i+1) * bucketSize)
			if end > len(data) {
				end = len(data)
			}
			if start >= end {
				start = end - 1
			}

			maxVal := data[start]
			for j := start + 1; j < end; j++ {
				if data[j] > maxVal {
					maxVal = data[j]
				}
			}
			result[i] = maxVal
		}
		return result
	}

	if targetSize == 1 {
		result[0] = data[len(data)-1]
		return result
	}

	scale := float64(len(data)-1) / float64(targetSize-1)
	for i := 0; i < targetSize; i++ {
		pos := float64(i) * scale
		idx := int(pos)
		frac := pos - float64(idx)

		if idx >= len(data)-1 {
			result[i] = data[len(data)-1]
		} else {
			result[i] = data[idx]*(1-frac) + data[idx+1]*frac
		}
	}

	return result
}
