package charts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/crmdash/internal/ui"
)

// surface is the color everything fades into at zero opacity.
var surface = mustHex(string(ui.ColorDarkSurface))

// ParseColor reads the color strings used in view models: "#RRGGBB",
// "rgb(r, g, b)" and "rgba(r, g, b, a)". Alpha is flattened against the
// dashboard surface color.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return colorful.Hex(s)
	}

	var body string
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body = s[len("rgba(") : len(s)-1]
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body = s[len("rgb(") : len(s)-1]
	default:
		return colorful.Color{}, fmt.Errorf("unsupported color %q", s)
	}

	parts := strings.Split(body, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return colorful.Color{}, fmt.Errorf("color %q needs 3 or 4 components", s)
	}

	var comps [4]float64
	comps[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		comps[i] = v
	}

	c := colorful.Color{R: comps[0] / 255, G: comps[1] / 255, B: comps[2] / 255}.Clamped()
	return surface.BlendRgb(c, clamp01(comps[3])), nil
}

// Fade blends c toward the surface color. Opacity 1 keeps c, 0 gives the surface.
func Fade(c colorful.Color, opacity float64) lipgloss.Color {
	return lipgloss.Color(surface.BlendRgb(c, clamp01(opacity)).Clamped().Hex())
}

// FadeColor is Fade for lipgloss colors. Unparseable colors are returned as is.
func FadeColor(c lipgloss.Color, opacity float64) lipgloss.Color {
	parsed, err := ParseColor(string(c))
	if err != nil {
		return c
	}
	return Fade(parsed, opacity)
}

// colorOr parses s, falling back to the neon cyan accent.
func colorOr(s string) colorful.Color {
	c, err := ParseColor(s)
	if err != nil {
		return mustHex(string(ui.ColorNeonCyan))
	}
	return c
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
