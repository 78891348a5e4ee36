package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Brand renders text bold with the theme's primary to secondary gradient.
func Brand(text string) string {
	return Gradient(text, true, T().Primary, T().Secondary)
}

// Gradient renders text with a horizontal color gradient, one color per
// grapheme cluster.
func Gradient(text string, bold bool, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(bold).Render(text)
	}

	colors := blend(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors[i].Hex())).
			Bold(bold).
			Render(cluster))
	}
	return b.String()
}

// blend returns size colors from from to to, blended in HCL space.
func blend(size int, from, to lipgloss.Color) []colorful.Color {
	c1 := toColorful(from)
	c2 := toColorful(to)
	colors := make([]colorful.Color, size)
	for i := range size {
		colors[i] = c1.BlendHcl(c2, float64(i)/float64(size-1)).Clamped()
	}
	return colors
}

// toColorful parses a #rrggbb color. ANSI palette indexes fall back to gray.
func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return col
}
