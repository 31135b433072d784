package tui

import "github.com/charmbracelet/lipgloss"

// Glyphs used by the response cards and list rows.
const (
	glyphDot        = "●"
	glyphClock      = "⏱"
	glyphPlay       = "▶"
	glyphScreenshot = "▤"
	glyphStarFilled = "★"
	glyphStarEmpty  = "☆"
	glyphSelected   = "▌"
	glyphCursor     = "›"
)

var iconGlyphs = map[string]string{
	"prototype-test": "▣",
	"star":           "✶",
	"user":           "◉",
	"open-question":  "❝",
	"opinion-scale":  "≡",
}

var iconColors = map[string]lipgloss.Color{
	"primary":   primaryColor,
	"secondary": secondaryColor,
	"yellow":    warningColor,
	"green":     successColor,
}

// iconFigure renders a named icon in its color. Unknown names fall back to a
// neutral square so a card never loses its leading figure.
func iconFigure(name, color string) string {
	glyph, ok := iconGlyphs[name]
	if !ok {
		glyph = "■"
	}
	c, ok := iconColors[color]
	if !ok {
		c = mutedColor
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(glyph)
}
