package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pengelbrecht/clipreview/internal/highlight"
	"github.com/pengelbrecht/clipreview/internal/research"
)

// Response card styles
var (
	missionCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Padding(0, 1)

	ratingCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	captionStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	transcriptStyle = lipgloss.NewStyle().
			Padding(0, 1)

	transcriptTextStyle = lipgloss.NewStyle().
				Foreground(textColor)

	emphasisStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF"))

	screenshotStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Background(surfaceColor).
			Padding(0, 1)

	starFilledStyle = lipgloss.NewStyle().Foreground(warningColor)
	starEmptyStyle  = lipgloss.NewStyle().Foreground(mutedColor)
)

// renderResponse maps a timeline entry to its card. Entries it does not know
// render as the empty string.
func renderResponse(r research.Response, width int) string {
	switch r := r.(type) {
	case research.Mission:
		return renderMission(r, width)
	case research.Transcript:
		return renderTranscript(r, width)
	case research.Rating:
		return renderRating(r, width)
	case research.Unknown:
		return ""
	default:
		return ""
	}
}

// cardInnerWidth is the text width inside a bordered, padded card.
func cardInnerWidth(width int) int {
	w := width - 4
	if w < 10 {
		w = 10
	}
	return w
}

func renderMission(m research.Mission, width int) string {
	inner := cardInnerWidth(width)

	lines := []string{
		iconFigure(m.Icon, m.IconColor),
		cardTitleStyle.Render(wordwrap.String(m.Title, inner)),
		statusDot(m.StatusColor) + " " +
			captionStyle.Render(m.Status) +
			captionStyle.Render(" • ") +
			captionStyle.Render(glyphClock+" "+m.Duration),
	}
	if strip := screenshotStrip(m.Screenshots); strip != "" {
		lines = append(lines, strip)
	}

	return missionCardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func statusDot(c research.StatusColor) string {
	switch c {
	case research.StatusColorGreen:
		return lipgloss.NewStyle().Foreground(successColor).Render(glyphDot)
	default:
		return lipgloss.NewStyle().Foreground(mutedColor).Render(glyphDot)
	}
}

// screenshotStrip renders one chip per screenshot, in order.
func screenshotStrip(screenshots []string) string {
	if len(screenshots) == 0 {
		return ""
	}
	chips := make([]string, len(screenshots))
	for i := range screenshots {
		chips[i] = screenshotStyle.Render(fmt.Sprintf("%s %d", glyphScreenshot, i+1))
	}
	return strings.Join(chips, " ")
}

func renderTranscript(t research.Transcript, width int) string {
	var body strings.Builder
	for _, run := range highlight.Segments(t.Text, t.HighlightTerm) {
		if run.Emphasized {
			body.WriteString(emphasisStyle.Render(run.Text))
		} else {
			body.WriteString(transcriptTextStyle.Render(run.Text))
		}
	}

	text := wordwrap.String(body.String(), cardInnerWidth(width))
	return transcriptStyle.Render(captionStyle.Render(t.Timestamp) + "\n" + text)
}

func renderRating(r research.Rating, width int) string {
	lines := []string{
		iconFigure(r.Icon, r.IconColor),
		cardTitleStyle.Render(wordwrap.String(r.Question, cardInnerWidth(width))),
		strings.Join(ratingSlots(r.Rating, r.MaxRating), " "),
	}
	return ratingCardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// ratingSlots returns maxRating slots, left to right, the first rating of
// them filled. Values are used as given: a rating above maxRating fills every
// slot and a non-positive maxRating yields no slots.
func ratingSlots(rating, maxRating int) []string {
	var slots []string
	for i := 0; i < maxRating; i++ {
		if i < rating {
			slots = append(slots, starFilledStyle.Render(glyphStarFilled))
		} else {
			slots = append(slots, starEmptyStyle.Render(glyphStarEmpty))
		}
	}
	return slots
}
