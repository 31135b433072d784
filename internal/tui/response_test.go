package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pengelbrecht/clipreview/internal/research"
)

func TestRenderResponseUnknown(t *testing.T) {
	tests := []struct {
		name string
		r    research.Response
	}{
		{"unknown type", research.Unknown{Type: "poll", Fields: map[string]any{"question": "?"}}},
		{"empty unknown", research.Unknown{}},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Empty(t, renderResponse(tt.r, 60))
			})
		})
	}
}

func TestRatingSlots(t *testing.T) {
	tests := []struct {
		name      string
		rating    int
		maxRating int
		want      string
	}{
		{"four of five", 4, 5, "★★★★☆"},
		{"zero of five", 0, 5, "☆☆☆☆☆"},
		{"full", 5, 5, "★★★★★"},
		{"above max is not clamped", 7, 5, "★★★★★"},
		{"negative rating", -2, 3, "☆☆☆"},
		{"zero max", 3, 0, ""},
		{"negative max", 1, -4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := ratingSlots(tt.rating, tt.maxRating)
			assert.Len(t, slots, max(tt.maxRating, 0))
			assert.Equal(t, tt.want, ansi.Strip(strings.Join(slots, "")))
		})
	}
}

func TestRenderRating(t *testing.T) {
	out := ansi.Strip(renderResponse(research.Rating{
		Icon:      "star",
		IconColor: "yellow",
		Question:  "How would you rate the ease of use?",
		Rating:    4,
		MaxRating: 5,
	}, 60))

	assert.Contains(t, out, "How would you rate the ease of use?")
	assert.Contains(t, out, "★ ★ ★ ★ ☆")
	assert.Equal(t, 4, strings.Count(out, glyphStarFilled))
	assert.Equal(t, 1, strings.Count(out, glyphStarEmpty))
}

func TestRenderMission(t *testing.T) {
	mission := research.Mission{
		Icon:        "prototype-test",
		IconColor:   "primary",
		Title:       "Book a room",
		Status:      "Direct success",
		StatusColor: research.StatusColorGreen,
		Duration:    "42.1s",
		Screenshots: []string{"a.png", "b.png", "c.png"},
	}

	out := ansi.Strip(renderResponse(mission, 60))
	assert.Contains(t, out, "Book a room")
	assert.Contains(t, out, "Direct success • "+glyphClock+" 42.1s")
	assert.Contains(t, out, glyphDot)

	first := strings.Index(out, glyphScreenshot+" 1")
	second := strings.Index(out, glyphScreenshot+" 2")
	third := strings.Index(out, glyphScreenshot+" 3")
	require.NotEqual(t, -1, first)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
	assert.NotContains(t, out, glyphScreenshot+" 4")
}

func TestRenderMissionWithoutScreenshots(t *testing.T) {
	mission := research.Mission{
		Title:       "Find the cancellation policy",
		Status:      "Gave up",
		StatusColor: research.StatusColorNeutral,
		Duration:    "1m 12s",
	}

	out := ansi.Strip(renderResponse(mission, 60))
	assert.Contains(t, out, "Find the cancellation policy")
	assert.NotContains(t, out, glyphScreenshot)

	withEmpty := ansi.Strip(renderResponse(research.Mission{Title: "x", Screenshots: []string{}}, 60))
	assert.NotContains(t, withEmpty, glyphScreenshot)
}

func TestRenderMissionScreenshotLine(t *testing.T) {
	base := research.Mission{Title: "Book", Status: "ok", Duration: "1s"}
	with := base
	with.Screenshots = []string{"a.png"}

	assert.Equal(t,
		strings.Count(renderResponse(base, 60), "\n")+1,
		strings.Count(renderResponse(with, 60), "\n"),
		"screenshot strip adds exactly one line")
}

func TestRenderTranscript(t *testing.T) {
	out := ansi.Strip(renderResponse(research.Transcript{
		Timestamp:     "0:30",
		Text:          "Just checking the dates... alright",
		HighlightTerm: "dates",
	}, 80))

	assert.Contains(t, out, "0:30")
	assert.Contains(t, out, "Just checking the dates... alright")
}

func TestRenderTranscriptWraps(t *testing.T) {
	text := strings.Repeat("word ", 40)
	out := ansi.Strip(renderResponse(research.Transcript{Timestamp: "1:00", Text: text}, 40))

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 40)
	}
	assert.Equal(t, 40, strings.Count(out, "word"))
}

func TestIconFigureFallback(t *testing.T) {
	assert.Equal(t, "■", ansi.Strip(iconFigure("nope", "nope")))
	assert.Equal(t, "▣", ansi.Strip(iconFigure("prototype-test", "primary")))
}
