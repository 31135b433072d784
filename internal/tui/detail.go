package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/pengelbrecht/clipreview/internal/research"
)

// ResponseFilter selects which timeline entries the detail panel shows.
type ResponseFilter int

const (
	FilterAll ResponseFilter = iota
	FilterHighlights
)

func (f ResponseFilter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterHighlights:
		return "highlights"
	default:
		return fmt.Sprintf("ResponseFilter(%d)", int(f))
	}
}

// twoColumnMinWidth is the inner width from which the video sits beside the
// timeline instead of above it.
const twoColumnMinWidth = 96

const videoWidth = 34

// Detail panel styles
var (
	participantTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(textColor)

	badgeStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(mutedColor).
			PaddingLeft(1)

	navStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	navDisabledStyle = navStyle.
				Foreground(surfaceColor).
				BorderForeground(surfaceColor)

	filterBarStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	videoStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("234")).
			Foreground(textColor).
			Width(videoWidth).
			Height(7).
			Align(lipgloss.Center, lipgloss.Center)

	durationBadgeStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("238")).
				Foreground(lipgloss.Color("#FFFFFF")).
				Padding(0, 1)

	segmentActiveStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true).
				Underline(true)

	segmentStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	actionStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)
)

// DetailPanel renders one participant: video affordance, filter control and
// the response timeline.
//
// The participant index is owned by the host and handed in with SetIndex.
// The panel owns the response filter, which falls back to FilterAll every
// time a different participant is shown.
type DetailPanel struct {
	index    int
	filter   ResponseFilter
	viewport viewport.Model
	focused  bool
	width    int
	height   int
}

// NewDetailPanel creates a panel showing the first participant, all responses.
func NewDetailPanel() DetailPanel {
	return DetailPanel{
		viewport: viewport.New(60, minHeight),
		width:    60,
		height:   minHeight,
	}
}

// Index returns the participant index last set by the host.
func (d DetailPanel) Index() int {
	return d.index
}

// SetIndex records the host's current participant index. Changing it resets
// the filter to FilterAll and scrolls back to the top.
func (d *DetailPanel) SetIndex(i int) {
	if i == d.index {
		return
	}
	d.index = i
	d.filter = FilterAll
	d.viewport.GotoTop()
}

// Filter returns the active response filter.
func (d DetailPanel) Filter() ResponseFilter {
	return d.filter
}

// SetFilter changes the response filter.
func (d *DetailPanel) SetFilter(f ResponseFilter) {
	if f != FilterAll && f != FilterHighlights {
		return
	}
	if d.filter != f {
		d.filter = f
		d.viewport.GotoTop()
	}
}

// ToggleFilter flips between all responses and highlights.
func (d *DetailPanel) ToggleFilter() {
	if d.filter == FilterAll {
		d.SetFilter(FilterHighlights)
	} else {
		d.SetFilter(FilterAll)
	}
}

// SetFocused marks the panel as the keyboard target.
func (d *DetailPanel) SetFocused(focused bool) {
	d.focused = focused
}

// SetSize sets the inner size of the panel.
func (d *DetailPanel) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.viewport.Width = width
	d.viewport.Height = height
}

// Refresh rebuilds the scrollable content from participants.
func (d *DetailPanel) Refresh(participants []research.Participant) {
	d.viewport.SetContent(d.content(participants))
}

// HandleKey applies detail pane keys. Navigation between participants is
// reported to the host as PrevParticipantMsg and NextParticipantMsg.
func (d *DetailPanel) HandleKey(msg tea.KeyMsg, keys KeyMap) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.PrevPart):
		return func() tea.Msg { return PrevParticipantMsg{} }, true
	case key.Matches(msg, keys.NextPart):
		return func() tea.Msg { return NextParticipantMsg{} }, true
	case key.Matches(msg, keys.Play):
		idx := d.index
		return func() tea.Msg { return PlayRequestedMsg{Index: idx} }, true
	}

	if !d.focused {
		return nil, false
	}

	switch {
	case key.Matches(msg, keys.ScrollUp):
		d.viewport.LineUp(1)
	case key.Matches(msg, keys.ScrollDown):
		d.viewport.LineDown(1)
	case key.Matches(msg, keys.PageUp):
		d.viewport.HalfViewUp()
	case key.Matches(msg, keys.PageDown):
		d.viewport.HalfViewDown()
	case key.Matches(msg, keys.Top):
		d.viewport.GotoTop()
	case key.Matches(msg, keys.Bottom):
		d.viewport.GotoBottom()
	default:
		return nil, false
	}
	return nil, true
}

// View renders the panel as of the last Refresh.
func (d DetailPanel) View() string {
	return d.viewport.View()
}

// participantAt returns participants[i], or the first participant when i is
// out of range. ok is false only when there are no participants.
func participantAt(participants []research.Participant, i int) (research.Participant, bool) {
	if len(participants) == 0 {
		return research.Participant{}, false
	}
	if i < 0 || i >= len(participants) {
		return participants[0], true
	}
	return participants[i], true
}

// visibleResponses applies filter to the participant's timeline without
// reordering it.
func visibleResponses(p research.Participant, filter ResponseFilter) []research.Response {
	if filter == FilterHighlights {
		return p.Highlights()
	}
	return p.Responses
}

// content builds the full scrollable body for the current participant.
func (d DetailPanel) content(participants []research.Participant) string {
	p, ok := participantAt(participants, d.index)
	if !ok {
		return placeholderStyle.Render("No participants to show.")
	}

	// The displayed position follows the clamp in participantAt.
	pos := d.index
	if pos < 0 || pos >= len(participants) {
		pos = 0
	}

	sections := []string{
		filterBarStyle.Render("⚲ Add filters"),
		d.renderParticipantHeader(p, pos, len(participants)),
	}

	if d.width >= twoColumnMinWidth {
		timelineWidth := d.width - videoWidth - 2
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			renderVideo(p),
			"  ",
			d.renderTimeline(p, timelineWidth),
		))
	} else {
		sections = append(sections, renderVideo(p), d.renderTimeline(p, d.width))
	}

	return strings.Join(sections, "\n\n")
}

func (d DetailPanel) renderParticipantHeader(p research.Participant, pos, total int) string {
	title := iconFigure("user", "secondary") + " " +
		participantTitleStyle.Render("Participant "+p.ParticipantID)
	badge := badgeStyle.Render(p.Status.Label())

	prev, next := navStyle, navStyle
	if pos == 0 {
		prev = navDisabledStyle
	}
	if pos >= total-1 {
		next = navDisabledStyle
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Center,
		prev.Render("‹"),
		captionStyle.Render(fmt.Sprintf(" %d/%d ", pos+1, total)),
		next.Render("›"),
	)

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
	gap := d.width - lipgloss.Width(left) - lipgloss.Width(nav)
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, left, nav)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), nav)
}

// renderVideo renders the play affordance. Playback itself is not supported.
func renderVideo(p research.Participant) string {
	frame := videoStyle.Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Render(glyphPlay) +
			"\n\n" + durationBadgeStyle.Render(p.VideoDuration),
	)

	thumb := p.VideoThumbnailURL
	if thumb == "" {
		thumb = "no thumbnail"
	}
	caption := captionStyle.Width(videoWidth).Render(truncateURL(thumb, videoWidth))

	return lipgloss.JoinVertical(lipgloss.Left,
		frame,
		caption,
		lipgloss.NewStyle().Width(videoWidth).Align(lipgloss.Right).Render(actionStyle.Render("✎ Highlight")),
	)
}

func truncateURL(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// renderFilterControl renders the all/highlights segmented control. The
// highlight count is computed from the participant's timeline.
func (d DetailPanel) renderFilterControl(p research.Participant) string {
	all := "All responses"
	hl := fmt.Sprintf("Highlights %d", research.HighlightCount(p.Responses))

	if d.filter == FilterHighlights {
		return segmentStyle.Render(all) + "   " + segmentActiveStyle.Render(hl)
	}
	return segmentActiveStyle.Render(all) + "   " + segmentStyle.Render(hl)
}

func (d DetailPanel) renderTimeline(p research.Participant, width int) string {
	parts := []string{d.renderFilterControl(p)}

	for _, r := range visibleResponses(p, d.filter) {
		if card := renderResponse(r, width); card != "" {
			parts = append(parts, card)
		}
	}

	if len(parts) == 1 {
		empty := "No responses recorded."
		if d.filter == FilterHighlights {
			empty = "No highlights for this participant."
		}
		parts = append(parts, placeholderStyle.Render(empty))
	}

	return lipgloss.JoinVertical(lipgloss.Left, join(parts, "")...)
}
