package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/pengelbrecht/clipreview/internal/research"
)

// listEntry is a row of the left panel: a content block or a participant.
type listEntry interface {
	list.Item
	ID() string
	Title() string
	Description() string
}

// blockItem implements listEntry for content blocks.
type blockItem struct {
	block research.ContentBlock
}

func (b blockItem) ID() string          { return b.block.ID }
func (b blockItem) Title() string       { return b.block.Title }
func (b blockItem) FilterValue() string { return b.block.Title }

func (b blockItem) Description() string {
	parts := make([]string, 0, 2)
	if b.block.Summary != "" {
		parts = append(parts, b.block.Summary)
	}
	if b.block.ResponseCount > 0 {
		parts = append(parts, fmt.Sprintf("%d responses", b.block.ResponseCount))
	}
	return strings.Join(parts, " • ")
}

// participantItem implements listEntry for participants.
type participantItem struct {
	participant research.Participant
}

func (p participantItem) ID() string          { return p.participant.ID }
func (p participantItem) FilterValue() string { return p.participant.ParticipantID }

func (p participantItem) Title() string {
	return "Participant " + p.participant.ParticipantID
}

func (p participantItem) Description() string {
	return fmt.Sprintf("%s • %s • %d responses",
		p.participant.Status.Label(), p.participant.VideoDuration, len(p.participant.Responses))
}

// List row styles
var (
	rowTitleStyle = lipgloss.NewStyle().
			Foreground(textColor)

	rowSelectedTitleStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	rowDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	rowMarkerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	rowCursorStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)
)

// renderListItem renders one two-line row. selected marks the entry the host
// has picked; cursor marks the row under the keyboard cursor.
func renderListItem(e listEntry, selected, cursor bool, width int) string {
	marker := " "
	if selected {
		marker = rowMarkerStyle.Render(glyphSelected)
	}
	pointer := " "
	if cursor {
		pointer = rowCursorStyle.Render(glyphCursor)
	}

	icon := iconFigure(entryIcon(e), "secondary")

	textWidth := width - 5
	if textWidth < 4 {
		textWidth = 4
	}

	titleStyle := rowTitleStyle
	if selected {
		titleStyle = rowSelectedTitleStyle
	}

	title := titleStyle.Render(truncate.StringWithTail(e.Title(), uint(textWidth), "…"))
	desc := rowDescStyle.Render(truncate.StringWithTail(e.Description(), uint(textWidth), "…"))

	return marker + pointer + icon + " " + title + "\n" +
		marker + "   " + desc
}

func entryIcon(e listEntry) string {
	switch e := e.(type) {
	case blockItem:
		if e.block.Kind != "" {
			return e.block.Kind
		}
		return "prototype-test"
	case participantItem:
		return "user"
	default:
		return ""
	}
}

// itemDelegate renders list rows through renderListItem.
type itemDelegate struct {
	selectedID string
	focused    bool
}

func (d itemDelegate) Height() int                             { return 2 }
func (d itemDelegate) Spacing() int                            { return 1 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	e, ok := item.(listEntry)
	if !ok {
		return
	}
	cursor := d.focused && index == m.Index()
	_, _ = fmt.Fprint(w, renderListItem(e, e.ID() == d.selectedID, cursor, m.Width()))
}
