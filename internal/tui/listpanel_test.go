package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pengelbrecht/clipreview/internal/research"
)

func newTestListPanel() ListPanel {
	ds := research.Fixtures()
	p := NewListPanel(ds.Blocks, ds.Participants, TabResults)
	p.SetSize(38, 40)
	return p
}

func TestParseListTab(t *testing.T) {
	for _, tab := range listTabs {
		got, err := ParseListTab(tab.String())
		require.NoError(t, err)
		assert.Equal(t, tab, got)
	}

	_, err := ParseListTab("insights")
	assert.Error(t, err)
}

func TestNewListPanelInvalidTab(t *testing.T) {
	p := NewListPanel(nil, nil, ListTab(7))
	assert.Equal(t, TabResults, p.ActiveTab())
}

func TestSelectTab(t *testing.T) {
	p := newTestListPanel()

	assert.False(t, p.SelectTab(TabResults), "already active")
	assert.True(t, p.SelectTab(TabThemes))
	assert.Equal(t, TabThemes, p.ActiveTab())
	assert.False(t, p.SelectTab(ListTab(-1)))
	assert.Equal(t, TabThemes, p.ActiveTab())

	assert.True(t, p.NextTab())
	assert.Equal(t, TabResults, p.ActiveTab())
	assert.True(t, p.PrevTab())
	assert.Equal(t, TabThemes, p.ActiveTab())
}

func TestTabBar(t *testing.T) {
	p := newTestListPanel()
	bar := ansi.Strip(p.renderTabBar(38))

	assert.True(t, strings.HasPrefix(bar, "─[Results]─[Participants]─[Themes]"))
	assert.Equal(t, 38, ansi.StringWidth(bar))
}

func TestListPanelMarksSelection(t *testing.T) {
	p := newTestListPanel()

	out := ansi.Strip(p.View(Selection{SelectedBlockID: "block-3"}))
	assert.Equal(t, 2, strings.Count(out, glyphSelected), "both lines of the picked row are marked")

	out = ansi.Strip(p.View(Selection{}))
	assert.NotContains(t, out, glyphSelected)

	// A participant pick does not mark anything on the results tab.
	out = ansi.Strip(p.View(Selection{SelectedParticipantID: "participant-1"}))
	assert.NotContains(t, out, glyphSelected)

	p.SelectTab(TabParticipants)
	out = ansi.Strip(p.View(Selection{SelectedParticipantID: "participant-1"}))
	assert.Equal(t, 2, strings.Count(out, glyphSelected))
	assert.Contains(t, out, "Participant 23338")
}

func TestListPanelActivate(t *testing.T) {
	p := newTestListPanel()

	p.CursorDown()
	cmd := p.Activate()
	require.NotNil(t, cmd)
	assert.Equal(t, BlockSelectedMsg{ID: "block-2"}, cmd())

	p.SelectTab(TabParticipants)
	p.MoveParticipantCursor(2)
	cmd = p.Activate()
	require.NotNil(t, cmd)
	assert.Equal(t, ParticipantSelectedMsg{ID: "participant-3"}, cmd())

	// Out of range moves are ignored.
	p.MoveParticipantCursor(9)
	assert.Equal(t, ParticipantSelectedMsg{ID: "participant-3"}, p.Activate()())

	p.SelectTab(TabThemes)
	assert.Nil(t, p.Activate())
}

func TestListPanelEmpty(t *testing.T) {
	p := NewListPanel(nil, nil, TabResults)
	assert.Contains(t, ansi.Strip(p.View(Selection{})), "No results yet.")
	assert.Nil(t, p.Activate())

	p.SelectTab(TabParticipants)
	assert.Contains(t, ansi.Strip(p.View(Selection{})), "No participants yet.")

	p.SelectTab(TabThemes)
	assert.Contains(t, ansi.Strip(p.View(Selection{})), themesPlaceholder)
}

func TestListPanelDoesNotMutateInputs(t *testing.T) {
	ds := research.Fixtures()
	p := NewListPanel(ds.Blocks, ds.Participants, TabResults)
	p.CursorDown()
	_ = p.Activate()
	p.SelectTab(TabParticipants)
	_ = p.View(Selection{SelectedParticipantID: "participant-2"})

	assert.Equal(t, research.Fixtures(), ds)
}

func TestRenderListItem(t *testing.T) {
	block := blockItem{block: research.ContentBlock{
		ID:            "b",
		Title:         "Book a room",
		Kind:          "prototype-test",
		Summary:       "Mission success rate",
		ResponseCount: 24,
	}}

	out := ansi.Strip(renderListItem(block, false, true, 60))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], glyphCursor)
	assert.Contains(t, lines[0], "Book a room")
	assert.Contains(t, lines[1], "Mission success rate • 24 responses")
	assert.NotContains(t, out, glyphSelected)

	participant := participantItem{participant: research.Fixtures().Participants[2]}
	out = ansi.Strip(renderListItem(participant, true, false, 60))
	assert.Contains(t, out, "Participant 23356")
	assert.Contains(t, out, "In progress • 00:48 • 1 responses")
	assert.Contains(t, out, glyphSelected)
	assert.NotContains(t, out, glyphCursor)
}

func TestRenderListItemTruncates(t *testing.T) {
	block := blockItem{block: research.ContentBlock{ID: "b", Title: strings.Repeat("x", 80)}}

	for _, line := range strings.Split(ansi.Strip(renderListItem(block, true, true, 30)), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 30)
	}
}
