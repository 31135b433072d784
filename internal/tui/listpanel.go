package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pengelbrecht/clipreview/internal/research"
)

const themesPlaceholder = "Themes are not available yet."

// ListPanel is the left panel: a tab bar plus the list for the active tab.
//
// The only state it owns is the active tab and the keyboard cursor of each
// list. Which block or participant is selected belongs to the host; the
// panel reports picks with BlockSelectedMsg and ParticipantSelectedMsg.
type ListPanel struct {
	activeTab    ListTab
	results      list.Model
	participants list.Model
	focused      bool
	width        int
	height       int
}

// NewListPanel creates a list panel showing the given tab.
func NewListPanel(blocks []research.ContentBlock, participants []research.Participant, initial ListTab) ListPanel {
	if !initial.valid() {
		initial = TabResults
	}

	p := ListPanel{
		activeTab:    initial,
		results:      newEntryList(blockItems(blocks)),
		participants: newEntryList(participantItems(participants)),
		focused:      true,
	}
	p.SetSize(defaultListWidth, minHeight)
	return p
}

func newEntryList(items []list.Item) list.Model {
	l := list.New(items, itemDelegate{}, defaultListWidth, minHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func blockItems(blocks []research.ContentBlock) []list.Item {
	items := make([]list.Item, len(blocks))
	for i, b := range blocks {
		items[i] = blockItem{block: b}
	}
	return items
}

func participantItems(participants []research.Participant) []list.Item {
	items := make([]list.Item, len(participants))
	for i, p := range participants {
		items[i] = participantItem{participant: p}
	}
	return items
}

// ActiveTab returns the tab currently shown.
func (p ListPanel) ActiveTab() ListTab {
	return p.activeTab
}

// SetFocused toggles the keyboard cursor.
func (p *ListPanel) SetFocused(focused bool) {
	p.focused = focused
}

// SetSize sets the inner size of the panel.
func (p *ListPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	listHeight := height - 2 // tab bar + spacer
	if listHeight < 1 {
		listHeight = 1
	}
	p.results.SetSize(width, listHeight)
	p.participants.SetSize(width, listHeight)
}

// current returns the list behind the active tab, or nil for tabs without one.
func (p *ListPanel) current() *list.Model {
	switch p.activeTab {
	case TabResults:
		return &p.results
	case TabParticipants:
		return &p.participants
	default:
		return nil
	}
}

// CursorUp moves the cursor of the active list.
func (p *ListPanel) CursorUp() {
	if l := p.current(); l != nil {
		l.CursorUp()
	}
}

// CursorDown moves the cursor of the active list.
func (p *ListPanel) CursorDown() {
	if l := p.current(); l != nil {
		l.CursorDown()
	}
}

// MoveParticipantCursor puts the participants cursor on index i.
func (p *ListPanel) MoveParticipantCursor(i int) {
	if i >= 0 && i < len(p.participants.Items()) {
		p.participants.Select(i)
	}
}

// Activate reports the entry under the cursor as selected.
func (p ListPanel) Activate() tea.Cmd {
	l := p.current()
	if l == nil {
		return nil
	}

	switch item := l.SelectedItem().(type) {
	case blockItem:
		id := item.ID()
		return func() tea.Msg { return BlockSelectedMsg{ID: id} }
	case participantItem:
		id := item.ID()
		return func() tea.Msg { return ParticipantSelectedMsg{ID: id} }
	default:
		return nil
	}
}

// HandleKey applies list navigation keys. The returned bool reports whether
// the key was consumed.
func (p *ListPanel) HandleKey(msg tea.KeyMsg, keys KeyMap) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Up):
		p.CursorUp()
	case key.Matches(msg, keys.Down):
		p.CursorDown()
	case key.Matches(msg, keys.Select):
		return p.Activate(), true
	default:
		return nil, false
	}
	return nil, true
}

// View renders the tab bar and the active list. sel decides which row is
// drawn as selected.
func (p ListPanel) View(sel Selection) string {
	bar := p.renderTabBar(p.width)

	var body string
	switch p.activeTab {
	case TabResults:
		body = p.renderList(p.results, sel.SelectedBlockID, "No results yet.")
	case TabParticipants:
		body = p.renderList(p.participants, sel.SelectedParticipantID, "No participants yet.")
	default:
		body = placeholderStyle.Render(themesPlaceholder)
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar, "", body)
}

func (p ListPanel) renderList(l list.Model, selectedID, empty string) string {
	if len(l.Items()) == 0 {
		return placeholderStyle.Render(empty)
	}
	l.SetDelegate(itemDelegate{selectedID: selectedID, focused: p.focused})
	return l.View()
}
