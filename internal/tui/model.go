package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/pengelbrecht/clipreview/internal/logging"
	"github.com/pengelbrecht/clipreview/internal/research"
)

// Model is the main Bubble Tea model. It hosts the selection state and the
// current participant index and wires the two panels together.
type Model struct {
	data research.Dataset

	// Host-owned state
	selection Selection
	current   int

	// Panels
	list   ListPanel
	detail DetailPanel
	focus  Pane

	// UI state
	keys         KeyMap
	help         help.Model
	showHelp     bool
	quitting     bool
	ready        bool
	status       string
	updateNotice string

	// Dimensions
	width     int
	height    int
	listWidth int

	log zerolog.Logger
}

// New creates the review model.
func New(cfg Config) Model {
	listWidth := cfg.ListWidth
	if listWidth <= 0 {
		listWidth = defaultListWidth
	}

	m := Model{
		data:         cfg.Dataset,
		list:         NewListPanel(cfg.Dataset.Blocks, cfg.Dataset.Participants, cfg.InitialTab),
		detail:       NewDetailPanel(),
		focus:        PaneList,
		keys:         DefaultKeyMap(),
		help:         newHelp(),
		updateNotice: cfg.UpdateNotice,
		listWidth:    listWidth,
		width:        minWidth,
		height:       minHeight,
		log:          logging.Component(cfg.Logger, "tui"),
	}
	m.selection.ActiveListTab = m.list.ActiveTab()

	m.log.Info().
		Int("blocks", len(cfg.Dataset.Blocks)).
		Int("participants", len(cfg.Dataset.Participants)).
		Str("tab", m.list.ActiveTab().String()).
		Msg("review screen created")

	m.logUnknownResponses()
	m.resize()
	return m
}

// logUnknownResponses records timeline entries that will not be rendered.
func (m Model) logUnknownResponses() {
	for _, p := range m.data.Participants {
		for i, r := range p.Responses {
			if u, ok := r.(research.Unknown); ok {
				m.log.Debug().
					Str("participant", p.ID).
					Int("position", i).
					Str("type", u.Type).
					Msg("skipping unknown response type")
			}
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selection returns a snapshot of the selection state.
func (m Model) Selection() Selection {
	sel := m.selection
	sel.ActiveListTab = m.list.ActiveTab()
	return sel
}

// CurrentIndex returns the index of the participant in the detail panel.
func (m Model) CurrentIndex() int {
	return m.current
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, minWidth)
		m.height = max(msg.Height, minHeight)
		m.ready = true
		m.resize()

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case BlockSelectedMsg:
		b, ok := m.data.Block(msg.ID)
		if !ok {
			m.log.Warn().Str("block", msg.ID).Msg("selected block not in dataset")
			break
		}
		m.selection.SelectedBlockID = b.ID
		m.log.Info().Str("block", b.ID).Str("title", b.Title).Msg("block selected")

	case ParticipantSelectedMsg:
		idx := m.data.ParticipantIndex(msg.ID)
		if idx < 0 {
			m.log.Warn().Str("participant", msg.ID).Msg("selected participant not in dataset")
			break
		}
		m.selection.SelectedParticipantID = msg.ID
		m.setCurrent(idx)
		m.log.Info().Str("participant", msg.ID).Int("index", idx).Msg("participant selected")

	case PrevParticipantMsg:
		m.navigate(-1)

	case NextParticipantMsg:
		m.navigate(1)

	case PlayRequestedMsg:
		if p, ok := participantAt(m.data.Participants, msg.Index); ok {
			m.status = fmt.Sprintf("%s Video playback is not available (participant %s, %s)",
				glyphPlay, p.ParticipantID, p.VideoDuration)
			m.log.Info().Str("participant", p.ID).Msg("video playback requested")
		}
	}

	m.selection.ActiveListTab = m.list.ActiveTab()
	m.detail.Refresh(m.data.Participants)
	return m, cmd
}

// handleKey routes a key press to the host, the focused panel, or the
// detail panel's global bindings.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return tea.Quit
		}
		m.showHelp = false
		return nil
	}

	// Any key clears a transient status message.
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return nil
	case key.Matches(msg, m.keys.SwitchPane):
		m.setFocus(1 - m.focus)
		return nil
	case key.Matches(msg, m.keys.TabOne):
		m.selectTab(TabResults)
		return nil
	case key.Matches(msg, m.keys.TabTwo):
		m.selectTab(TabParticipants)
		return nil
	case key.Matches(msg, m.keys.TabThree):
		m.selectTab(TabThemes)
		return nil
	case key.Matches(msg, m.keys.PrevTab):
		if m.list.PrevTab() {
			m.log.Debug().Str("tab", m.list.ActiveTab().String()).Msg("tab changed")
		}
		return nil
	case key.Matches(msg, m.keys.NextTab):
		if m.list.NextTab() {
			m.log.Debug().Str("tab", m.list.ActiveTab().String()).Msg("tab changed")
		}
		return nil
	case key.Matches(msg, m.keys.ToggleFilter):
		m.detail.ToggleFilter()
		m.log.Debug().Str("filter", m.detail.Filter().String()).Msg("response filter changed")
		return nil
	}

	if m.focus == PaneList {
		if cmd, ok := m.list.HandleKey(msg, m.keys); ok {
			return cmd
		}
	}

	cmd, _ := m.detail.HandleKey(msg, m.keys)
	return cmd
}

func (m *Model) selectTab(tab ListTab) {
	if m.list.SelectTab(tab) {
		m.log.Debug().Str("tab", tab.String()).Msg("tab changed")
	}
}

func (m *Model) setFocus(p Pane) {
	m.focus = p
	m.list.SetFocused(p == PaneList)
	m.detail.SetFocused(p == PaneDetail)
}

// setCurrent shows participant i in the detail panel.
func (m *Model) setCurrent(i int) {
	m.current = i
	m.detail.SetIndex(i)
	m.list.MoveParticipantCursor(i)
}

// navigate moves the current participant by delta. Moving past either end
// is a no-op. Returns true if the participant changed.
func (m *Model) navigate(delta int) bool {
	next := m.current + delta
	if next < 0 || next >= len(m.data.Participants) {
		return false
	}

	m.setCurrent(next)
	m.selection.SelectedParticipantID = m.data.Participants[next].ID
	m.log.Info().
		Str("participant", m.data.Participants[next].ID).
		Int("index", next).
		Msg("navigated")
	return true
}

// resize recomputes panel sizes from the window size.
func (m *Model) resize() {
	m.help.Width = m.width - 2
	bodyHeight := m.bodyHeight()
	m.list.SetSize(m.listWidth-2, bodyHeight-2)
	m.detail.SetSize(m.detailWidth()-2, bodyHeight-2)
	m.detail.Refresh(m.data.Participants)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading...\n"
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderMainContent(),
		m.renderFooter(),
	)

	if m.showHelp {
		return m.renderHelpOverlay(view)
	}
	return view
}
