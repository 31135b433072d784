package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ListTab identifies one of the left panel tabs. The set is closed.
type ListTab int

const (
	TabResults ListTab = iota
	TabParticipants
	TabThemes
)

// listTabs is the display order of the tab bar.
var listTabs = []ListTab{TabResults, TabParticipants, TabThemes}

func (t ListTab) String() string {
	switch t {
	case TabResults:
		return "results"
	case TabParticipants:
		return "participants"
	case TabThemes:
		return "themes"
	default:
		return fmt.Sprintf("ListTab(%d)", int(t))
	}
}

// Label returns the tab bar caption.
func (t ListTab) Label() string {
	switch t {
	case TabResults:
		return "Results"
	case TabParticipants:
		return "Participants"
	case TabThemes:
		return "Themes"
	default:
		return "?"
	}
}

func (t ListTab) valid() bool {
	return t >= TabResults && t <= TabThemes
}

// ParseListTab converts a config value such as "participants" to a ListTab.
func ParseListTab(s string) (ListTab, error) {
	for _, t := range listTabs {
		if t.String() == s {
			return t, nil
		}
	}
	return TabResults, fmt.Errorf("unknown list tab %q", s)
}

// -----------------------------------------------------------------------------
// Tab Switching
// -----------------------------------------------------------------------------

// SelectTab makes tab active. Selections held by the host are not touched,
// so returning to a tab still shows the earlier pick highlighted.
// Returns true if the active tab changed.
func (p *ListPanel) SelectTab(tab ListTab) bool {
	if !tab.valid() || p.activeTab == tab {
		return false
	}
	p.activeTab = tab
	return true
}

// NextTab switches to the next tab (wraps around).
func (p *ListPanel) NextTab() bool {
	return p.SelectTab(listTabs[(int(p.activeTab)+1)%len(listTabs)])
}

// PrevTab switches to the previous tab (wraps around).
func (p *ListPanel) PrevTab() bool {
	idx := int(p.activeTab) - 1
	if idx < 0 {
		idx = len(listTabs) - 1
	}
	return p.SelectTab(listTabs[idx])
}

// -----------------------------------------------------------------------------
// Tab Rendering
// -----------------------------------------------------------------------------

// renderTabBar renders the tab selector.
// Format: ─[Results]─[Participants]─[Themes]───
func (p ListPanel) renderTabBar(width int) string {
	var tabs []string
	for _, tab := range listTabs {
		tabs = append(tabs, renderSingleTab(tab, tab == p.activeTab))
	}
	bar := strings.Join(tabs, "")

	if remaining := width - lipgloss.Width(bar); remaining > 0 {
		bar += lipgloss.NewStyle().Foreground(mutedColor).Render(strings.Repeat("─", remaining))
	}
	return bar
}

// renderSingleTab renders one tab caption. Number keys select tabs in bar order.
func renderSingleTab(tab ListTab, active bool) string {
	content := tab.Label()

	var style lipgloss.Style
	if active {
		style = activeTabStyle
	} else {
		style = inactiveTabStyle
	}

	border := lipgloss.NewStyle().Foreground(mutedColor).Render("─")
	bracket := lipgloss.NewStyle().Foreground(mutedColor)
	return border + bracket.Render("[") + style.Render(content) + bracket.Render("]")
}
