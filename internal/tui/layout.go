package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Layout constants
const (
	defaultListWidth = 40
	minWidth         = 60
	minHeight        = 12
	headerHeight     = 1
	footerHeight     = 1
)

// Color palette
var (
	primaryColor   = lipgloss.Color("#0568FD") // Accent blue
	secondaryColor = lipgloss.Color("86")      // Cyan
	mutedColor     = lipgloss.Color("241")     // Gray
	textColor      = lipgloss.Color("252")
	successColor   = lipgloss.Color("78")  // Green
	warningColor   = lipgloss.Color("214") // Amber
	surfaceColor   = lipgloss.Color("236")
)

// Panel styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	listPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor)

	detailPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(mutedColor)

	focusedBorderColor = secondaryColor

	activeTabStyle = lipgloss.NewStyle().
			Background(surfaceColor).
			Foreground(primaryColor).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(textColor)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true).
				Padding(1, 1)

	// Footer styles
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	descStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// renderHeader renders the title line with an optional status message.
func (m Model) renderHeader() string {
	left := headerStyle.Render("▶ clipreview")

	right := ""
	switch {
	case m.status != "":
		right = statusStyle.Render(m.status)
	case m.updateNotice != "":
		right = descStyle.Render(m.updateNotice)
	}

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if padding < 1 {
		padding = 1
	}
	return left + strings.Repeat(" ", padding) + right
}

// renderMainContent renders the list and detail panels side by side.
func (m Model) renderMainContent() string {
	height := m.bodyHeight()

	listView := m.list.View(m.selection)
	detailView := m.detail.View()

	listStyle := listPanelStyle
	detailStyle := detailPanelStyle
	if m.focus == PaneList {
		listStyle = listStyle.BorderForeground(focusedBorderColor)
	} else {
		detailStyle = detailStyle.BorderForeground(focusedBorderColor)
	}

	left := listStyle.
		Width(m.listWidth - 2).
		Height(height - 2).
		Render(listView)

	right := detailStyle.
		Width(m.detailWidth() - 2).
		Height(height - 2).
		Render(detailView)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// bodyHeight is the height available to the two panels, borders included.
func (m Model) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < minHeight {
		h = minHeight
	}
	return h
}

// detailWidth is the width of the detail panel, borders included.
func (m Model) detailWidth() int {
	w := m.width - m.listWidth
	if w < 30 {
		w = 30
	}
	return w
}

// renderFooter renders the footer with keybindings.
func (m Model) renderFooter() string {
	return footerStyle.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// newHelp returns the footer help model styled like the rest of the screen.
func newHelp() help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = descStyle
	h.Styles.Ellipsis = descStyle
	return h
}

// Helper functions

func join(items []string, sep string) []string {
	if len(items) == 0 {
		return nil
	}
	result := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			result = append(result, sep)
		}
		result = append(result, item)
	}
	return result
}

// Help overlay styles
var (
	helpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Padding(1, 2).
				Background(lipgloss.Color("235"))

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true).
			Width(12)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// renderHelpOverlay renders the key binding reference centered over background.
func (m Model) renderHelpOverlay(background string) string {
	title := helpTitleStyle.Render("Keyboard Shortcuts")

	var lines []string
	for _, group := range m.keys.FullHelp() {
		seen := map[string]bool{}
		for _, b := range group {
			h := b.Help()
			if seen[h.Key] {
				continue
			}
			seen[h.Key] = true
			lines = append(lines, helpKeyStyle.Render(h.Key)+helpDescStyle.Render(h.Desc))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	overlay := helpOverlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))

	x := (m.width - lipgloss.Width(overlay)) / 2
	y := (m.height - lipgloss.Height(overlay)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return placeOverlay(x, y, overlay, background)
}

// placeOverlay places a foreground block on top of a background at the given
// position. Widths are measured without escape codes, so styled backgrounds
// keep their width.
func placeOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	fgW := 0
	for _, l := range fgLines {
		fgW = max(fgW, ansi.StringWidth(l))
	}

	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}

	for i, fgLine := range fgLines {
		bgLine := bgLines[y+i]
		w := ansi.StringWidth(bgLine)
		if w < x+fgW {
			bgLine += strings.Repeat(" ", x+fgW-w)
			w = x + fgW
		}
		if n := ansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		}

		bgLines[y+i] = ansi.Cut(bgLine, 0, x) + fgLine + ansi.Cut(bgLine, x+fgW, w)
	}

	return strings.Join(bgLines, "\n")
}
