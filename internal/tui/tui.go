// Package tui implements the terminal review screen for clipreview.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/pengelbrecht/clipreview/internal/research"
)

// Selection is the host-owned pick state shared by both panels. Empty ids
// mean nothing is selected.
type Selection struct {
	ActiveListTab         ListTab
	SelectedBlockID       string
	SelectedParticipantID string
}

// Pane identifies which panel receives pane-specific keys.
type Pane int

const (
	PaneList Pane = iota
	PaneDetail
)

// Message types exchanged between the panels and the host.
type (
	// BlockSelectedMsg reports that a content block was picked in the list.
	BlockSelectedMsg struct {
		ID string
	}

	// ParticipantSelectedMsg reports that a participant was picked in the list.
	ParticipantSelectedMsg struct {
		ID string
	}

	// PrevParticipantMsg asks the host to show the previous participant.
	PrevParticipantMsg struct{}

	// NextParticipantMsg asks the host to show the next participant.
	NextParticipantMsg struct{}

	// PlayRequestedMsg is sent when the video affordance is activated.
	PlayRequestedMsg struct {
		Index int
	}
)

// Config holds TUI configuration.
type Config struct {
	Dataset      research.Dataset
	InitialTab   ListTab
	ListWidth    int
	UpdateNotice string
	Logger       zerolog.Logger
}

// Run starts the review screen and blocks until the user quits or ctx is done.
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
