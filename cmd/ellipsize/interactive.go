// ABOUTME: Bubble Tea viewer that re-truncates the text on every resize
// ABOUTME: Status bar shows the current ellipsized state and flip count

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/ellipsize/pkg/ellipsize"
)

var statusStyle = lipgloss.NewStyle().Faint(true)

type viewerModel struct {
	view  *ellipsize.View
	flips int
}

// runInteractive blocks until the user quits the viewer.
func runInteractive(view *ellipsize.View) error {
	m := &viewerModel{view: view}

	// The listener survives for the lifetime of the viewer; the view is
	// discarded with it, so the remove func is not needed.
	if _, err := view.AddEllipsizeListener(func(bool) {
		m.flips++
	}); err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Reserve one row for the status bar.
		m.view.Resize(msg.Width, msg.Height-1)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *viewerModel) View() string {
	text, err := m.view.DisplayText()
	if err != nil {
		return statusStyle.Render(fmt.Sprintf("layout error: %v (q to quit)", err))
	}

	ellipsized, known := m.view.IsEllipsized()
	status := "state unknown"
	if known {
		if ellipsized {
			status = "truncated"
		} else {
			status = "complete"
		}
	}
	bar := statusStyle.Render(fmt.Sprintf("%s · %d state changes · q to quit", status, m.flips))
	return text + "\n" + bar
}
