// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/perihelion/starflight/internal/db"
	"github.com/perihelion/starflight/internal/i18n"
	"github.com/perihelion/starflight/internal/model"
	"github.com/perihelion/starflight/internal/report"
)

// logbookModel shows the logbook of a single mission in a scrollable viewport.
type logbookModel struct {
	mission  model.Mission
	viewport viewport.Model
	err      error
}

func newLogbookModel(mission model.Mission) logbookModel {
	m := logbookModel{mission: mission}
	logs, err := db.GetMissionLogs(mission.ID)
	if err != nil {
		m.err = err
		return m
	}
	return newLogbookModelWithData(mission, logs)
}

// newLogbookModelWithData builds the view from an explicit logbook.
func newLogbookModelWithData(mission model.Mission, logs []model.MissionLogEntry) logbookModel {
	m := logbookModel{mission: mission}
	m.viewport = viewport.New(80, 20)
	m.viewport.SetContent(logbookContent(mission, logs))
	return m
}

// logbookContent renders the summary block and the history table.
func logbookContent(mission model.Mission, logs []model.MissionLogEntry) string {
	var b strings.Builder
	b.WriteString(report.Summary(mission))
	b.WriteString("\n")
	if len(logs) == 0 {
		b.WriteString(helpStyle.Render(i18n.T("logbook.empty")))
	} else {
		b.WriteString(report.HistoryTable(logs))
	}
	return b.String()
}

func (m logbookModel) Init() tea.Cmd {
	return nil
}

func (m logbookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// header(3) + footer(2)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 5
		if m.viewport.Height < 1 {
			m.viewport.Height = 1
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMissionsMsg{} }
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m logbookModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error loading logbook: %v", m.err))
	}

	var b strings.Builder
	title := fmt.Sprintf("%s: %s", i18n.T("logbook.title"), m.mission.Name)
	b.WriteString(titleStyle.Render("📖 "+title) + "\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString(helpStyle.Render("\n" + i18n.T("logbook.help")))
	return b.String()
}
