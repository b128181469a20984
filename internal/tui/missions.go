// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/perihelion/starflight/internal/db"
	"github.com/perihelion/starflight/internal/i18n"
	"github.com/perihelion/starflight/internal/model"
)

// missionsModel is the stored-missions browser. Enter opens the logbook of
// the selected mission.
type missionsModel struct {
	table       table.Model
	allMissions []model.Mission // Master list, unfiltered
	filter      string
	isFiltering bool
	err         error
}

func newMissionsModel() missionsModel {
	missions, err := db.GetAllMissions()
	if err != nil {
		return missionsModel{err: err}
	}
	return newMissionsModelWithData(missions)
}

// newMissionsModelWithData builds the view from an explicit mission list.
func newMissionsModelWithData(missions []model.Mission) missionsModel {
	m := missionsModel{allMissions: missions}

	columns := []table.Column{
		{Title: i18n.T("missions.header.id"), Width: 4},
		{Title: i18n.T("missions.header.name"), Width: 24},
		{Title: i18n.T("missions.header.destination"), Width: 14},
		{Title: i18n.T("missions.header.flight_time"), Width: 14},
		{Title: i18n.T("missions.header.velocity"), Width: 12},
		{Title: i18n.T("missions.header.status"), Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15), // Placeholder height
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSubtle).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorWhite).
		Background(colorHighlight).
		Bold(false)
	t.SetStyles(s)

	m.table = t
	m.rebuildTableRows()
	return m
}

// rebuildTableRows filters the master list and repopulates the table.
func (m *missionsModel) rebuildTableRows() {
	var rows []table.Row
	lowerFilter := strings.ToLower(m.filter)

	for _, mission := range m.allMissions {
		if m.filter != "" &&
			!strings.Contains(strings.ToLower(mission.Name), lowerFilter) &&
			!strings.Contains(strings.ToLower(mission.Description), lowerFilter) {
			continue
		}

		status := errorStyle.Render(i18n.T("missions.status.enroute"))
		if mission.Arrived {
			status = successStyle.Render(i18n.T("missions.status.arrived"))
		}

		rows = append(rows, table.Row{
			fmt.Sprintf("%d", mission.ID),
			mission.Name,
			fmt.Sprintf("%.3g ly", mission.DestinationLightYears),
			fmt.Sprintf("%.4g yr", mission.FlightTimeYears),
			fmt.Sprintf("%.3g c", mission.FinalVelocityC),
			status,
		})
	}
	m.table.SetRows(rows)

	if m.isFiltering {
		m.table.GotoTop()
	}
}

// selectedMission resolves the cursor row back to its mission.
func (m *missionsModel) selectedMission() (model.Mission, bool) {
	row := m.table.SelectedRow()
	if row == nil {
		return model.Mission{}, false
	}
	for _, mission := range m.allMissions {
		if fmt.Sprintf("%d", mission.ID) == row[0] {
			return mission, true
		}
	}
	return model.Mission{}, false
}

func (m missionsModel) Init() tea.Cmd {
	return nil
}

func (m *missionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// header(3) + footer(3)
		m.table.SetHeight(msg.Height - 6)
		m.table.SetWidth(msg.Width - 4)

	case tea.KeyMsg:
		if m.isFiltering {
			switch msg.Type {
			case tea.KeyEsc:
				m.isFiltering = false
				m.filter = ""
				m.rebuildTableRows()
			case tea.KeyEnter:
				m.isFiltering = false
			case tea.KeyBackspace:
				if len(m.filter) > 0 {
					m.filter = m.filter[:len(m.filter)-1]
					m.rebuildTableRows()
				}
			case tea.KeyRunes:
				m.filter += string(msg.Runes)
				m.rebuildTableRows()
			}
			return m, nil
		}

		switch msg.String() {
		case "/":
			m.isFiltering = true
			m.filter = ""
			m.rebuildTableRows()
			return m, nil
		case "enter":
			if mission, ok := m.selectedMission(); ok {
				return m, func() tea.Msg { return showLogbookMsg{mission: mission} }
			}
			return m, nil
		case "q", "esc":
			if m.filter != "" {
				m.filter = ""
				m.isFiltering = false
				m.rebuildTableRows()
				return m, nil
			}
			return m, func() tea.Msg { return backToMenuMsg{} }
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *missionsModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error loading missions: %v", m.err))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("🛰  "+i18n.T("missions.title")) + "\n\n")

	if len(m.table.Rows()) == 0 {
		b.WriteString(helpStyle.Render(i18n.T("missions.empty")))
		b.WriteString(m.footerView())
		return b.String()
	}

	b.WriteString(m.table.View())
	b.WriteString(m.footerView())
	return b.String()
}

func (m *missionsModel) footerView() string {
	var filterStatus string
	if m.isFiltering {
		filterStatus = fmt.Sprintf(i18n.T("filter.editing"), m.filter)
	} else if m.filter != "" {
		filterStatus = fmt.Sprintf(i18n.T("filter.clear"), m.filter)
	} else {
		filterStatus = i18n.T("filter.prompt")
	}
	return helpStyle.Render(fmt.Sprintf("\n%s %s", i18n.T("missions.help"), filterStatus))
}
