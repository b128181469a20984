// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Starflight.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to all other sub-views.
package tui // import "github.com/perihelion/starflight/internal/tui"

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/perihelion/starflight/internal/db"
	"github.com/perihelion/starflight/internal/i18n"
	"github.com/perihelion/starflight/internal/logging"
	"github.com/perihelion/starflight/internal/model"
	"github.com/spf13/viper"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// menuView is the main dashboard and navigation menu.
	menuView viewState = iota
	missionsView
	logbookView
	auditLogView
	languageView
)

// backToMenuMsg is sent by sub-views when the user backs out to the menu.
type backToMenuMsg struct{}

// backToMissionsMsg is sent by the logbook view to return to the mission list.
type backToMissionsMsg struct{}

// showLogbookMsg asks the router to open the logbook of one mission.
type showLogbookMsg struct {
	mission model.Mission
}

// dashboardDataMsg is a message containing the data for the main menu dashboard.
type dashboardDataMsg struct {
	data dashboardData
}

// languageChangedMsg is a message to signal that the language has changed and
// the UI should be re-initialized.
type languageChangedMsg struct{}

// dashboardData holds the summary information for the main menu view.
type dashboardData struct {
	missionCount int
	arrivedCount int
	farthestLy   float64
	latest       *model.Mission
	recentLogs   []model.AuditLogEntry
	err          error
}

// configSaver persists the selected language. The CLI wires this to the
// config writer; tests leave it as a no-op.
var configSaver = func() error { return nil }

// SetConfigSaver installs the function used to persist the language choice.
func SetConfigSaver(f func() error) {
	if f != nil {
		configSaver = f
	}
}

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the currently active sub-model.
type mainModel struct {
	state     viewState
	menu      menuModel
	missions  *missionsModel
	logbook   *logbookModel
	auditLog  *auditLogModel
	language  languageModel
	dashboard dashboardData
	width     int
	height    int
	err       error
}

// menuModel holds the state for the main menu.
type menuModel struct {
	choices []string // The menu items to show.
	cursor  int      // Which menu item our cursor is pointing at.
}

// languageModel holds the state for the language selection menu.
type languageModel struct {
	choices     map[string]string // map of lang code to display name
	orderedKeys []string          // for stable iteration
	cursor      int
}

// initialModel creates the starting state of the TUI, beginning at the main menu.
func initialModel() mainModel {
	return mainModel{
		state: menuView,
		menu: menuModel{
			choices: []string{
				i18n.T("menu.missions"),
				i18n.T("menu.audit_log"),
				i18n.T("menu.language"),
			},
		},
	}
}

// Init is the first function that will be called by the Bubble Tea runtime.
// It kicks off the initial command to load data for the dashboard.
func (m mainModel) Init() tea.Cmd {
	return refreshDashboardCmd()
}

// Update is the main message loop. It handles all events (like key presses and
// window size changes) and delegates them to the active sub-model.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings that work everywhere.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case dashboardDataMsg:
		m.dashboard = msg.data
		if msg.data.err != nil {
			m.err = msg.data.err
		}
		return m, nil

	case showLogbookMsg:
		m.state = logbookView
		lb := newLogbookModel(msg.mission)
		m.logbook = &lb
		var updated tea.Model
		updated, cmd = m.logbook.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		lbm := updated.(logbookModel)
		m.logbook = &lbm
		return m, cmd

	case languageChangedMsg:
		// The language has changed. Re-initialize the entire model to apply
		// new translations everywhere, preserving the window dimensions.
		newModel := initialModel()
		newModel.width = m.width
		newModel.height = m.height
		return newModel, newModel.Init()
	}

	// Delegate updates to the currently active view.
	switch m.state {
	case missionsView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshDashboardCmd()
		}
		var updated tea.Model
		updated, cmd = m.missions.Update(msg)
		if newModel, ok := updated.(*missionsModel); ok {
			m.missions = newModel
		}

	case logbookView:
		if _, ok := msg.(backToMissionsMsg); ok {
			m.state = missionsView
			return m, nil
		}
		var updated tea.Model
		updated, cmd = m.logbook.Update(msg)
		lbm := updated.(logbookModel)
		m.logbook = &lbm

	case auditLogView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshDashboardCmd()
		}
		var updated tea.Model
		updated, cmd = m.auditLog.Update(msg)
		m.auditLog = updated.(*auditLogModel)

	case languageView:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q", "esc":
				m.state = menuView
				return m, refreshDashboardCmd()
			case "up", "k":
				if m.language.cursor > 0 {
					m.language.cursor--
				}
			case "down", "j":
				if m.language.cursor < len(m.language.orderedKeys)-1 {
					m.language.cursor++
				}
			case "enter":
				langCode := m.language.orderedKeys[m.language.cursor]
				i18n.SetLang(langCode)
				viper.Set("language", langCode)
				if err := configSaver(); err != nil {
					m.err = fmt.Errorf("failed to save config: %w", err)
				}
				return m, func() tea.Msg { return languageChangedMsg{} }
			}
		}

	default: // menuView
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.menu.cursor > 0 {
					m.menu.cursor--
				}
			case "down", "j":
				if m.menu.cursor < len(m.menu.choices)-1 {
					m.menu.cursor++
				}
			case "enter":
				switch m.menu.cursor {
				case 0: // Missions
					m.state = missionsView
					newModel := newMissionsModel()
					m.missions = &newModel
					var updated tea.Model
					updated, cmd = m.missions.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
					m.missions = updated.(*missionsModel)
					return m, cmd
				case 1: // Audit Log
					m.state = auditLogView
					newModel := newAuditLogModel()
					m.auditLog = &newModel
					var updated tea.Model
					updated, cmd = m.auditLog.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
					m.auditLog = updated.(*auditLogModel)
					return m, cmd
				case 2: // Language
					m.state = languageView
					m.language = newLanguageModel()
					return m, nil
				}
			case "L":
				m.state = languageView
				m.language = newLanguageModel()
				return m, nil
			}
		}
	}

	return m, cmd
}

// View renders the TUI. It's called after every Update and delegates rendering
// to the currently active sub-model.
func (m mainModel) View() string {
	if m.err != nil {
		errorPane := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 2)
		return errorPane.Render(fmt.Sprintf("An error occurred: %v", m.err))
	}

	switch m.state {
	case missionsView:
		return m.missions.View()
	case logbookView:
		return m.logbook.View()
	case auditLogView:
		return m.auditLog.View()
	case languageView:
		return m.language.View()
	default: // menuView
		return m.menu.View(m.dashboard, m.width, m.height)
	}
}

// View renders the main menu and dashboard.
func (m menuModel) View(data dashboardData, width, height int) string {
	title := mainTitleStyle.Render("🚀 " + i18n.T("dashboard.title"))
	subTitle := helpStyle.Render(i18n.T("dashboard.subtitle"))
	header := lipgloss.JoinVertical(lipgloss.Left, title, subTitle)

	paneTitle := lipgloss.NewStyle().Bold(true)

	// Menu list (left pane).
	var menuItems []string
	menuItems = append(menuItems, paneTitle.Render(i18n.T("menu.navigation")), "")
	for i, choice := range m.choices {
		if m.cursor == i {
			menuItems = append(menuItems, selectedItemStyle.Render("▸ "+choice))
		} else {
			menuItems = append(menuItems, itemStyle.Render("  "+choice))
		}
	}
	menuContent := lipgloss.JoinVertical(lipgloss.Left, menuItems...)

	// Fleet status (right pane).
	var dash []string
	dash = append(dash, paneTitle.Render(i18n.T("dashboard.fleet_status")), "")
	dash = append(dash, fmt.Sprintf("%s %d", i18n.T("dashboard.missions"), data.missionCount))
	arrivedLine := fmt.Sprintf("%s %d", i18n.T("dashboard.arrived"), data.arrivedCount)
	if data.arrivedCount > 0 {
		arrivedLine = successStyle.Render(arrivedLine)
	}
	dash = append(dash, arrivedLine)
	if data.farthestLy > 0 {
		dash = append(dash, fmt.Sprintf("%s %.3g ly", i18n.T("dashboard.farthest"), data.farthestLy))
	}
	if data.latest != nil {
		dash = append(dash, "", paneTitle.Render(i18n.T("dashboard.latest")), "")
		status := errorStyle.Render(i18n.T("missions.status.enroute"))
		if data.latest.Arrived {
			status = successStyle.Render(i18n.T("missions.status.arrived"))
		}
		dash = append(dash, fmt.Sprintf("%s  %s", data.latest.String(), status))
	}

	dash = append(dash, "", "", paneTitle.Render(i18n.T("dashboard.recent_activity")), "")
	if len(data.recentLogs) == 0 {
		dash = append(dash, helpStyle.Render(i18n.T("dashboard.no_recent_activity")))
	} else {
		for _, log := range data.recentLogs {
			ts := log.Timestamp
			if len(ts) > 16 {
				ts = ts[5:16] // MM-DD HH:MM
			}
			details := log.Details
			if len(details) > 40 {
				details = details[:37] + "..."
			}
			dash = append(dash, lipgloss.JoinHorizontal(lipgloss.Left,
				helpStyle.Render(ts), " ", auditActionStyle(log.Action).Render(log.Action), " ", helpStyle.Render(details)))
		}
	}
	dashContent := lipgloss.JoinVertical(lipgloss.Left, dash...)

	paneStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSubtle).
		Padding(1, 2)

	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Background(lipgloss.Color("236")).Padding(0, 1).Italic(true)
	footer := footerStyle.Render(i18n.T("dashboard.footer"))

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	paneHeight := height - headerHeight - footerHeight - 2
	if paneHeight < 0 {
		paneHeight = 0
	}

	menuWidth := 34
	dashboardWidth := width - 4 - menuWidth - 2
	if dashboardWidth < 20 {
		dashboardWidth = 20
	}

	leftPane := paneStyle.Width(menuWidth).Height(paneHeight).Render(menuContent)
	rightPane := paneStyle.Width(dashboardWidth).Height(paneHeight).MarginLeft(2).Render(dashContent)
	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	return lipgloss.JoinVertical(lipgloss.Top, header, mainArea, footer)
}

// newLanguageModel creates a new model for the language selection view.
func newLanguageModel() languageModel {
	choices := i18n.GetAvailableLocales()

	keys := make([]string, 0, len(choices))
	for k := range choices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return languageModel{
		choices:     choices,
		orderedKeys: keys,
		cursor:      0,
	}
}

// View for languageModel.
func (m languageModel) View() string {
	title := mainTitleStyle.Render("🌐 " + i18n.T("menu.language"))

	var listItems []string
	listItems = append(listItems, titleStyle.Render(i18n.T("language.select")), "")

	for i, langCode := range m.orderedKeys {
		displayName := m.choices[langCode]
		if m.cursor == i {
			listItems = append(listItems, selectedItemStyle.Render("▸ "+displayName))
		} else {
			listItems = append(listItems, itemStyle.Render("  "+displayName))
		}
	}

	paneStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSubtle).Padding(1, 2)
	listPane := paneStyle.Width(50).Render(lipgloss.JoinVertical(lipgloss.Left, listItems...))

	helpLine := helpStyle.Render(i18n.T("language.help"))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", listPane, "", helpLine)
}

// Run is the main entrypoint for the TUI. It initializes and runs the Bubble Tea program.
func Run() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		os.Exit(1)
	}
}

// refreshDashboardCmd is a tea.Cmd that fetches summary data for the main menu.
func refreshDashboardCmd() tea.Cmd {
	return func() tea.Msg {
		missions, err := db.GetAllMissions()
		if err != nil {
			return dashboardDataMsg{data: dashboardData{err: err}}
		}
		entries, err := db.GetAllAuditLogEntries()
		if err != nil {
			return dashboardDataMsg{data: dashboardData{err: err}}
		}
		return dashboardDataMsg{data: buildDashboardData(missions, entries)}
	}
}

// buildDashboardData condenses the mission list into the menu summary.
func buildDashboardData(missions []model.Mission, entries []model.AuditLogEntry) dashboardData {
	data := dashboardData{missionCount: len(missions)}
	for i := range missions {
		m := missions[i]
		if m.Arrived {
			data.arrivedCount++
		}
		if abs := absFloat(m.FinalPositionLy); abs > data.farthestLy {
			data.farthestLy = abs
		}
	}
	if len(missions) > 0 {
		// GetAllMissions returns newest first.
		data.latest = &missions[0]
	}
	if len(entries) > 5 {
		entries = entries[:5]
	}
	data.recentLogs = entries
	return data
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// auditActionStyle picks a style for an audit action name; shared between
// the dashboard and the audit log view.
func auditActionStyle(action string) lipgloss.Style {
	switch {
	case strings.HasPrefix(action, "SAVE_"):
		return successStyle
	case strings.HasPrefix(action, "DELETE_"), strings.HasPrefix(action, "RESTORE_"):
		return specialStyle
	case strings.HasPrefix(action, "INTEGRATE_"):
		return helpStyle
	}
	return itemStyle
}
