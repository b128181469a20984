// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/perihelion/starflight/internal/i18n"
	"github.com/perihelion/starflight/internal/model"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAuditActionStyles(t *testing.T) {
	if auditActionStyle("SAVE_MISSION").Render("x") == "" {
		t.Fatalf("expected non-empty render for save style")
	}
	if auditActionStyle("DELETE_MISSION").Render("x") == "" {
		t.Fatalf("expected non-empty render for delete style")
	}
	if auditActionStyle("SOMETHING_ELSE").Render("x") == "" {
		t.Fatalf("expected non-empty render for default style")
	}
}

func TestMissionsViewFilterAndSelection(t *testing.T) {
	i18n.Init("en")
	missions := []model.Mission{
		{ID: 2, Name: "proxima-sail", DestinationLightYears: 4.2, Arrived: true},
		{ID: 1, Name: "oort-probe", DestinationLightYears: 0.5},
	}
	m := newMissionsModelWithData(missions)

	if got := len(m.table.Rows()); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}

	m.filter = "proxima"
	m.rebuildTableRows()
	if got := len(m.table.Rows()); got != 1 {
		t.Fatalf("expected 1 row after filtering, got %d", got)
	}

	selected, ok := m.selectedMission()
	if !ok {
		t.Fatalf("expected a selected mission")
	}
	if selected.ID != 2 {
		t.Fatalf("selected mission id = %d, want 2", selected.ID)
	}
}

func TestMissionsViewRendersEmptyHint(t *testing.T) {
	i18n.Init("en")
	m := newMissionsModelWithData(nil)
	out := m.View()
	if !strings.Contains(out, i18n.T("missions.empty")) {
		t.Fatalf("expected empty hint in view, got: %q", out)
	}
}

func TestMissionsFooterIsLocalized(t *testing.T) {
	i18n.Init("de")
	defer i18n.Init("en")
	m := newMissionsModelWithData(nil)
	out := m.View()
	if !strings.Contains(out, i18n.T("missions.help")) {
		t.Fatalf("expected localized key hint in footer, got: %q", out)
	}
	if !strings.Contains(out, i18n.T("filter.prompt")) {
		t.Fatalf("expected localized filter prompt in footer, got: %q", out)
	}
	if strings.Contains(out, "to scroll") {
		t.Fatalf("footer still contains hardcoded English: %q", out)
	}
}

func TestAuditLogViewFilter(t *testing.T) {
	i18n.Init("en")
	m := newAuditLogModelWithData([]model.AuditLogEntry{
		{Timestamp: "2026-01-01T00:00:00Z", Username: "vega", Action: "SAVE_MISSION", Details: "mission: alpha"},
		{Timestamp: "2026-01-02T00:00:00Z", Username: "deneb", Action: "DELETE_MISSION", Details: "mission: beta"},
	})
	if got := len(m.table.Rows()); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}

	m.filter = "deneb"
	m.rebuildTableRows()
	if got := len(m.table.Rows()); got != 1 {
		t.Fatalf("expected 1 row when filtering by user, got %d", got)
	}
}

func TestLogbookViewRendersSummaryAndHistory(t *testing.T) {
	i18n.Init("en")
	mission := model.Mission{ID: 1, Name: "proxima-sail", DestinationLightYears: 4.2}
	logs := []model.MissionLogEntry{
		{Seq: 0, TimeS: 0, PositionM: 0, VelocityMS: 0, FuelKg: 1e6, Message: "launch"},
		{Seq: 1, TimeS: 3.15e7, PositionM: 1e14, VelocityMS: 3e6, FuelKg: 5e5, Message: "burn complete"},
	}
	m := newLogbookModelWithData(mission, logs)
	out := m.View()
	if !strings.Contains(out, "proxima-sail") {
		t.Fatalf("expected mission name in logbook view")
	}
	if !strings.Contains(out, "launch") {
		t.Fatalf("expected log message in logbook view")
	}
}

func TestMenuNavigation(t *testing.T) {
	i18n.Init("en")
	m := initialModel()

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(mainModel)
	if m.menu.cursor != 1 {
		t.Fatalf("cursor = %d after down, want 1", m.menu.cursor)
	}

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(mainModel)
	if m.menu.cursor != 0 {
		t.Fatalf("cursor = %d after up, want 0", m.menu.cursor)
	}

	updated, _ = m.Update(keyMsg("L"))
	m = updated.(mainModel)
	if m.state != languageView {
		t.Fatalf("state = %v after L, want languageView", m.state)
	}
	if len(m.language.orderedKeys) < 2 {
		t.Fatalf("expected at least 2 locales, got %v", m.language.orderedKeys)
	}
}

func TestDashboardDataBuild(t *testing.T) {
	missions := []model.Mission{
		{ID: 3, Name: "newest", FinalPositionLy: -4.2, Arrived: true},
		{ID: 2, Name: "older", FinalPositionLy: 1.0},
	}
	var entries []model.AuditLogEntry
	for i := 0; i < 8; i++ {
		entries = append(entries, model.AuditLogEntry{Action: "SAVE_MISSION"})
	}

	data := buildDashboardData(missions, entries)
	if data.missionCount != 2 || data.arrivedCount != 1 {
		t.Fatalf("unexpected counts: %+v", data)
	}
	if data.farthestLy != 4.2 {
		t.Fatalf("farthest = %g, want 4.2", data.farthestLy)
	}
	if data.latest == nil || data.latest.Name != "newest" {
		t.Fatalf("latest mission not picked from head of list")
	}
	if len(data.recentLogs) != 5 {
		t.Fatalf("recent logs not capped at 5, got %d", len(data.recentLogs))
	}
}

func TestDashboardViewRenders(t *testing.T) {
	i18n.Init("en")
	m := initialModel()
	m.width = 100
	m.height = 30
	m.dashboard = buildDashboardData([]model.Mission{{ID: 1, Name: "alpha", Arrived: true}}, nil)

	out := m.View()
	if !strings.Contains(out, i18n.T("menu.missions")) {
		t.Fatalf("expected menu entry in dashboard view")
	}
	if !strings.Contains(out, "alpha") {
		t.Fatalf("expected latest mission in dashboard view")
	}
}
