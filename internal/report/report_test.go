// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/perihelion/starflight/internal/model"
	"github.com/perihelion/starflight/internal/ship"
	"github.com/perihelion/starflight/internal/unit"
)

func sampleMission() model.Mission {
	return model.Mission{
		ID:                    1,
		Name:                  "proxima-direct",
		Description:           "single burn and cruise",
		DestinationLightYears: 4.244,
		PayloadMassKg:         50,
		FlightTimeYears:       424.4,
		FinalVelocityC:        0.01,
		FinalPositionLy:       4.244,
		RemainingFuelKg:       2.5e7,
		Arrived:               true,
	}
}

func sampleEntries() []model.MissionLogEntry {
	return []model.MissionLogEntry{
		{Seq: 0, TimeS: 0, PositionM: 0, VelocityMS: 0, FuelKg: 1e10, Message: ""},
		{Seq: 1, TimeS: float64(unit.FromYears(1)), PositionM: 1e14, VelocityMS: 3e6, FuelKg: 5e9, Message: "burn complete"},
		{Seq: 2, TimeS: float64(unit.FromYears(400)), PositionM: 4e16, VelocityMS: 3e6, FuelKg: 5e9, Message: "cruising"},
	}
}

func TestSummaryContainsKeyFields(t *testing.T) {
	out := Summary(sampleMission())
	for _, want := range []string{"proxima-direct", "4.244 ly", "arrived", "single burn and cruise"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestMissionsTable(t *testing.T) {
	out := MissionsTable([]model.Mission{sampleMission()})
	if !strings.Contains(out, "proxima-direct") || !strings.Contains(out, "arrived") {
		t.Fatalf("unexpected table:\n%s", out)
	}
	if empty := MissionsTable(nil); !strings.Contains(empty, "no missions") {
		t.Fatalf("unexpected empty table: %q", empty)
	}
}

func TestMissionsTableTruncatesLongNamesOnRunes(t *testing.T) {
	m := sampleMission()
	m.Name = strings.Repeat("täusch", 8)
	out := MissionsTable([]model.Mission{m})
	if !utf8.ValidString(out) {
		t.Fatalf("table contains invalid UTF-8:\n%s", out)
	}
	if !strings.Contains(out, "…") {
		t.Fatalf("long name should be truncated with an ellipsis:\n%s", out)
	}
	if got := truncate(m.Name, 24); utf8.RuneCountInString(got) != 24 {
		t.Fatalf("truncate should keep 24 runes, have %d (%q)", utf8.RuneCountInString(got), got)
	}
}

func TestHistoryTable(t *testing.T) {
	out := HistoryTable(sampleEntries())
	if !strings.Contains(out, "burn complete") || !strings.Contains(out, "cruising") {
		t.Fatalf("unexpected history table:\n%s", out)
	}
	lines := strings.Count(out, "\n")
	if lines != len(sampleEntries())+1 {
		t.Fatalf("expected header plus one row per entry, have %d lines", lines)
	}
}

func TestLogColumns(t *testing.T) {
	cols := LogColumns(sampleEntries())
	if len(cols.TimesYears) != 3 {
		t.Fatalf("expected 3 rows, have %d", len(cols.TimesYears))
	}
	if cols.TimesYears[1] != 1 {
		t.Fatalf("time conversion off: %v years", cols.TimesYears[1])
	}
	if cols.VelocitiesC[1] <= 0.009 || cols.VelocitiesC[1] >= 0.011 {
		t.Fatalf("velocity conversion off: %v c", cols.VelocitiesC[1])
	}
}

func TestWriteHistoryPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.png")
	logs := LogColumns(sampleEntries())
	if err := WriteHistoryPlot(logs, 4.244, path); err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("plot file is empty")
	}
}

func TestWriteHistoryPlotEmptyLogs(t *testing.T) {
	if err := WriteHistoryPlot(ship.ParsedLogs{}, 4.244, "unused.png"); err == nil {
		t.Fatal("expected error for empty logbook")
	}
}
