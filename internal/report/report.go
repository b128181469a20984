// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package report renders mission results for the terminal and as PNG
// plots. Text output is styled with lipgloss; plots go through gonum.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/perihelion/starflight/internal/model"
	"github.com/perihelion/starflight/internal/ship"
	"github.com/perihelion/starflight/internal/unit"
)

const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(colorSubtle).Width(22)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	headerStyle  = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorSubtle)
)

// Summary renders a styled one-screen summary of a mission.
func Summary(m model.Mission) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Name) + "\n")
	if m.Description != "" {
		b.WriteString(mutedStyle.Render(m.Description) + "\n")
	}
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + value + "\n")
	}
	row("Destination", fmt.Sprintf("%.3f ly", m.DestinationLightYears))
	row("Payload", fmt.Sprintf("%.4g kg", m.PayloadMassKg))
	row("Flight time", fmt.Sprintf("%.1f years", m.FlightTimeYears))
	row("Final velocity", fmt.Sprintf("%.4g c", m.FinalVelocityC))
	row("Final position", fmt.Sprintf("%.3f ly", m.FinalPositionLy))
	row("Remaining fuel", fmt.Sprintf("%.4g kg", m.RemainingFuelKg))
	if m.Arrived {
		row("Status", successStyle.Render("arrived"))
	} else {
		row("Status", errorStyle.Render("en route"))
	}
	if m.CreatedAt != "" {
		row("Recorded", m.CreatedAt)
	}
	return b.String()
}

// MissionsTable renders all stored missions as a table.
func MissionsTable(missions []model.Mission) string {
	if len(missions) == 0 {
		return mutedStyle.Render("no missions recorded") + "\n"
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-24s %-10s %-12s %-10s %-8s",
		"ID", "NAME", "DEST (ly)", "TIME (yr)", "VEL (c)", "STATUS")) + "\n")
	for _, m := range missions {
		status := "en route"
		if m.Arrived {
			status = "arrived"
		}
		b.WriteString(fmt.Sprintf("%-4d %-24s %-10.3f %-12.1f %-10.4g %-8s\n",
			m.ID, truncate(m.Name, 24), m.DestinationLightYears, m.FlightTimeYears, m.FinalVelocityC, status))
	}
	return b.String()
}

// HistoryTable renders a mission logbook as a table, one row per entry.
func HistoryTable(entries []model.MissionLogEntry) string {
	if len(entries) == 0 {
		return mutedStyle.Render("empty logbook") + "\n"
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %-12s %-12s %-12s %-12s %s",
		"SEQ", "TIME (yr)", "POS (ly)", "VEL (c)", "FUEL (kg)", "MESSAGE")) + "\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%-6d %-12.2f %-12.4f %-12.3g %-12.4g %s\n",
			e.Seq,
			unit.Time(e.TimeS).Years(),
			unit.Distance(e.PositionM).LightYears(),
			unit.Speed(e.VelocityMS).Fraction(),
			e.FuelKg,
			e.Message))
	}
	return b.String()
}

// LogColumns converts stored logbook entries into plot-ready columns.
func LogColumns(entries []model.MissionLogEntry) ship.ParsedLogs {
	p := ship.ParsedLogs{
		PositionsLy: make([]float64, 0, len(entries)),
		VelocitiesC: make([]float64, 0, len(entries)),
		FuelsKg:     make([]float64, 0, len(entries)),
		TimesYears:  make([]float64, 0, len(entries)),
	}
	for _, e := range entries {
		p.PositionsLy = append(p.PositionsLy, unit.Distance(e.PositionM).LightYears())
		p.VelocitiesC = append(p.VelocitiesC, unit.Speed(e.VelocityMS).Fraction())
		p.FuelsKg = append(p.FuelsKg, e.FuelKg)
		p.TimesYears = append(p.TimesYears, unit.Time(e.TimeS).Years())
	}
	return p
}

// truncate shortens s to at most n runes, marking the cut with an
// ellipsis. Counting runes keeps multibyte names valid UTF-8.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
