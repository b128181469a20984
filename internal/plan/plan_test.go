// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package plan

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/perihelion/starflight/internal/drive"
)

const validPlan = `
name: proxima-direct
description: Burn to cruise velocity, coast, brake at the target star.
ship:
  payload_mass_kg: 50
  destination_ly: 4.244
  engines:
    - name: main
      fuel_mass_kg: 1.0e12
maneuvers:
  - type: accelerate
    target_velocity_c: 0.01
  - type: cruise
    distance_ly: 1.0
  - type: wait
    duration_years: 0.5
  - type: accelerate
    target_velocity_c: 0.001
    direction: -1
`

func TestParseValidPlan(t *testing.T) {
	p, err := Parse([]byte(validPlan))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "proxima-direct" {
		t.Fatalf("name = %q", p.Name)
	}
	if len(p.Maneuvers) != 4 {
		t.Fatalf("expected 4 maneuvers, have %d", len(p.Maneuvers))
	}
	if p.Maneuvers[0].Type != ManeuverAccelerate {
		t.Fatalf("unexpected first maneuver %q", p.Maneuvers[0].Type)
	}
}

func TestParseRejectsInvalidPlans(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "   \n", "empty"},
		{"missing name", `
ship:
  payload_mass_kg: 50
  engines: [{name: main, fuel_mass_kg: 1}]
maneuvers: [{type: wait, duration_years: 1}]
`, "name is required"},
		{"no maneuvers", `
name: idle
ship:
  payload_mass_kg: 50
  engines: [{name: main, fuel_mass_kg: 1}]
`, "at least one maneuver"},
		{"unknown maneuver type", `
name: bad
ship:
  payload_mass_kg: 50
  engines: [{name: main, fuel_mass_kg: 1}]
maneuvers: [{type: teleport}]
`, "unknown maneuver type"},
		{"unknown engine", `
name: bad
ship:
  payload_mass_kg: 50
  engines: [{name: main, fuel_mass_kg: 1}]
maneuvers: [{type: accelerate, engine: warp, target_velocity_c: 0.01}]
`, "unknown engine"},
		{"non-positive fuel", `
name: bad
ship:
  payload_mass_kg: 50
  engines: [{name: main, fuel_mass_kg: 0}]
maneuvers: [{type: wait, duration_years: 1}]
`, "fuel_mass_kg must be positive"},
		{"duplicate engine", `
name: bad
ship:
  payload_mass_kg: 50
  engines: [{name: main, fuel_mass_kg: 1}, {name: main, fuel_mass_kg: 2}]
maneuvers: [{type: wait, duration_years: 1}]
`, "duplicate name"},
		{"sail without sail", `
name: bad
ship:
  payload_mass_kg: 50
  engines: [{name: main, fuel_mass_kg: 1}]
maneuvers: [{type: sail, auto_target: true}]
`, "no sail"},
		{"swim without swimmer", `
name: bad
ship:
  payload_mass_kg: 50
  engines: [{name: main, fuel_mass_kg: 1}]
maneuvers: [{type: swim, power_w: 1e13, duration_years: 1}]
`, "no SWIMMER"},
		{"bad reflectivity", `
name: bad
ship:
  payload_mass_kg: 50
  engines: [{name: main, fuel_mass_kg: 1}]
  sail: {mass_kg: 1, radius_m: 1000, reflectivity: 1.5}
maneuvers: [{type: sail, auto_target: true}]
`, "reflectivity"},
		{"bad direction", `
name: bad
ship:
  payload_mass_kg: 50
  engines: [{name: main, fuel_mass_kg: 1}]
maneuvers: [{type: accelerate, target_velocity_c: 0.01, direction: 2}]
`, "direction"},
		{"accelerate with no burn", `
name: bad
ship:
  payload_mass_kg: 50
  engines: [{name: main, fuel_mass_kg: 1}]
maneuvers: [{type: accelerate}]
`, "fuel_mass_kg or target_velocity_c"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mission.yaml")
	if err := os.WriteFile(path, []byte(validPlan), 0o644); err != nil {
		t.Fatalf("write plan: %v", err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "proxima-direct" {
		t.Fatalf("name = %q", p.Name)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExecuteFliesTheMission(t *testing.T) {
	p, err := Parse([]byte(validPlan))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := p.Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(s.Velocity.Fraction()-0.001) > 1.0e-6 {
		t.Fatalf("final velocity = %vc, want 0.001c", s.Velocity.Fraction())
	}
	if s.Position.LightYears() < 1.0 {
		t.Fatalf("position = %v ly, want past the cruise leg", s.Position.LightYears())
	}
	if s.FuelMass() <= 0 {
		t.Fatalf("deceleration burn should leave fuel, have %g kg", float64(s.FuelMass()))
	}
	// The hotel load during the 100 year cruise converts fuel into
	// reaction-product payload; the final burn must still be affordable.
	if s.PayloadMass <= 50 {
		t.Fatalf("electricity generation should grow the payload, have %g kg", float64(s.PayloadMass))
	}
	if len(s.History()) < len(p.Maneuvers)+1 {
		t.Fatalf("expected a logbook entry per maneuver, have %d", len(s.History()))
	}
}

func TestExecutePropagatesManeuverErrors(t *testing.T) {
	p, err := Parse([]byte(`
name: overdraft
ship:
  payload_mass_kg: 50
  engines: [{name: main, fuel_mass_kg: 1.0e3}]
maneuvers:
  - type: accelerate
    target_velocity_c: 0.1
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := p.Execute()
	if !errors.Is(err, drive.ErrInsufficientFuel) {
		t.Fatalf("expected ErrInsufficientFuel, got %v", err)
	}
	if s == nil {
		t.Fatal("ship should be returned for logbook inspection")
	}
}

func TestBuildWiresHardware(t *testing.T) {
	p, err := Parse([]byte(`
name: full-stack
ship:
  payload_mass_kg: 62.9
  destination_ly: 4.244
  initial_position_au: 0.02
  engines:
    - name: main
      fuel_mass_kg: 1.0e10
    - name: aux
      fuel_mass_kg: 1.0e6
      exhaust_velocity_ms: 3.0e5
  sail: {mass_kg: 0.1, radius_m: 1000, reflectivity: 0.9}
  swimmer: {pusher_area_m2: 2.0e19}
maneuvers:
  - type: sail
    auto_target: true
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := p.Build()
	if len(s.Engines) != 2 {
		t.Fatalf("expected 2 engines, have %d", len(s.Engines))
	}
	if s.Engines["aux"].ExhaustVelocity != 3.0e5 {
		t.Fatalf("aux exhaust velocity = %v", s.Engines["aux"].ExhaustVelocity)
	}
	if s.Engines["main"].ExhaustVelocity != drive.DefaultExhaustVelocity {
		t.Fatalf("main should fall back to the default exhaust velocity")
	}
	if s.SolarSail == nil || s.Swimmer == nil {
		t.Fatal("sail and swimmer should be wired")
	}
	if s.Position.AUs() != 0.02 {
		t.Fatalf("position = %v AU, want 0.02", s.Position.AUs())
	}
}
