// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package plan loads declarative YAML mission plans and executes them
// against a starship. A plan names the ship hardware (payload, engines,
// optional sail and SWIMMER drive) and an ordered list of maneuvers.
package plan

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/perihelion/starflight/internal/drive"
	"github.com/perihelion/starflight/internal/ship"
	"github.com/perihelion/starflight/internal/unit"
)

// Maneuver types accepted in a plan's maneuver list.
const (
	ManeuverAccelerate          = "accelerate"
	ManeuverCruise              = "cruise"
	ManeuverWait                = "wait"
	ManeuverSail                = "sail"
	ManeuverSwim                = "swim"
	ManeuverGenerateElectricity = "generate-electricity"
)

// Plan is a full mission plan document.
type Plan struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Ship        ShipSpec   `yaml:"ship"`
	Maneuvers   []Maneuver `yaml:"maneuvers"`
}

// ShipSpec declares the ship hardware and departure state.
type ShipSpec struct {
	PayloadMassKg     float64      `yaml:"payload_mass_kg"`
	DestinationLy     float64      `yaml:"destination_ly"`
	ElectricalPowerW  float64      `yaml:"electrical_power_w"`
	InitialPositionAU float64      `yaml:"initial_position_au"`
	InitialVelocityC  float64      `yaml:"initial_velocity_c"`
	Engines           []EngineSpec `yaml:"engines"`
	Sail              *SailSpec    `yaml:"sail"`
	Swimmer           *SwimmerSpec `yaml:"swimmer"`
}

// EngineSpec declares one named fusion engine.
type EngineSpec struct {
	Name              string  `yaml:"name"`
	FuelMassKg        float64 `yaml:"fuel_mass_kg"`
	ExhaustVelocityMS float64 `yaml:"exhaust_velocity_ms"`
}

// SailSpec declares a solar sail.
type SailSpec struct {
	MassKg       float64 `yaml:"mass_kg"`
	RadiusM      float64 `yaml:"radius_m"`
	Reflectivity float64 `yaml:"reflectivity"`
}

// SwimmerSpec declares a SWIMMER drive.
type SwimmerSpec struct {
	PusherAreaM2     float64 `yaml:"pusher_area_m2"`
	ArealDensityKgM2 float64 `yaml:"areal_density_kg_m2"`
}

// Maneuver is one step of the plan. Type selects which of the remaining
// fields apply.
type Maneuver struct {
	Type string `yaml:"type"`

	// accelerate
	Engine           string  `yaml:"engine"`
	TargetVelocityC  float64 `yaml:"target_velocity_c"`
	FuelMassKg       float64 `yaml:"fuel_mass_kg"`
	Direction        int     `yaml:"direction"`
	AccelerationGees float64 `yaml:"acceleration_g"`

	// cruise
	DistanceLy float64 `yaml:"distance_ly"`

	// wait / swim
	DurationYears float64 `yaml:"duration_years"`

	// sail
	AutoTarget   bool    `yaml:"auto_target"`
	MaxAccelGees float64 `yaml:"max_accel_g"`
	MaxSailDays  float64 `yaml:"max_sail_days"`

	// swim
	PowerW float64 `yaml:"power_w"`

	// generate-electricity
	EnergyJ    float64 `yaml:"energy_j"`
	Efficiency float64 `yaml:"efficiency"`

	// any powered maneuver
	SkipElectricity bool `yaml:"skip_electricity"`
}

// Parse decodes and validates a plan payload.
func Parse(data []byte) (Plan, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Plan{}, fmt.Errorf("plan: document is empty")
	}
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("plan: decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Load reads a plan file from disk.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("plan: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Plan{}, fmt.Errorf("plan: %s: %w", path, err)
	}
	return p, nil
}

// Validate checks the plan for structural problems before any simulation
// runs: unknown maneuver types, references to undeclared hardware and
// non-positive quantities are all rejected here.
func (p Plan) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("plan: name is required")
	}
	if p.Ship.PayloadMassKg <= 0 {
		return fmt.Errorf("plan: ship payload_mass_kg must be positive, got %g", p.Ship.PayloadMassKg)
	}
	engines := map[string]bool{}
	for i, e := range p.Ship.Engines {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return fmt.Errorf("plan: engine %d: name is required", i)
		}
		if engines[name] {
			return fmt.Errorf("plan: engine %d: duplicate name %q", i, name)
		}
		if e.FuelMassKg <= 0 {
			return fmt.Errorf("plan: engine %q: fuel_mass_kg must be positive, got %g", name, e.FuelMassKg)
		}
		if e.ExhaustVelocityMS < 0 {
			return fmt.Errorf("plan: engine %q: exhaust_velocity_ms must not be negative", name)
		}
		engines[name] = true
	}
	if s := p.Ship.Sail; s != nil {
		if s.MassKg <= 0 || s.RadiusM <= 0 {
			return fmt.Errorf("plan: sail mass_kg and radius_m must be positive")
		}
		if s.Reflectivity < 0 || s.Reflectivity > 1 {
			return fmt.Errorf("plan: sail reflectivity must be in [0, 1], got %g", s.Reflectivity)
		}
	}
	if w := p.Ship.Swimmer; w != nil && w.PusherAreaM2 <= 0 {
		return fmt.Errorf("plan: swimmer pusher_area_m2 must be positive, got %g", w.PusherAreaM2)
	}
	if len(p.Maneuvers) == 0 {
		return fmt.Errorf("plan: at least one maneuver is required")
	}
	for i, m := range p.Maneuvers {
		if err := m.validate(engines, p.Ship); err != nil {
			return fmt.Errorf("plan: maneuver %d (%s): %w", i, m.Type, err)
		}
	}
	return nil
}

func (m Maneuver) validate(engines map[string]bool, s ShipSpec) error {
	if m.Direction != 0 && m.Direction != 1 && m.Direction != -1 {
		return fmt.Errorf("direction must be 1 or -1, got %d", m.Direction)
	}
	switch m.Type {
	case ManeuverAccelerate:
		engine := m.Engine
		if engine == "" {
			engine = "main"
		}
		if !engines[engine] {
			return fmt.Errorf("unknown engine %q", engine)
		}
		if m.FuelMassKg < 0 {
			return fmt.Errorf("fuel_mass_kg must not be negative, got %g", m.FuelMassKg)
		}
		if m.FuelMassKg == 0 && m.TargetVelocityC == 0 {
			return fmt.Errorf("either fuel_mass_kg or target_velocity_c is required")
		}
		if m.AccelerationGees < 0 {
			return fmt.Errorf("acceleration_g must not be negative, got %g", m.AccelerationGees)
		}
	case ManeuverCruise:
		if m.DistanceLy <= 0 {
			return fmt.Errorf("distance_ly must be positive, got %g", m.DistanceLy)
		}
	case ManeuverWait:
		if m.DurationYears <= 0 {
			return fmt.Errorf("duration_years must be positive, got %g", m.DurationYears)
		}
	case ManeuverSail:
		if s.Sail == nil {
			return fmt.Errorf("ship has no sail")
		}
		if !m.AutoTarget && m.TargetVelocityC == 0 {
			return fmt.Errorf("either auto_target or target_velocity_c is required")
		}
		if m.MaxAccelGees < 0 || m.MaxSailDays < 0 {
			return fmt.Errorf("max_accel_g and max_sail_days must not be negative")
		}
	case ManeuverSwim:
		if s.Swimmer == nil {
			return fmt.Errorf("ship has no SWIMMER drive")
		}
		if m.PowerW <= 0 {
			return fmt.Errorf("power_w must be positive, got %g", m.PowerW)
		}
		if m.DurationYears <= 0 {
			return fmt.Errorf("duration_years must be positive, got %g", m.DurationYears)
		}
	case ManeuverGenerateElectricity:
		if m.EnergyJ <= 0 {
			return fmt.Errorf("energy_j must be positive, got %g", m.EnergyJ)
		}
		if m.Efficiency < 0 || m.Efficiency > 1 {
			return fmt.Errorf("efficiency must be in [0, 1], got %g", m.Efficiency)
		}
	default:
		return fmt.Errorf("unknown maneuver type %q", m.Type)
	}
	return nil
}

// Build constructs the departing starship declared by the plan.
func (p Plan) Build() *ship.Starship {
	params := ship.Params{
		PayloadMass:         unit.Mass(p.Ship.PayloadMassKg),
		DestinationDistance: unit.FromLightYears(p.Ship.DestinationLy),
		ElectricalPower:     unit.Power(p.Ship.ElectricalPowerW),
		InitialPosition:     unit.FromAU(p.Ship.InitialPositionAU),
		InitialVelocity:     unit.FromC(p.Ship.InitialVelocityC),
		Engines:             map[string]*drive.Engine{},
	}
	for _, e := range p.Ship.Engines {
		params.Engines[e.Name] = drive.NewEngine(
			unit.Mass(e.FuelMassKg), unit.Speed(e.ExhaustVelocityMS))
	}
	if s := p.Ship.Sail; s != nil {
		params.Sail = drive.NewSolarSail(unit.Mass(s.MassKg), unit.Distance(s.RadiusM), s.Reflectivity)
	}
	if w := p.Ship.Swimmer; w != nil {
		sw := drive.NewSwimmer(unit.Area(w.PusherAreaM2))
		if w.ArealDensityKgM2 > 0 {
			sw.ArealDensity = w.ArealDensityKgM2
		}
		params.Swimmer = sw
	}
	return ship.New(params)
}
