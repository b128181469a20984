// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package plan

import (
	"fmt"

	"github.com/perihelion/starflight/internal/ship"
	"github.com/perihelion/starflight/internal/unit"
)

// Execute builds the plan's starship and flies every maneuver in order.
// The ship is returned even on error so the logbook up to the failing
// maneuver can be inspected.
func (p Plan) Execute() (*ship.Starship, error) {
	s := p.Build()
	for i, m := range p.Maneuvers {
		if err := apply(s, m); err != nil {
			return s, fmt.Errorf("plan: maneuver %d (%s): %w", i, m.Type, err)
		}
	}
	return s, nil
}

func apply(s *ship.Starship, m Maneuver) error {
	switch m.Type {
	case ManeuverAccelerate:
		_, err := s.Accelerate(ship.Burn{
			Engine:          m.Engine,
			TargetVelocity:  unit.FromC(m.TargetVelocityC),
			FuelMass:        unit.Mass(m.FuelMassKg),
			Direction:       m.Direction,
			Acceleration:    unit.Accel(m.AccelerationGees) * unit.G0,
			SkipElectricity: m.SkipElectricity,
		})
		return err
	case ManeuverCruise:
		return s.Cruise(unit.FromLightYears(m.DistanceLy), !m.SkipElectricity)
	case ManeuverWait:
		return s.Wait(unit.FromYears(m.DurationYears), !m.SkipElectricity)
	case ManeuverSail:
		return s.Sail(ship.SailLeg{
			TargetVelocity:  unit.FromC(m.TargetVelocityC),
			AutoTarget:      m.AutoTarget,
			MaxAccel:        unit.Accel(m.MaxAccelGees) * unit.G0,
			MaxSailTime:     unit.Time(m.MaxSailDays) * unit.Day,
			SkipElectricity: m.SkipElectricity,
		})
	case ManeuverSwim:
		return s.Swim(ship.SwimLeg{
			PowerDelivered:  unit.Power(m.PowerW),
			SwimTime:        unit.FromYears(m.DurationYears),
			Direction:       m.Direction,
			SkipElectricity: m.SkipElectricity,
		})
	case ManeuverGenerateElectricity:
		return s.GenerateElectricity(unit.Energy(m.EnergyJ), m.Efficiency)
	default:
		return fmt.Errorf("unknown maneuver type %q", m.Type)
	}
}
