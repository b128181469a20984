// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package ship

import (
	"fmt"
	"math"

	"github.com/perihelion/starflight/internal/physics"
	"github.com/perihelion/starflight/internal/unit"
)

// SwimLeg describes a SWIMMER maneuver for Swim.
type SwimLeg struct {
	// PowerDelivered to the drive (beamed or produced on board).
	PowerDelivered unit.Power
	// SwimTime is the duration of the leg.
	SwimTime unit.Time
	// Direction is +1 (outbound) or -1; defaults to +1. The drive brakes
	// whenever the ship moves against this direction.
	Direction int
	// SkipElectricity suppresses hotel-load generation while swimming.
	SkipElectricity bool
}

// Swim accelerates or decelerates against the interstellar medium using
// the SWIMMER drive.
func (s *Starship) Swim(leg SwimLeg) error {
	if s.Swimmer == nil {
		return fmt.Errorf("%w: cannot swim", ErrNoSwimmer)
	}
	if leg.Direction == 0 {
		leg.Direction = 1
	}
	dir := float64(leg.Direction)
	totalMass := s.TotalMass()

	deriv := func(_ float64, y []float64) []float64 {
		vel := y[1]
		motion := sign(vel)
		if motion == 0 {
			motion = dir
		}
		// The drive model works in the frame of motion; map its thrust or
		// braking force back into world coordinates.
		accel := s.Swimmer.Acceleration(leg.PowerDelivered, unit.Speed(math.Abs(vel)), totalMass, motion != dir)
		return []float64{vel, motion * float64(accel)}
	}

	steps, err := physics.Integrate(deriv, 0, float64(leg.SwimTime),
		[]float64{float64(s.Position), float64(s.Velocity)}, physics.Options{})
	if err != nil {
		return fmt.Errorf("swim integration failed: %w", err)
	}

	var swimTime unit.Time
	for i := 1; i < len(steps); i++ {
		deltaT := unit.Time(steps[i].T - steps[i-1].T)
		s.Time += deltaT
		s.Position = unit.Distance(steps[i].Y[0])
		s.Velocity = unit.Speed(steps[i].Y[1])
		accel := unit.Accel((steps[i].Y[1] - steps[i-1].Y[1]) / (steps[i].T - steps[i-1].T))
		s.Logf("year %.1f - Swimming with velocity %g m/s with acceleration %gg.",
			s.Time.Years(), float64(s.Velocity), accel.Gees())
		swimTime = unit.Time(steps[i].T)
		if !leg.SkipElectricity {
			if err := s.GenerateElectricity(unit.Energy(float64(s.ElectricalPower)*float64(deltaT)), 0); err != nil {
				return err
			}
		}
	}

	s.Logf("year %.1f - Finished swimming. velocity %g m/s. Swimming time was %g days.",
		s.Time.Years(), float64(s.Velocity), swimTime.Days())
	return nil
}
