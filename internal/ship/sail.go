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

// SailLeg describes a sailing maneuver for Sail.
type SailLeg struct {
	// TargetVelocity to sail to. With AutoTarget set it is derived from
	// the geometry instead: decelerate to rest when the star lies ahead,
	// otherwise accelerate outward to 90% of the attainable velocity.
	TargetVelocity unit.Speed
	AutoTarget     bool
	// StarPosition is the absolute position of the star being sailed
	// against (default: the origin).
	StarPosition unit.Distance
	// MaxAccel caps the sail acceleration (sail partly furled); zero
	// means uncapped.
	MaxAccel unit.Accel
	// MaxSailTime bounds the leg; zero selects DefaultSailTime.
	MaxSailTime unit.Time
	// SkipElectricity suppresses hotel-load generation while sailing.
	SkipElectricity bool
}

// Sail rides light pressure from the star until the target velocity is
// reached, the ship comes to rest, or MaxSailTime elapses.
func (s *Starship) Sail(leg SailLeg) error {
	if s.SolarSail == nil {
		return fmt.Errorf("%w: cannot sail", ErrNoSail)
	}
	if leg.MaxSailTime == 0 {
		leg.MaxSailTime = DefaultSailTime
	}

	relPos := s.Position - leg.StarPosition
	maxVelocity := s.SolarSail.FinalVelocity(s.TotalMass()-s.SolarSail.SailMass, relPos)

	target := leg.TargetVelocity
	decelerating := false
	if leg.AutoTarget {
		if math.Signbit(float64(relPos)) != math.Signbit(float64(s.Velocity)) && s.Velocity != 0 {
			// Star behind the direction of travel: brake to rest.
			target = 0
			decelerating = true
		} else {
			target = unit.Speed(0.90 * float64(maxVelocity) * sign(float64(relPos)))
		}
	} else if target == 0 {
		decelerating = true
	}
	if math.Abs(float64(target)) > math.Abs(float64(maxVelocity)) {
		return fmt.Errorf("%w: requested %.4gc, maximum achievable is %.4gc",
			ErrUnreachableSailVelocity, target.Fraction(), maxVelocity.Fraction())
	}

	payload := s.TotalMass()
	deriv := func(_ float64, y []float64) []float64 {
		// Light pressure acts radially outward from the star.
		accel := s.SolarSail.Acceleration(unit.Distance(y[0]), payload, leg.MaxAccel)
		return []float64{y[1], sign(y[0]) * float64(accel)}
	}

	prevVel := float64(s.Velocity)
	stop := func(_ float64, y []float64) bool {
		vel := y[1]
		defer func() { prevVel = vel }()
		if decelerating && sign(vel) != sign(prevVel) {
			// Zero velocity crossed while braking.
			return true
		}
		if sign(float64(relPos)) == sign(vel) && math.Abs(vel) > math.Abs(float64(target)) {
			// Outbound target velocity reached.
			return true
		}
		return false
	}

	steps, err := physics.Integrate(deriv, 0, float64(leg.MaxSailTime),
		[]float64{float64(relPos), float64(s.Velocity)}, physics.Options{Stop: stop})
	if err != nil {
		return fmt.Errorf("sail integration failed: %w", err)
	}

	// When the stop condition ended the leg early, the last step only
	// exists to bracket the stop; no hotel load is generated for it.
	stopped := steps[len(steps)-1].T < float64(leg.MaxSailTime)

	initialPosition := s.Position
	var sailTime unit.Time
	for i := 1; i < len(steps); i++ {
		deltaT := unit.Time(steps[i].T - steps[i-1].T)
		s.Time += deltaT
		s.Position = initialPosition + unit.Distance(steps[i].Y[0]) - relPos
		s.Velocity = unit.Speed(steps[i].Y[1])
		accel := unit.Accel((steps[i].Y[1] - steps[i-1].Y[1]) / (steps[i].T - steps[i-1].T))
		s.Logf("year %.1f - Sailing with velocity %g m/s with acceleration %gg.",
			s.Time.Years(), float64(s.Velocity), accel.Gees())
		sailTime = unit.Time(steps[i].T)
		if !leg.SkipElectricity && !(stopped && i == len(steps)-1) {
			if err := s.GenerateElectricity(unit.Energy(float64(s.ElectricalPower)*float64(deltaT)), 0); err != nil {
				return err
			}
		}
	}

	if decelerating {
		s.Velocity = 0
	}
	fraction := 0.0
	if maxVelocity != 0 {
		fraction = float64(s.Velocity) / float64(maxVelocity) * 100
	}
	s.Logf("year %.1f - Finished sailing. velocity %g m/s. Traveling at %.1f%% of maximum sail velocity. Sailing time was %g days.",
		s.Time.Years(), float64(s.Velocity), fraction, sailTime.Days())
	return nil
}

// sign mirrors numpy's sign: -1, 0 or +1.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
