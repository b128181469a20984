// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ship implements the starship state machine: a payload pushed by
// named fusion engines, optionally assisted by a solar sail or a SWIMMER
// drive, tracked through one-dimensional maneuvers toward a destination.
// Every maneuver appends to the ship's logbook, which is the source for
// mission reports, plots and the persisted mission history.
//
// The model is non-relativistic throughout. Accelerated legs assume a
// constant proper acceleration (1 g unless overridden) that is used only
// to derive elapsed time and distance covered for a given delta-v.
package ship

import (
	"errors"
	"fmt"
	"math"

	"github.com/perihelion/starflight/internal/drive"
	"github.com/perihelion/starflight/internal/unit"
)

// Defaults applied by New for zero-valued Params fields.
const (
	// DefaultDestination is the distance to Proxima Centauri.
	DefaultDestination = 4.244 // light years
	// DefaultElectricalPower is the hotel load of the ship in watts.
	DefaultElectricalPower unit.Power = 1.5e11
	// DefaultSailTime bounds a sail leg when none is given.
	DefaultSailTime = 14 * unit.Day
	// defaultEfficiency is the fusion-to-electricity conversion efficiency.
	defaultEfficiency = 0.7
)

// Sentinel errors for impossible maneuvers.
var (
	ErrNoEngine      = errors.New("no such engine")
	ErrNotMoving     = errors.New("the starship is not moving")
	ErrNoSail        = errors.New("this starship has no solar sail")
	ErrNoSwimmer     = errors.New("this starship has no SWIMMER drive")
	ErrRelativistic  = errors.New("relativistic speeds are not supported")
	ErrFuelExhausted = errors.New("cannot generate electricity, fuel exhausted")

	// ErrUnreachableSailVelocity is returned when a sail leg asks for a
	// velocity beyond what light pressure can deliver from the current
	// distance.
	ErrUnreachableSailVelocity = errors.New("velocity unreachable by sailing")
)

// LogEntry is one line of the ship's logbook: a state snapshot plus an
// optional message.
type LogEntry struct {
	Time     unit.Time
	Position unit.Distance
	Velocity unit.Speed
	FuelMass unit.Mass
	Message  string
}

// Params configures a new Starship. Zero values select the documented
// defaults.
type Params struct {
	PayloadMass unit.Mass
	Engines     map[string]*drive.Engine

	InitialVelocity unit.Speed
	InitialPosition unit.Distance
	InitialTime     unit.Time

	// DestinationDistance defaults to Proxima Centauri (4.244 ly).
	DestinationDistance unit.Distance
	// ElectricalPower defaults to DefaultElectricalPower.
	ElectricalPower unit.Power

	Sail    *drive.SolarSail
	Swimmer *drive.Swimmer
}

// Starship is a ship under simulation. Mutating maneuvers append logbook
// entries; the zero value is not usable, construct with New.
type Starship struct {
	PayloadMass unit.Mass
	Engines     map[string]*drive.Engine

	Velocity unit.Speed
	Position unit.Distance
	Time     unit.Time

	DestinationDistance unit.Distance
	ElectricalPower     unit.Power

	SolarSail *drive.SolarSail
	Swimmer   *drive.Swimmer

	history []LogEntry
}

// New builds a Starship from params and seeds the logbook with the
// departure state.
func New(p Params) *Starship {
	if p.DestinationDistance == 0 {
		p.DestinationDistance = unit.FromLightYears(DefaultDestination)
	}
	if p.ElectricalPower == 0 {
		p.ElectricalPower = DefaultElectricalPower
	}
	if p.Engines == nil {
		p.Engines = map[string]*drive.Engine{}
	}
	s := &Starship{
		PayloadMass:         p.PayloadMass,
		Engines:             p.Engines,
		Velocity:            p.InitialVelocity,
		Position:            p.InitialPosition,
		Time:                p.InitialTime,
		DestinationDistance: p.DestinationDistance,
		ElectricalPower:     p.ElectricalPower,
		SolarSail:           p.Sail,
		Swimmer:             p.Swimmer,
	}
	s.Log("")
	return s
}

// Log appends the current ship state and message to the logbook.
func (s *Starship) Log(message string) {
	s.history = append(s.history, LogEntry{
		Time:     s.Time,
		Position: s.Position,
		Velocity: s.Velocity,
		FuelMass: s.FuelMass(),
		Message:  message,
	})
}

// Logf appends a formatted logbook message.
func (s *Starship) Logf(format string, args ...any) {
	s.Log(fmt.Sprintf(format, args...))
}

// History returns the logbook entries in order.
func (s *Starship) History() []LogEntry {
	return s.history
}

// FuelMass sums the remaining fuel across all engines.
func (s *Starship) FuelMass() unit.Mass {
	var total unit.Mass
	for _, e := range s.Engines {
		total += e.FuelMass
	}
	return total
}

// TotalMass is payload plus fuel plus any sail and pusher plate mass.
func (s *Starship) TotalMass() unit.Mass {
	total := s.PayloadMass + s.FuelMass()
	if s.SolarSail != nil {
		total += s.SolarSail.SailMass
	}
	if s.Swimmer != nil {
		total += s.Swimmer.PusherMass()
	}
	return total
}

// GenerateElectricity diverts engine fuel to produce energyNeeded of
// electricity via 3He + 2H -> p + 4He. A non-positive efficiency selects
// the default (0.7). The reaction products stay aboard: fuel mass is
// drawn down round-robin across engines and the product mass is added to
// the payload.
func (s *Starship) GenerateElectricity(energyNeeded unit.Energy, efficiency float64) error {
	if efficiency <= 0 {
		efficiency = defaultEfficiency
	}
	reactions := float64(energyNeeded) / (efficiency * float64(unit.FusionReactionEnergy))
	fuelLost := unit.Mass(reactions * float64(unit.MassHelium3+unit.MassDeuterium))
	if s.FuelMass() < fuelLost {
		return fmt.Errorf("%w: need %.4g kg of fuel, have %.4g kg",
			ErrFuelExhausted, float64(fuelLost), float64(s.FuelMass()))
	}
	payloadGained := unit.Mass(reactions * float64(unit.MassProton+unit.MassHelium4))

	// Draw the fuel down round-robin, halving the per-engine share each
	// full pass so engines with little fuel left are skipped gracefully.
	names := make([]string, 0, len(s.Engines))
	for name := range s.Engines {
		names = append(names, name)
	}
	perEngine := fuelLost / unit.Mass(len(names))
	remaining := fuelLost
	engineIdx, totalIdx := 0, 0
	for remaining > 1.0e-6*fuelLost {
		e := s.Engines[names[engineIdx]]
		if e.FuelMass > perEngine {
			e.FuelMass -= perEngine
			remaining -= perEngine
		}
		engineIdx++
		totalIdx++
		if engineIdx >= len(names) {
			engineIdx = 0
			perEngine /= 2
		}
		if totalIdx > 100*len(names) {
			return errors.New("stuck in a loop trying to draw fuel from engines for electricity")
		}
	}
	s.PayloadMass += payloadGained
	return nil
}

// Burn describes an engine maneuver for Accelerate. Exactly one of
// FuelMass (burn a fixed amount) or TargetVelocity (burn whatever reaches
// it) applies; FuelMass wins when positive.
type Burn struct {
	// Engine names the engine to fire; defaults to "main".
	Engine string
	// TargetVelocity to accelerate or decelerate to.
	TargetVelocity unit.Speed
	// FuelMass to burn, overriding TargetVelocity when positive.
	FuelMass unit.Mass
	// Direction is +1 (outbound) or -1; defaults to +1.
	Direction int
	// Acceleration held during the burn; defaults to 1 g.
	Acceleration unit.Accel
	// SkipElectricity suppresses hotel-load generation during the burn.
	SkipElectricity bool
}

// Accelerate performs a burn and returns the new velocity.
func (s *Starship) Accelerate(b Burn) (unit.Speed, error) {
	if b.Engine == "" {
		b.Engine = "main"
	}
	if b.Direction == 0 {
		b.Direction = 1
	}
	if b.Acceleration == 0 {
		b.Acceleration = unit.G0
	}
	engine, ok := s.Engines[b.Engine]
	if !ok {
		return s.Velocity, fmt.Errorf("%w: %q", ErrNoEngine, b.Engine)
	}

	dir := float64(b.Direction)
	var deltaT unit.Time
	if b.FuelMass > 0 {
		deltaV, err := engine.BurnFuel(b.FuelMass, s.TotalMass())
		if err != nil {
			return s.Velocity, err
		}
		deltaT = unit.Time(math.Abs(float64(deltaV)) / float64(b.Acceleration))
		s.Time += deltaT
		s.Position += unit.Distance(float64(s.Velocity)*float64(deltaT) +
			dir*0.5*float64(b.Acceleration)*float64(deltaT)*float64(deltaT))
		s.Velocity += unit.Speed(dir) * deltaV
	} else {
		if err := engine.SetTargetDeltaV(s.Velocity-b.TargetVelocity, s.TotalMass()); err != nil {
			return s.Velocity, err
		}
		deltaV := b.TargetVelocity - s.Velocity
		deltaT = unit.Time(math.Abs(float64(deltaV)) / float64(b.Acceleration))
		s.Position += unit.Distance(float64(s.Velocity)*float64(deltaT) +
			dir*0.5*float64(b.Acceleration)*float64(deltaT)*float64(deltaT))
		s.Time += deltaT
		s.Velocity = b.TargetVelocity
		if !b.SkipElectricity {
			if err := s.GenerateElectricity(unit.Energy(float64(s.ElectricalPower)*float64(deltaT)), 0); err != nil {
				return s.Velocity, err
			}
		}
	}

	if math.Abs(s.Velocity.Fraction()) > 0.5 {
		return s.Velocity, ErrRelativistic
	}

	s.Logf("year %.1f - Acceleration: %.4f g for %.2e years. New velocity is %.2e c. %.2e kg of fuel remaining.",
		(s.Time - deltaT).Years(), b.Acceleration.Gees(), deltaT.Years(), s.Velocity.Fraction(), float64(s.FuelMass()))
	return s.Velocity, nil
}

// Cruise covers |distance| at the current velocity without acceleration.
// The sign of distance is ignored; the ship always travels in the
// direction it is already moving.
func (s *Starship) Cruise(distance unit.Distance, generateElectricity bool) error {
	if s.Velocity == 0 {
		return fmt.Errorf("%w: can't cruise", ErrNotMoving)
	}
	distance = unit.Distance(math.Abs(float64(distance)))
	deltaT := unit.Time(float64(distance) / math.Abs(float64(s.Velocity)))
	s.Position += unit.Distance(math.Copysign(float64(distance), float64(s.Velocity)))
	s.Time += deltaT
	if generateElectricity {
		if err := s.GenerateElectricity(unit.Energy(float64(s.ElectricalPower)*float64(deltaT)), 0); err != nil {
			return err
		}
	}
	s.Logf("year %.1f - Cruise: %.2e years to complete. Distance=%.2e lightyears",
		(s.Time - deltaT).Years(), deltaT.Years(), distance.LightYears())
	return nil
}

// Wait passes time drifting at the current velocity.
func (s *Starship) Wait(t unit.Time, generateElectricity bool) error {
	s.Time += t
	distance := unit.Distance(float64(s.Velocity) * float64(t))
	s.Position += distance
	if generateElectricity {
		if err := s.GenerateElectricity(unit.Energy(float64(s.ElectricalPower)*float64(t)), 0); err != nil {
			return err
		}
	}
	s.Logf("year %.1f - Waited: %.2e years. Distance=%.2e lightyears",
		(s.Time - t).Years(), t.Years(), distance.LightYears())
	return nil
}
