// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package drive

import (
	"fmt"
	"math"

	"github.com/perihelion/starflight/internal/unit"
)

// DefaultExhaustVelocity is the exhaust velocity assumed for a fusion
// engine when none is configured (500 km/s).
var DefaultExhaustVelocity = unit.KilometresPerSecond(500)

// Engine is a reaction engine that accelerates a starship by burning fuel.
// The delta-v produced by a burn follows the Tsiolkovsky rocket equation.
type Engine struct {
	// FuelMass is the propellant currently on board.
	FuelMass unit.Mass
	// ExhaustVelocity is the propellant ejection speed relative to the ship.
	ExhaustVelocity unit.Speed
}

// NewEngine returns an engine loaded with fuelMass. A non-positive
// exhaustVelocity selects DefaultExhaustVelocity.
func NewEngine(fuelMass unit.Mass, exhaustVelocity unit.Speed) *Engine {
	if exhaustVelocity <= 0 {
		exhaustVelocity = DefaultExhaustVelocity
	}
	return &Engine{FuelMass: fuelMass, ExhaustVelocity: exhaustVelocity}
}

// BurnFuel burns burnt kilograms of propellant pushing a payload of
// shipMass (the engine's remaining fuel is added on top) and returns the
// resulting change in velocity. The engine's fuel is reduced by the burn.
func (e *Engine) BurnFuel(burnt, shipMass unit.Mass) (unit.Speed, error) {
	if burnt > e.FuelMass {
		return 0, fmt.Errorf("%w: requested %.6g kg of %.6g kg", ErrInsufficientFuel, float64(burnt), float64(e.FuelMass))
	}
	totalMass := shipMass + e.FuelMass
	deltaV := unit.Speed(float64(e.ExhaustVelocity) * math.Log(float64(totalMass)/float64(totalMass-burnt)))
	e.FuelMass -= burnt
	return deltaV, nil
}

// SetTargetDeltaV burns exactly enough fuel to change the ship's velocity
// by deltaV. shipMass is the current total mass being pushed.
func (e *Engine) SetTargetDeltaV(deltaV unit.Speed, shipMass unit.Mass) error {
	finalMass := unit.Mass(float64(shipMass) * math.Exp(-math.Abs(float64(deltaV))/float64(e.ExhaustVelocity)))
	burn := shipMass - finalMass
	if _, err := e.BurnFuel(burn, shipMass); err != nil {
		return err
	}
	if e.FuelMass < 0 {
		return fmt.Errorf("%w: requested %.6g kg of %.6g kg", ErrInsufficientFuel, float64(burn), float64(e.FuelMass+burn))
	}
	return nil
}
