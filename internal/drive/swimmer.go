// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package drive

import (
	"math"

	"github.com/perihelion/starflight/internal/unit"
)

// Default SWIMMER parameters: a 1 kg/m^2 pusher plate working against the
// local interstellar medium (0.07 protons per cm^3).
const (
	DefaultArealDensity      = 1.0                 // kg/m^2
	DefaultIonMass unit.Mass = 1.67262192369e-27   // proton mass, kg
	DefaultIonDensity        = 0.07 / (0.01 * 0.01 * 0.01) // protons per m^3
)

// Swimmer is a SWIMMER drive: a propellantless engine that exchanges
// momentum with ions of the interstellar medium through a charged pusher
// plate, consuming only electrical power.
//
// Reference: Drew Brisbin, "Spacecraft With Interstellar Medium Momentum
// Exchange Reactions" (https://arxiv.org/abs/1808.02019).
type Swimmer struct {
	// PusherArea is the area of the pusher plate.
	PusherArea unit.Area
	// ArealDensity is the pusher plate's mass per unit area (kg/m^2).
	ArealDensity float64
	// IonMass is the mass of the medium's ions.
	IonMass unit.Mass
	// IonDensity is the number of ions per cubic metre.
	IonDensity float64
}

// NewSwimmer returns a SWIMMER drive with the given pusher area and
// defaults for the remaining parameters.
func NewSwimmer(pusherArea unit.Area) *Swimmer {
	return &Swimmer{
		PusherArea:   pusherArea,
		ArealDensity: DefaultArealDensity,
		IonMass:      DefaultIonMass,
		IonDensity:   DefaultIonDensity,
	}
}

// PusherMass is the mass of the pusher plate.
func (w *Swimmer) PusherMass() unit.Mass {
	return unit.Mass(float64(w.PusherArea) * w.ArealDensity)
}

// ShedArea drops deltaArea from the pusher plate to shed mass.
func (w *Swimmer) ShedArea(deltaArea unit.Area) {
	w.PusherArea -= deltaArea
}

// Acceleration computes the drive's acceleration for a delivered power,
// the ship's absolute velocity through the medium and its total mass.
// With braking set, momentum is exchanged against the direction of travel.
func (w *Swimmer) Acceleration(powerDelivered unit.Power, absVelocity unit.Speed, totalMass unit.Mass, braking bool) unit.Accel {
	sign := 1.0
	if braking {
		sign = -1.0
	}
	v := float64(absVelocity)
	exposure := float64(w.PusherArea) * float64(w.IonMass) * w.IonDensity * v
	force := sign*math.Sqrt(exposure*(2*float64(powerDelivered)+exposure*v*v)) - exposure*v
	return unit.Accel(force / float64(totalMass))
}
