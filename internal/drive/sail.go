// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package drive

import (
	"math"

	"github.com/perihelion/starflight/internal/unit"
)

// DefaultReflectivity is assumed for a sail when none is configured.
const DefaultReflectivity = 0.9

// SolarSail accelerates a starship on light pressure alone.
//
// The characteristic-acceleration model follows Spieth & Zubrin,
// "Ultra-Thin Solar Sails for Interstellar Travel" (1999); the distance
// dependent acceleration follows Mallove & Matloff, "The Starflight
// Handbook", p. 94.
type SolarSail struct {
	// SailMass is the mass of the sail itself.
	SailMass unit.Mass
	// SailRadius is the radius of the (circular) sail.
	SailRadius unit.Distance
	// Reflectivity of the sail surface, in [0, 1].
	Reflectivity float64
}

// NewSolarSail returns a sail. A non-positive reflectivity selects
// DefaultReflectivity.
func NewSolarSail(sailMass unit.Mass, sailRadius unit.Distance, reflectivity float64) *SolarSail {
	if reflectivity <= 0 {
		reflectivity = DefaultReflectivity
	}
	return &SolarSail{SailMass: sailMass, SailRadius: sailRadius, Reflectivity: reflectivity}
}

// CharacteristicAcceleration is the acceleration of sail plus payload at
// 1 AU from the Sun with the sail face-on.
func (s *SolarSail) CharacteristicAcceleration(payloadMass unit.Mass) unit.Accel {
	totalMass := s.SailMass + payloadMass
	r := float64(s.SailRadius)
	return unit.Accel(s.Reflectivity * 9.126e-6 * math.Pi * r * r / float64(totalMass))
}

// Acceleration is the acceleration of sail plus payload at the given
// distance from the star. If maxAccel is positive the sail is assumed to
// be partly furled to cap the acceleration at that value.
func (s *SolarSail) Acceleration(distanceFromStar unit.Distance, payloadMass unit.Mass, maxAccel unit.Accel) unit.Accel {
	totalMass := s.SailMass + payloadMass
	r := float64(s.SailRadius)
	d := float64(distanceFromStar)
	accel := unit.Accel((1 + s.Reflectivity) * 6.3e17 * r * r / (2 * float64(totalMass) * d * d))
	if maxAccel > 0 && accel > maxAccel {
		accel = maxAccel
	}
	return accel
}

// FinalVelocity is the asymptotic velocity of a sail starting at rest at
// initialDistance from the star.
func (s *SolarSail) FinalVelocity(payloadMass unit.Mass, initialDistance unit.Distance) unit.Speed {
	charAccel := s.CharacteristicAcceleration(payloadMass)
	return unit.Speed(548000.0 * math.Sqrt(float64(charAccel)/math.Abs(initialDistance.AUs())))
}
