// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package ship

import (
	"math"

	"github.com/perihelion/starflight/internal/unit"
)

// SolarEscapeVelocity is the velocity needed to escape the Sun's gravity
// from the given departure distance.
func SolarEscapeVelocity(departureDistance unit.Distance) unit.Speed {
	return unit.Speed(math.Sqrt(2 * unit.G * float64(unit.SolarMass) / float64(departureDistance)))
}

// ParsedLogs holds logbook columns converted to display units, ready for
// reports and plots.
type ParsedLogs struct {
	PositionsLy []float64
	VelocitiesC []float64
	FuelsKg     []float64
	TimesYears  []float64
}

// ParseLogs converts the logbook into display-unit columns.
func (s *Starship) ParseLogs() ParsedLogs {
	p := ParsedLogs{
		PositionsLy: make([]float64, 0, len(s.history)),
		VelocitiesC: make([]float64, 0, len(s.history)),
		FuelsKg:     make([]float64, 0, len(s.history)),
		TimesYears:  make([]float64, 0, len(s.history)),
	}
	for _, entry := range s.history {
		p.PositionsLy = append(p.PositionsLy, entry.Position.LightYears())
		p.VelocitiesC = append(p.VelocitiesC, entry.Velocity.Fraction())
		p.FuelsKg = append(p.FuelsKg, entry.FuelMass.Kilograms())
		p.TimesYears = append(p.TimesYears, entry.Time.Years())
	}
	return p
}
