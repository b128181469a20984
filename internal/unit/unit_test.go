// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package unit

import (
	"math"
	"testing"
)

func approx(got, want, tol float64) bool {
	if want == 0 {
		return math.Abs(got) < tol
	}
	return math.Abs(got-want)/math.Abs(want) < tol
}

func TestLightYearMatchesDefinition(t *testing.T) {
	want := float64(C) * float64(Year)
	if float64(LightYear) != want {
		t.Fatalf("light year = %g, want %g", float64(LightYear), want)
	}
	// Sanity against the IAU value.
	if !approx(float64(LightYear), 9.4607e15, 1e-4) {
		t.Fatalf("light year %g does not match 9.4607e15 m", float64(LightYear))
	}
}

func TestRoundTripConversions(t *testing.T) {
	d := FromLightYears(4.244)
	if !approx(d.LightYears(), 4.244, 1e-12) {
		t.Fatalf("ly round trip: got %g", d.LightYears())
	}
	v := FromC(0.02)
	if !approx(v.Fraction(), 0.02, 1e-12) {
		t.Fatalf("c round trip: got %g", v.Fraction())
	}
	tm := FromYears(12.5)
	if !approx(tm.Years(), 12.5, 1e-12) {
		t.Fatalf("year round trip: got %g", tm.Years())
	}
	if KilometresPerSecond(500).Fraction() >= 0.002 {
		t.Fatalf("500 km/s should be well below 0.002c")
	}
}

func TestParticleMasses(t *testing.T) {
	// The fusion reaction 3He + 2H -> p + 4He must have a positive mass
	// defect matching the released energy within rounding of the inputs.
	defect := float64(MassHelium3+MassDeuterium) - float64(MassProton+MassHelium4)
	if defect <= 0 {
		t.Fatalf("mass defect should be positive, got %g", defect)
	}
	energy := defect * float64(C) * float64(C)
	if !approx(energy, float64(FusionReactionEnergy), 5e-2) {
		t.Fatalf("mass defect energy %g J does not match reaction energy %g J", energy, float64(FusionReactionEnergy))
	}
}
