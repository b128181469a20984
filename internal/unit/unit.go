// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package unit defines the physical quantities and constants used across
// Starflight. All quantities are float64 values in SI base units: masses in
// kilograms, distances in metres, speeds in metres per second, times in
// seconds. time.Duration is deliberately not used for mission time; it
// overflows at roughly 292 years, which is shorter than a cruise leg to
// Proxima Centauri at achievable speeds.
package unit

// Mass in kilograms.
type Mass float64

// Distance in metres.
type Distance float64

// Speed in metres per second.
type Speed float64

// Accel in metres per second squared.
type Accel float64

// Time in seconds.
type Time float64

// Energy in joules.
type Energy float64

// Power in watts.
type Power float64

// Area in square metres.
type Area float64

// Universal constants.
const (
	// G is the gravitational constant in m^3 kg^-1 s^-2.
	G = 6.674e-11

	// C is the speed of light in m/s.
	C Speed = 299792458

	// G0 is standard surface gravity in m/s^2.
	G0 Accel = 9.81

	// SolarMass is the mass of the Sun in kg.
	SolarMass Mass = 1.98847e30
)

// Calendar and distance scales.
const (
	// Year is a Julian year in seconds.
	Year Time = 3600.0 * 24.0 * 365.25

	// Day in seconds.
	Day Time = 3600.0 * 24.0

	// LightYear is the distance light travels in one Julian year.
	LightYear Distance = Distance(float64(C) * float64(Year))

	// AU is the astronomical unit in metres.
	AU Distance = 1.495978707e11

	// Kilometre in metres.
	Kilometre Distance = 1000.0
)

// kgPerMeVc2 converts a particle mass given in MeV/c^2 to kilograms.
const kgPerMeVc2 = 1.78266192e-30

// joulePerMeV converts MeV to joules.
const joulePerMeV = 1.602176634e-13

// Nuclide and particle rest masses. Values taken in MeV/c^2 from
// wolframalpha.com, converted to kilograms.
const (
	MassHelium3   Mass = 2809.41 * kgPerMeVc2
	MassHelium4   Mass = 3728.40 * kgPerMeVc2
	MassDeuterium Mass = 1876.12 * kgPerMeVc2
	MassProton    Mass = 938.27 * kgPerMeVc2
)

// FusionReactionEnergy is the energy released by one
// 3He + 2H -> p + 4He reaction (18.354 MeV) in joules.
const FusionReactionEnergy Energy = 18.354 * joulePerMeV

// LightYears reports d in light years.
func (d Distance) LightYears() float64 { return float64(d / LightYear) }

// AUs reports d in astronomical units.
func (d Distance) AUs() float64 { return float64(d / AU) }

// Metres reports d in metres.
func (d Distance) Metres() float64 { return float64(d) }

// Fraction reports v as a fraction of the speed of light.
func (v Speed) Fraction() float64 { return float64(v / C) }

// Gees reports a in multiples of standard gravity.
func (a Accel) Gees() float64 { return float64(a / G0) }

// Years reports t in Julian years.
func (t Time) Years() float64 { return float64(t / Year) }

// Days reports t in days.
func (t Time) Days() float64 { return float64(t / Day) }

// Kilograms reports m in kilograms.
func (m Mass) Kilograms() float64 { return float64(m) }

// FromLightYears builds a Distance from light years.
func FromLightYears(ly float64) Distance { return Distance(ly) * LightYear }

// FromAU builds a Distance from astronomical units.
func FromAU(au float64) Distance { return Distance(au) * AU }

// FromYears builds a Time from Julian years.
func FromYears(y float64) Time { return Time(y) * Year }

// FromC builds a Speed from a fraction of the speed of light.
func FromC(frac float64) Speed { return Speed(frac) * C }

// KilometresPerSecond builds a Speed from km/s.
func KilometresPerSecond(kms float64) Speed { return Speed(kms * 1000.0) }
