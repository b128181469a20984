// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package drive

import (
	"errors"
	"math"
	"testing"

	"github.com/perihelion/starflight/internal/unit"
)

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(100000, 0)
	if e.FuelMass != 100000 {
		t.Fatalf("fuel mass = %v, want 100000", e.FuelMass)
	}
	if e.ExhaustVelocity != DefaultExhaustVelocity {
		t.Fatalf("exhaust velocity = %v, want default %v", e.ExhaustVelocity, DefaultExhaustVelocity)
	}
}

func TestBurnFuel(t *testing.T) {
	const fuelMass = unit.Mass(100000)
	const payloadMass = unit.Mass(50)
	e := NewEngine(fuelMass, 0)

	deltaV, err := e.BurnFuel(fuelMass/2, payloadMass)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deltaV <= 0 {
		t.Fatalf("delta-v should be positive, got %v", deltaV)
	}
	if e.FuelMass != fuelMass/2 {
		t.Fatalf("fuel after burn = %v, want %v", e.FuelMass, fuelMass/2)
	}

	// Tsiolkovsky check against a hand calculation.
	total := float64(payloadMass + fuelMass)
	want := float64(e.ExhaustVelocity) * math.Log(total/(total-float64(fuelMass)/2))
	if math.Abs(float64(deltaV)-want)/want > 1e-12 {
		t.Fatalf("delta-v = %v, want %v", float64(deltaV), want)
	}
}

func TestBurnFuelInsufficient(t *testing.T) {
	e := NewEngine(1000, 0)
	if _, err := e.BurnFuel(2000, 50); !errors.Is(err, ErrInsufficientFuel) {
		t.Fatalf("expected ErrInsufficientFuel, got %v", err)
	}
	if e.FuelMass != 1000 {
		t.Fatalf("failed burn must not consume fuel, have %v", e.FuelMass)
	}
}

func TestSetTargetDeltaV(t *testing.T) {
	const fuelMass = unit.Mass(100000)
	e := NewEngine(fuelMass, 0)

	if err := e.SetTargetDeltaV(unit.KilometresPerSecond(1000), 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.FuelMass >= fuelMass {
		t.Fatalf("fuel should decrease, have %v of %v", e.FuelMass, fuelMass)
	}
}

func TestSetTargetDeltaVNegativeDeltaUsesMagnitude(t *testing.T) {
	e1 := NewEngine(100000, 0)
	e2 := NewEngine(100000, 0)
	if err := e1.SetTargetDeltaV(unit.KilometresPerSecond(750), 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e2.SetTargetDeltaV(unit.KilometresPerSecond(-750), 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e1.FuelMass != e2.FuelMass {
		t.Fatalf("burn should depend on |delta-v| only: %v vs %v", e1.FuelMass, e2.FuelMass)
	}
}
