// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package drive

import (
	"testing"

	"github.com/perihelion/starflight/internal/unit"
)

func TestPusherMassAndShed(t *testing.T) {
	w := NewSwimmer(2.0e19)
	if w.PusherMass() != 2.0e19 {
		t.Fatalf("pusher mass = %v, want 2.0e19 kg at 1 kg/m^2", w.PusherMass())
	}
	w.ShedArea(0.5e19)
	if w.PusherArea != 1.5e19 {
		t.Fatalf("area after shed = %v, want 1.5e19", w.PusherArea)
	}
}

func TestSwimmerAccelerationSigns(t *testing.T) {
	w := NewSwimmer(2.0e19)
	const power = unit.Power(1.0e13)
	v := unit.FromC(0.01)
	mass := unit.Mass(2.0e19 + 50)

	thrust := w.Acceleration(power, v, mass, false)
	if thrust <= 0 {
		t.Fatalf("thrusting acceleration should be positive, got %v", thrust)
	}
	brake := w.Acceleration(power, v, mass, true)
	if brake >= 0 {
		t.Fatalf("braking acceleration should be negative, got %v", brake)
	}
	if -brake <= thrust {
		t.Fatalf("braking (%v) should outpull thrusting (%v): drag helps it", brake, thrust)
	}
}

func TestSwimmerAccelerationAtRest(t *testing.T) {
	// With no relative velocity there is no ion exposure and no thrust.
	w := NewSwimmer(2.0e19)
	got := w.Acceleration(1.0e13, 0, 2.0e19, false)
	if got != 0 {
		t.Fatalf("acceleration at rest = %v, want 0", got)
	}
}
