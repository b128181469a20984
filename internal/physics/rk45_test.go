// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package physics

import (
	"errors"
	"math"
	"testing"
)

func TestIntegrateExponentialDecay(t *testing.T) {
	// y' = -y, y(0) = 1 has the solution e^-t.
	steps, err := Integrate(func(_ float64, y []float64) []float64 {
		return []float64{-y[0]}
	}, 0, 5, []float64{1}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := steps[len(steps)-1]
	if math.Abs(last.T-5) > 1e-9 {
		t.Fatalf("final t = %g, want 5", last.T)
	}
	want := math.Exp(-5)
	if math.Abs(last.Y[0]-want)/want > 1e-3 {
		t.Fatalf("y(5) = %g, want %g", last.Y[0], want)
	}
	if steps[0].T != 0 || steps[0].Y[0] != 1 {
		t.Fatalf("initial state must be recorded, got %+v", steps[0])
	}
}

func TestIntegrateConstantAcceleration(t *testing.T) {
	// x'' = 2 from rest: x(t) = t^2.
	steps, err := Integrate(func(_ float64, y []float64) []float64 {
		return []float64{y[1], 2}
	}, 0, 10, []float64{0, 0}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := steps[len(steps)-1]
	if math.Abs(last.Y[0]-100)/100 > 1e-6 {
		t.Fatalf("x(10) = %g, want 100", last.Y[0])
	}
	if math.Abs(last.Y[1]-20)/20 > 1e-6 {
		t.Fatalf("v(10) = %g, want 20", last.Y[1])
	}
}

func TestIntegrateStopCondition(t *testing.T) {
	steps, err := Integrate(func(_ float64, y []float64) []float64 {
		return []float64{1}
	}, 0, 1000, []float64{0}, Options{
		MaxStep: 1,
		Stop:    func(_ float64, y []float64) bool { return y[0] >= 3 },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := steps[len(steps)-1]
	if last.T >= 1000 {
		t.Fatalf("stop condition ignored, ran to t=%g", last.T)
	}
	if last.Y[0] < 3 {
		t.Fatalf("stopped before condition held: y=%g", last.Y[0])
	}
}

func TestIntegrateRejectsNaN(t *testing.T) {
	_, err := Integrate(func(_ float64, y []float64) []float64 {
		return []float64{math.NaN()}
	}, 0, 1, []float64{0}, Options{})
	if !errors.Is(err, ErrNaN) {
		t.Fatalf("expected ErrNaN, got %v", err)
	}
}

func TestIntegrateRejectsBadInterval(t *testing.T) {
	if _, err := Integrate(func(_ float64, y []float64) []float64 {
		return []float64{0}
	}, 5, 5, []float64{0}, Options{}); err == nil {
		t.Fatalf("expected error for empty interval")
	}
}
