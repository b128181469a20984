// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package physics provides the numerical integration used for sail and
// SWIMMER trajectory legs: an adaptive Dormand-Prince 5(4) Runge-Kutta
// scheme with error-controlled step sizes.
package physics

import (
	"errors"
	"fmt"
	"math"
)

// ErrNaN is returned when the derivative produces a non-finite value.
var ErrNaN = errors.New("non-finite value in derivative")

// Derivative evaluates dy/dt at (t, y).
type Derivative func(t float64, y []float64) []float64

// Step is one accepted integration step.
type Step struct {
	T float64
	Y []float64
}

// Options tunes the integrator. Zero values select the defaults noted on
// each field.
type Options struct {
	// RelTol is the relative error tolerance (default 1e-3).
	RelTol float64
	// AbsTol is the absolute error tolerance (default 1e-6).
	AbsTol float64
	// MaxStep caps the step size (default: the full interval).
	MaxStep float64
	// Stop, when set, is evaluated after each accepted step; returning
	// true ends the integration early.
	Stop func(t float64, y []float64) bool
}

// Dormand-Prince 5(4) coefficients.
var (
	dpC = [7]float64{0, 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1, 1}
	dpA = [7][6]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{44.0 / 45, -56.0 / 15, 32.0 / 9},
		{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729},
		{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656},
		{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84},
	}
	// 5th order solution weights.
	dpB = [7]float64{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84, 0}
	// Embedded 4th order weights for the error estimate.
	dpE = [7]float64{5179.0 / 57600, 0, 7571.0 / 16695, 393.0 / 640, -92097.0 / 339200, 187.0 / 2100, 1.0 / 40}
)

// Integrate advances y' = f(t, y) from (t0, y0) to t1, returning every
// accepted step including the initial state. Integration may end early via
// opts.Stop.
func Integrate(f Derivative, t0, t1 float64, y0 []float64, opts Options) ([]Step, error) {
	if t1 <= t0 {
		return nil, fmt.Errorf("invalid interval [%g, %g]", t0, t1)
	}
	rtol := opts.RelTol
	if rtol <= 0 {
		rtol = 1e-3
	}
	atol := opts.AbsTol
	if atol <= 0 {
		atol = 1e-6
	}
	maxStep := opts.MaxStep
	if maxStep <= 0 {
		maxStep = t1 - t0
	}

	n := len(y0)
	y := append([]float64(nil), y0...)
	t := t0
	steps := []Step{{T: t0, Y: append([]float64(nil), y0...)}}

	h := (t1 - t0) / 100
	if h > maxStep {
		h = maxStep
	}

	k := make([][]float64, 7)
	yTmp := make([]float64, n)
	yNext := make([]float64, n)

	eval := func(tt float64, yy []float64) ([]float64, error) {
		d := f(tt, yy)
		for _, v := range d {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w at t=%g", ErrNaN, tt)
			}
		}
		return d, nil
	}

	const maxIters = 1_000_000
	for iter := 0; t < t1; iter++ {
		if iter >= maxIters {
			return nil, fmt.Errorf("integration stalled after %d steps at t=%g", maxIters, t)
		}
		if t+h > t1 {
			h = t1 - t
		}

		var err error
		k[0], err = eval(t, y)
		if err != nil {
			return nil, err
		}
		for i := 1; i < 7; i++ {
			for j := 0; j < n; j++ {
				sum := 0.0
				for l := 0; l < i; l++ {
					sum += dpA[i][l] * k[l][j]
				}
				yTmp[j] = y[j] + h*sum
			}
			k[i], err = eval(t+dpC[i]*h, yTmp)
			if err != nil {
				return nil, err
			}
		}

		// 5th order candidate and scaled error norm.
		errNorm := 0.0
		for j := 0; j < n; j++ {
			sol := 0.0
			low := 0.0
			for i := 0; i < 7; i++ {
				sol += dpB[i] * k[i][j]
				low += dpE[i] * k[i][j]
			}
			yNext[j] = y[j] + h*sol
			scale := atol + rtol*math.Max(math.Abs(y[j]), math.Abs(yNext[j]))
			diff := h * (sol - low) / scale
			errNorm += diff * diff
		}
		errNorm = math.Sqrt(errNorm / float64(n))

		if errNorm <= 1 {
			t += h
			copy(y, yNext)
			steps = append(steps, Step{T: t, Y: append([]float64(nil), y...)})
			if opts.Stop != nil && opts.Stop(t, y) {
				break
			}
		}

		// Standard step size controller with safety factor and clamps.
		factor := 5.0
		if errNorm > 0 {
			factor = 0.9 * math.Pow(errNorm, -0.2)
			if factor > 5 {
				factor = 5
			} else if factor < 0.2 {
				factor = 0.2
			}
		}
		h *= factor
		if h > maxStep {
			h = maxStep
		}
		if h <= 0 || math.IsNaN(h) {
			return nil, fmt.Errorf("step size underflow at t=%g", t)
		}
	}

	return steps, nil
}
