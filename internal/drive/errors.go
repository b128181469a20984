// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package drive

import "errors"

// ErrInsufficientFuel is returned when a maneuver asks for more propellant
// than an engine has left.
var ErrInsufficientFuel = errors.New("not enough fuel for this maneuver")
