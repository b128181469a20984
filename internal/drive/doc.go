// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package drive models the propulsion hardware a starship can carry: fusion
// engines sized by the Tsiolkovsky rocket equation, solar sails, and SWIMMER
// propellantless drives. All drives assume constant accelerations and
// non-relativistic speeds.
package drive
