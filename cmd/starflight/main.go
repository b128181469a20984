// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// main is the entry point of the Starflight binary. All command wiring
// lives in internal/cli.
package main

import (
	"os"

	"github.com/perihelion/starflight/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}
