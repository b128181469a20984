// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "testing"

func TestMissionString(t *testing.T) {
	m := Mission{Name: "proxima-flyby", DestinationLightYears: 4.244}
	got := m.String()
	if got != "proxima-flyby (4.24 ly)" {
		t.Fatalf("unexpected mission string: %q", got)
	}
}
