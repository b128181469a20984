// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/perihelion/starflight/internal/db"
)

const testPlan = `name: proxima-direct
description: chemical kick out of the well
ship:
  payload_mass_kg: 50
  engines:
    - name: main
      fuel_mass_kg: 1.0e10
maneuvers:
  - type: accelerate
    engine: main
    target_velocity_c: 0.01
  - type: cruise
    distance_ly: 0.1
`

// setupCLI isolates config discovery and points the store at an in-memory
// database.
func setupCLI(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := db.InitDB("sqlite", ":memory:"); err != nil {
		t.Fatalf("init db: %v", err)
	}
}

// resetCommandFlags clears flag values that stick to the package-level
// subcommands between executions.
func resetCommandFlags() {
	_ = simulateCmd.Flags().Set("name", "")
	_ = simulateCmd.Flags().Set("dry-run", "false")
	_ = plotCmd.Flags().Set("out", "")
	_ = restoreCmd.Flags().Set("yes", "false")
	fullRestore = false
}

// runCLI executes the root command with args and returns its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetCommandFlags()
	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writePlanFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(testPlan), 0o644); err != nil {
		t.Fatalf("write plan: %v", err)
	}
	return path
}

func TestValidateCommand(t *testing.T) {
	setupCLI(t)
	out, err := runCLI(t, "validate", writePlanFile(t))
	if err != nil {
		t.Fatalf("validate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Plan is valid.") {
		t.Fatalf("unexpected validate output: %q", out)
	}
}

func TestValidateRejectsBrokenPlan(t *testing.T) {
	setupCLI(t)
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("name: x\n"), 0o644); err != nil {
		t.Fatalf("write plan: %v", err)
	}
	if _, err := runCLI(t, "validate", path); err == nil {
		t.Fatalf("expected error for broken plan")
	}
}

func TestSimulateStoresMission(t *testing.T) {
	setupCLI(t)
	out, err := runCLI(t, "simulate", writePlanFile(t))
	if err != nil {
		t.Fatalf("simulate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Mission saved as id") {
		t.Fatalf("expected save confirmation, got: %q", out)
	}

	mission, err := db.GetMissionByName("proxima-direct")
	if err != nil {
		t.Fatalf("mission not stored: %v", err)
	}
	if mission.FinalVelocityC < 0.009 {
		t.Fatalf("final velocity = %g c, expected ~0.01 c", mission.FinalVelocityC)
	}
	logs, err := db.GetMissionLogs(mission.ID)
	if err != nil || len(logs) == 0 {
		t.Fatalf("expected a stored logbook, got %d entries, err %v", len(logs), err)
	}
}

func TestSimulateDryRunStoresNothing(t *testing.T) {
	setupCLI(t)
	out, err := runCLI(t, "simulate", "--dry-run", "--name", "ephemeral", writePlanFile(t))
	if err != nil {
		t.Fatalf("simulate failed: %v\n%s", err, out)
	}
	if strings.Contains(out, "Mission saved") {
		t.Fatalf("dry run must not store the mission: %q", out)
	}
	if _, err := db.GetMissionByName("ephemeral"); err == nil {
		t.Fatalf("dry run stored the mission anyway")
	}
}

func TestMissionsHistoryAndDelete(t *testing.T) {
	setupCLI(t)
	if out, err := runCLI(t, "simulate", writePlanFile(t)); err != nil {
		t.Fatalf("simulate failed: %v\n%s", err, out)
	}

	out, err := runCLI(t, "missions")
	if err != nil {
		t.Fatalf("missions failed: %v", err)
	}
	if !strings.Contains(out, "proxima-direct") {
		t.Fatalf("mission list missing mission: %q", out)
	}

	out, err = runCLI(t, "history", "proxima-direct")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "proxima-direct") {
		t.Fatalf("history output missing mission name: %q", out)
	}

	if _, err = runCLI(t, "delete", "proxima-direct"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := db.GetMissionByName("proxima-direct"); err == nil {
		t.Fatalf("mission still present after delete")
	}
}

func TestHistoryUnknownMission(t *testing.T) {
	setupCLI(t)
	if _, err := runCLI(t, "history", "no-such-mission"); err == nil {
		t.Fatalf("expected error for unknown mission")
	}
}

func TestEscapeCommand(t *testing.T) {
	setupCLI(t)
	out, err := runCLI(t, "escape")
	if err != nil {
		t.Fatalf("escape failed: %v", err)
	}
	// sqrt(2 G M_sun / 1 AU) is about 42.1 km/s.
	if !strings.Contains(out, "42.1") {
		t.Fatalf("unexpected escape velocity output: %q", out)
	}

	if _, err := runCLI(t, "escape", "not-a-number"); err == nil {
		t.Fatalf("expected error for invalid distance")
	}
}

func TestBackupAndIntegrateRestore(t *testing.T) {
	setupCLI(t)
	if out, err := runCLI(t, "simulate", writePlanFile(t)); err != nil {
		t.Fatalf("simulate failed: %v\n%s", err, out)
	}

	backupPath := filepath.Join(t.TempDir(), "missions.json")
	out, err := runCLI(t, "backup", backupPath)
	if err != nil {
		t.Fatalf("backup failed: %v\n%s", err, out)
	}
	backupFile := backupPath + ".zst"
	if _, err := os.Stat(backupFile); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	mission, err := db.GetMissionByName("proxima-direct")
	if err != nil {
		t.Fatalf("mission lookup: %v", err)
	}
	if err := db.DeleteMission(mission.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if out, err = runCLI(t, "restore", backupFile); err != nil {
		t.Fatalf("restore failed: %v\n%s", err, out)
	}
	restored, err := db.GetMissionByName("proxima-direct")
	if err != nil {
		t.Fatalf("mission not restored: %v", err)
	}
	logs, err := db.GetMissionLogs(restored.ID)
	if err != nil || len(logs) == 0 {
		t.Fatalf("logbook not restored, %d entries, err %v", len(logs), err)
	}
}

func TestDBMaintainCommand(t *testing.T) {
	setupCLI(t)
	dsn := filepath.Join(t.TempDir(), "maint.db")
	out, err := runCLI(t, "db-maintain", "--database.type", "sqlite", "--database.dsn", dsn)
	if err != nil {
		t.Fatalf("db-maintain failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Maintenance completed successfully") {
		t.Fatalf("unexpected maintenance output: %q", out)
	}
}
