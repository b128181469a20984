// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"path/filepath"
	"testing"
)

func TestRunDBMaintenanceSqlite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "maint.db")
	if _, err := New("sqlite", dsn); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := RunDBMaintenance("sqlite", dsn); err != nil {
		t.Fatalf("maintenance failed: %v", err)
	}
}

func TestRunDBMaintenanceUnsupportedType(t *testing.T) {
	if err := RunDBMaintenance("oracle", "whatever"); err == nil {
		t.Fatal("expected error for unsupported db type")
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "migrate.db")
	if _, err := New("sqlite", dsn); err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	// A second open re-runs the migration check against applied versions.
	if _, err := New("sqlite", dsn); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	if _, err := New("mongodb", "dsn"); err == nil {
		t.Fatal("expected error for unsupported backend")
	}
}
