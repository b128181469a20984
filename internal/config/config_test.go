// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	c, err := LoadConfig[Config](nil, Defaults(), nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if c.Database.Type != "sqlite" {
		t.Fatalf("default database type = %q", c.Database.Type)
	}
	if c.Database.DSN != "./starflight.db" {
		t.Fatalf("default dsn = %q", c.Database.DSN)
	}
	if c.Language != "en" {
		t.Fatalf("default language = %q", c.Language)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	doc := "database:\n  type: postgres\n  dsn: postgres://localhost/starflight\nlanguage: de\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := LoadConfig[Config](nil, Defaults(), &path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if c.Database.Type != "postgres" {
		t.Fatalf("database type = %q", c.Database.Type)
	}
	if c.Language != "de" {
		t.Fatalf("language = %q", c.Language)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STARFLIGHT_DATABASE_TYPE", "mysql")
	c, err := LoadConfig[Config](nil, Defaults(), nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if c.Database.Type != "mysql" {
		t.Fatalf("env override ignored, type = %q", c.Database.Type)
	}
}

func TestGetConfigPath(t *testing.T) {
	user, err := GetConfigPath(false)
	if err != nil {
		t.Fatalf("user path failed: %v", err)
	}
	if !strings.HasSuffix(user, filepath.Join("starflight", "starflight.yaml")) {
		t.Fatalf("unexpected user path: %s", user)
	}
}
