// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db provides the data access layer for Starflight.
// It abstracts the underlying database (SQLite, PostgreSQL or MySQL)
// behind a consistent Store interface so the CLI and TUI can persist
// mission runs, logbooks and the audit trail without caring about the
// engine underneath. All SQL goes through Bun; backend-specific stores
// only add audit logging around mutations.
package db
