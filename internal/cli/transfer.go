// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/perihelion/starflight/internal/db"
	"github.com/perihelion/starflight/internal/i18n"
	"github.com/perihelion/starflight/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// backupCmd dumps the whole mission database into one compressed JSON file.
var backupCmd = &cobra.Command{
	Use:   "backup [output-file]",
	Short: "Create a compressed (zstd) JSON backup of the database",
	Long: `Dumps the entire contents of the mission database (missions, logbooks,
audit log) into a single, Zstandard-compressed JSON file.

If an output file is specified, '.zst' will be appended to the name if it's
not already present. If no output file is specified, a default filename
'starflight-backup-YYYY-MM-DD.json.zst' is used.

This file can be used for disaster recovery or for migrating to a
different database backend.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var outputFile string
		if len(args) == 0 {
			outputFile = fmt.Sprintf("starflight-backup-%s.json.zst", time.Now().Format("2006-01-02"))
		} else {
			outputFile = args[0]
			if !strings.HasSuffix(outputFile, ".zst") {
				outputFile += ".zst"
			}
		}

		data, err := db.ExportDataForBackup()
		if err != nil {
			return fmt.Errorf("could not export data: %w", err)
		}
		if err := writeCompressedBackup(outputFile, data); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", i18n.T("backup.done"), outputFile)
		return nil
	},
}

// restoreCmd restores the database from a compressed JSON backup file.
var restoreCmd = &cobra.Command{
	Use:   "restore <backup-file.zst>",
	Short: "Restore the database from a compressed JSON backup",
	Long: `Restores the mission database from a Zstandard-compressed JSON backup.
By default, this performs a non-destructive "integration" restore, only
adding missions that do not already exist.

To perform a full, destructive restore that WIPES all existing data before
importing, use the --full flag. WARNING: --full is not reversible.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := readCompressedBackup(args[0])
		if err != nil {
			return err
		}
		if backup.SchemaVersion > model.CurrentSchemaVersion {
			return fmt.Errorf("backup schema version %d is newer than this build supports (%d)",
				backup.SchemaVersion, model.CurrentSchemaVersion)
		}

		if fullRestore {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				ok, err := confirmFullRestore(cmd)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), i18n.T("restore.aborted"))
					return nil
				}
			}
			if err := db.ImportDataFromBackup(backup); err != nil {
				return fmt.Errorf("could not restore backup: %w", err)
			}
		} else {
			if err := db.IntegrateDataFromBackup(backup); err != nil {
				return fmt.Errorf("could not integrate backup: %w", err)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("restore.done"))
		return nil
	},
}

// confirmFullRestore asks the user to type the configured database type.
// A destructive restore on a non-terminal stdin requires --yes.
func confirmFullRestore(cmd *cobra.Command) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("refusing a destructive restore without a terminal, pass --yes to confirm")
	}
	fmt.Fprint(cmd.OutOrStdout(), i18n.T("restore.confirm"))
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("could not read confirmation: %w", err)
	}
	return strings.TrimSpace(line) == appConfig.Database.Type, nil
}

// readCompressedBackup reads and decodes a zstd-compressed JSON backup file.
func readCompressedBackup(filename string) (*model.BackupData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zstdReader, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zstdReader.Close()

	var backupData model.BackupData
	if err := json.NewDecoder(zstdReader).Decode(&backupData); err != nil {
		return nil, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}

	return &backupData, nil
}

// writeCompressedBackup streams the JSON encoding through a zstd writer.
func writeCompressedBackup(filename string, data *model.BackupData) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zstdWriter, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	defer func() { _ = zstdWriter.Close() }()

	encoder := json.NewEncoder(zstdWriter)
	encoder.SetIndent("", "  ") // Pretty-print the JSON inside the compressed file

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}

	return nil
}

// dbMaintainCmd runs engine-specific maintenance on the configured database.
var dbMaintainCmd = &cobra.Command{
	Use:   "db-maintain",
	Short: "Run database maintenance (VACUUM/OPTIMIZE) for the configured DB",
	Long:  `Runs engine-specific maintenance tasks (VACUUM, OPTIMIZE TABLE, PRAGMA optimize).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.RunDBMaintenance(appConfig.Database.Type, appConfig.Database.DSN); err != nil {
			return fmt.Errorf("maintenance failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Maintenance completed successfully")
		return nil
	},
}
