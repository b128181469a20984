// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli sets up the command-line interface for Starflight using the
// Cobra library. It defines the root command, subcommands (like simulate,
// missions, backup), flags, and the shared service bootstrap.
package cli // import "github.com/perihelion/starflight/internal/cli"

import (
	"errors"
	"fmt"
	"os"

	"github.com/perihelion/starflight/internal/config"
	"github.com/perihelion/starflight/internal/db"
	"github.com/perihelion/starflight/internal/i18n"
	"github.com/perihelion/starflight/internal/logging"
	"github.com/perihelion/starflight/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set by the linker at release build time.
var version = "dev"

var (
	cfgFile     string
	verbose     bool
	fullRestore bool // Flag for the restore command
)

// appConfig holds the merged configuration for the current invocation.
var appConfig config.Config

// setupDefaultServices loads the configuration and brings up i18n, logging
// and the mission database. It runs before every subcommand.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()

	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	// A "file not found" error is expected on first run, so we handle it
	// specifically and persist a default config for the user.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Fall back to defaults for critical values left empty in the user's file.
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
	}
	if appConfig.Database.DSN == "" {
		appConfig.Database.DSN = defaults["database.dsn"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}

	if verbose || appConfig.Debug {
		logging.SetDebug(true)
		db.SetDebug(true)
	}

	i18n.Init(appConfig.Language)

	tui.SetConfigSaver(func() error {
		appConfig.Language = viper.GetString("language")
		return config.WriteConfigFile(&appConfig, false)
	})

	// Tests and earlier setup may have initialized the store already.
	if !db.IsInitialized() {
		if err := db.InitDB(appConfig.Database.Type, appConfig.Database.DSN); err != nil {
			return fmt.Errorf("could not initialize database: %w", err)
		}
	}

	return nil
}

// getConfigPathFromCli returns the --config flag value if the user set it.
func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// applyDefaultFlags attaches the shared database flags to a command.
// NewRootCmd may be called multiple times in tests while the subcommands
// are package-level, and pflag panics on duplicate definitions, so check
// first.
func applyDefaultFlags(cmd *cobra.Command) {
	if cmd.Flags().Lookup("database.type") == nil {
		cmd.Flags().String("database.type", "sqlite", "Database type (sqlite, postgres, mysql)")
	}
	if cmd.Flags().Lookup("database.dsn") == nil {
		cmd.Flags().String("database.dsn", "./starflight.db", "Database connection string (DSN)")
	}
}

// NewRootCmd creates and configures a new root cobra command. It is used
// for the real application as well as fresh instances in tests.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "starflight",
		Short: "Starflight is an interstellar mission planning toolkit",
		Long: `Starflight plans and flies interstellar missions on paper.
It models chemical and fusion rockets with the rocket equation, solar
sails riding light pressure out of the solar system, and SWIMMER drives
pushing against the interstellar medium. Mission plans are YAML files;
flown missions land in a database with their full logbook.

Running without a subcommand will launch the interactive TUI.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupDefaultServices(cmd, args)
		},
		Run: func(cmd *cobra.Command, args []string) {
			// The database and i18n are already initialized by PersistentPreRunE.
			tui.Run()
		},
	}

	cmd.Version = version

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (debug logging)")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	applyDefaultFlags(cmd)

	applyDefaultFlags(simulateCmd)
	if simulateCmd.Flags().Lookup("name") == nil {
		simulateCmd.Flags().String("name", "", "Override the mission name from the plan file")
		simulateCmd.Flags().Bool("dry-run", false, "Fly the mission but do not store it")
	}
	applyDefaultFlags(missionsCmd)
	applyDefaultFlags(historyCmd)
	applyDefaultFlags(plotCmd)
	if plotCmd.Flags().Lookup("out") == nil {
		plotCmd.Flags().StringP("out", "o", "", "Output PNG path (default <mission-name>.png)")
	}
	applyDefaultFlags(deleteCmd)
	applyDefaultFlags(backupCmd)
	applyDefaultFlags(restoreCmd)
	if restoreCmd.Flags().Lookup("full") == nil {
		restoreCmd.Flags().BoolVar(&fullRestore, "full", false, "Perform a full, destructive restore (wipes all existing data first)")
		restoreCmd.Flags().Bool("yes", false, "Skip the confirmation prompt for --full")
	}
	applyDefaultFlags(dbMaintainCmd)

	cmd.AddCommand(
		simulateCmd,
		validateCmd,
		missionsCmd,
		historyCmd,
		plotCmd,
		deleteCmd,
		escapeCmd,
		backupCmd,
		restoreCmd,
		dbMaintainCmd,
		versionCmd,
	)

	return cmd
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "starflight %s\n", version)
	},
}

// Execute runs the CLI entrypoint. The cmd/starflight main package calls
// this and handles process exit.
func Execute() error {
	return NewRootCmd().Execute()
}
