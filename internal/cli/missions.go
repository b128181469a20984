// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/perihelion/starflight/internal/db"
	"github.com/perihelion/starflight/internal/i18n"
	"github.com/perihelion/starflight/internal/model"
	"github.com/perihelion/starflight/internal/plan"
	"github.com/perihelion/starflight/internal/report"
	"github.com/perihelion/starflight/internal/ship"
	"github.com/perihelion/starflight/internal/unit"
	"github.com/spf13/cobra"
)

// simulateCmd flies a mission plan and stores the result with its logbook.
var simulateCmd = &cobra.Command{
	Use:   "simulate <plan.yaml>",
	Short: "Run a mission plan and store the result",
	Long: `Loads a YAML mission plan, builds the starship it describes, executes
all maneuvers in order and stores the outcome with the full logbook.

The mission is stored even when a maneuver fails, so the logbook up to
the failure can be inspected with 'starflight history'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			p.Name = name
		}

		s, execErr := p.Execute()
		if s == nil {
			return execErr
		}
		if execErr != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "maneuver failed: %v\n", execErr)
		}

		mission, logs := missionRecord(p, s)
		fmt.Fprintln(cmd.OutOrStdout(), report.Summary(mission))
		if mission.Arrived {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("simulate.arrived"))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("simulate.enroute"))
		}

		if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
			return execErr
		}

		id, err := db.SaveMission(mission, logs)
		if err != nil {
			if errors.Is(err, db.ErrDuplicate) {
				return fmt.Errorf("a mission named %q already exists, use --name to store it under a different name", mission.Name)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), i18n.T("simulate.saved")+"\n", id)
		return execErr
	},
}

// validateCmd checks a mission plan without flying it.
var validateCmd = &cobra.Command{
	Use:   "validate <plan.yaml>",
	Short: "Validate a mission plan without flying it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := plan.Load(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("validate.ok"))
		return nil
	},
}

// missionsCmd lists all stored missions.
var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List stored missions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		missions, err := db.GetAllMissions()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.MissionsTable(missions))
		return nil
	},
}

// historyCmd prints the logbook of one mission.
var historyCmd = &cobra.Command{
	Use:   "history <id|name>",
	Short: "Show the logbook of a stored mission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mission, err := resolveMission(args[0])
		if err != nil {
			return err
		}
		logs, err := db.GetMissionLogs(mission.ID)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.Summary(*mission))
		fmt.Fprintln(cmd.OutOrStdout(), report.HistoryTable(logs))
		return nil
	},
}

// plotCmd renders position, velocity and fuel over time as a PNG.
var plotCmd = &cobra.Command{
	Use:   "plot <id|name>",
	Short: "Render a mission history plot as PNG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mission, err := resolveMission(args[0])
		if err != nil {
			return err
		}
		logs, err := db.GetMissionLogs(mission.ID)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = mission.Name + ".png"
		}
		if err := report.WriteHistoryPlot(report.LogColumns(logs), mission.DestinationLightYears, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
		return nil
	},
}

// deleteCmd removes a mission and its logbook.
var deleteCmd = &cobra.Command{
	Use:   "delete <id|name>",
	Short: "Delete a stored mission and its logbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mission, err := resolveMission(args[0])
		if err != nil {
			return err
		}
		if err := db.DeleteMission(mission.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted mission %s\n", mission)
		return nil
	},
}

// escapeCmd prints the solar escape velocity at a given distance.
var escapeCmd = &cobra.Command{
	Use:   "escape [distance-au]",
	Short: "Compute the solar escape velocity at a distance",
	Long: `Prints the velocity needed to escape the gravity well of the Sun from
a given distance, in astronomical units. The default distance is 1 AU,
Earth's orbit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		distanceAU := 1.0
		if len(args) == 1 {
			var err error
			distanceAU, err = strconv.ParseFloat(args[0], 64)
			if err != nil || distanceAU <= 0 {
				return fmt.Errorf("invalid distance %q, expected a positive number of AU", args[0])
			}
		}
		v := ship.SolarEscapeVelocity(unit.FromAU(distanceAU))
		fmt.Fprintf(cmd.OutOrStdout(), "escape velocity at %.3g AU: %.2f km/s\n", distanceAU, float64(v)/1000.0)
		return nil
	},
}

// resolveMission looks a mission up by numeric id or by name.
func resolveMission(arg string) (*model.Mission, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		return db.GetMission(id)
	}
	return db.GetMissionByName(arg)
}

// missionRecord converts a flown ship into its database representation.
func missionRecord(p plan.Plan, s *ship.Starship) (model.Mission, []model.MissionLogEntry) {
	mission := model.Mission{
		Name:                  p.Name,
		Description:           p.Description,
		DestinationLightYears: s.DestinationDistance.LightYears(),
		PayloadMassKg:         p.Ship.PayloadMassKg,
		FlightTimeYears:       s.Time.Years(),
		FinalVelocityC:        s.Velocity.Fraction(),
		FinalPositionLy:       s.Position.LightYears(),
		RemainingFuelKg:       s.FuelMass().Kilograms(),
		Arrived:               math.Abs(float64(s.Position)) >= float64(s.DestinationDistance),
	}

	history := s.History()
	logs := make([]model.MissionLogEntry, 0, len(history))
	for i, e := range history {
		logs = append(logs, model.MissionLogEntry{
			Seq:        i,
			TimeS:      float64(e.Time),
			PositionM:  float64(e.Position),
			VelocityMS: float64(e.Velocity),
			FuelKg:     float64(e.FuelMass),
			Message:    e.Message,
		})
	}
	return mission, logs
}
