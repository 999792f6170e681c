package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/VanishSun/fittrack/internal/models"
	"github.com/VanishSun/fittrack/internal/sensor"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

//go:embed packages.toml
var demoPackages []byte

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute and print a summary line for every recorded sensor packet",
	RunE: func(cmd *cobra.Command, args []string) error {
		packages, err := sensor.ParsePackages(demoPackages)
		if err != nil {
			return fmt.Errorf("failed to load sensor packets: %w", err)
		}

		return runReport(os.Stdout, packages)
	},
}

// runReport processes packets in order: one report line per decoded workout,
// a diagnostic and no report line for packets with an unknown code.
func runReport(out io.Writer, packages []sensor.Package) error {
	for _, pkg := range packages {
		workout, err := sensor.Decode(pkg)
		if err != nil {
			if errors.Is(err, sensor.ErrUnknownWorkout) {
				warn := color.New(color.FgYellow).Sprintf("Workout type %s cannot be processed.", pkg.Code)
				fmt.Fprintln(out, warn)
				continue
			}
			return fmt.Errorf("failed to decode %s packet: %w", pkg.Code, err)
		}

		fmt.Fprintln(out, models.NewReportLine(workout).Message())
	}

	return nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
