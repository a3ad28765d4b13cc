package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"govn/internal/app"
)

func newRootCmd(config *app.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "govn",
		Short: "V-n Envelope Generator",
		Long: `Computes the maneuvering and gust-load (V-n) envelope of a
fixed-wing aircraft from a named parameter set and renders the result
as CSV, an xlsx workbook with an embedded chart, and a PNG diagram.

Speeds are equivalent airspeeds in m/s; load factors are dimensionless.

Example usage:
  govn --cl-max 2.6 --cl-min -1.2 --altitude 35000 --altitude-unit ft --png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ShowVersion {
				app.ShowVersion()
				return nil
			}

			application := app.NewApplication(*config)
			return application.Run()
		},
	}

	rootCmd.Flags().Float64Var(&config.SRef, "ref-area", app.DefaultSRef, "Wing reference area (m²)")
	rootCmd.Flags().Float64Var(&config.Chord, "chord", app.DefaultChord, "Mean aerodynamic chord (m)")
	rootCmd.Flags().Float64Var(&config.CLAlpha, "cl-alpha", app.DefaultCLAlpha, "Lift-curve slope (1/rad)")
	rootCmd.Flags().Float64Var(&config.CLMax, "cl-max", app.DefaultCLMax, "Maximum lift coefficient")
	rootCmd.Flags().Float64Var(&config.CLMin, "cl-min", app.DefaultCLMin, "Minimum lift coefficient")
	rootCmd.Flags().Float64Var(&config.MaxWingLoading, "max-wing-loading", app.DefaultMaxWingLoading, "Maximum wing loading (N/m²)")
	rootCmd.Flags().Float64Var(&config.WeightFactor, "weight-factor", app.DefaultWeightFactor, "Analysis weight as a fraction of max wing loading")
	rootCmd.Flags().Float64VarP(&config.Altitude, "altitude", "a", app.DefaultAltitude, "Cruise altitude")
	rootCmd.Flags().StringVar(&config.AltitudeUnit, "altitude-unit", app.DefaultAltitudeUnit, "Altitude unit (m or ft)")
	rootCmd.Flags().Float64VarP(&config.CruiseSpeed, "cruise-speed", "c", app.DefaultCruiseSpeed, "Cruise true airspeed (m/s)")
	rootCmd.Flags().IntVarP(&config.Resolution, "resolution", "r", app.DefaultResolution, "Sample count per curved segment")
	rootCmd.Flags().StringVarP(&config.OutputDir, "output-dir", "o", "./out", "Output directory")
	rootCmd.Flags().StringVar(&config.BaseName, "base-name", "vn_envelope", "Base file name for outputs")
	rootCmd.Flags().BoolVar(&config.WriteCSV, "csv", true, "Write curve points as CSV")
	rootCmd.Flags().BoolVar(&config.WriteXLSX, "xlsx", false, "Write an xlsx workbook with an embedded chart")
	rootCmd.Flags().BoolVar(&config.WritePNG, "png", false, "Write a PNG diagram")
	rootCmd.Flags().BoolVarP(&config.Verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.Flags().BoolVar(&config.ShowVersion, "version", false, "Show version information")

	return rootCmd
}

func main() {
	var config app.Config

	if err := newRootCmd(&config).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
