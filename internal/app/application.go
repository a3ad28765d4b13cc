package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"govn/internal/atmosphere"
	"govn/internal/envelope"
	"govn/internal/export"
	"govn/internal/gust"
)

// Application represents the main application
type Application struct {
	config Config
	logger *logrus.Logger
}

// NewApplication creates a new application instance
func NewApplication(config Config) *Application {
	logger := logrus.New()
	if config.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Application{
		config: config,
		logger: logger,
	}
}

// Params maps the configuration onto the envelope input struct.
func (app *Application) Params() envelope.AircraftParams {
	return envelope.AircraftParams{
		SRef:           app.config.SRef,
		Chord:          app.config.Chord,
		CLAlpha:        app.config.CLAlpha,
		CLMax:          app.config.CLMax,
		CLMin:          app.config.CLMin,
		MaxWingLoading: app.config.MaxWingLoading,
		WeightFactor:   app.config.WeightFactor,
		CruiseAltitude: app.config.Altitude,
		AltitudeUnit:   atmosphere.Unit(app.config.AltitudeUnit),
		CruiseSpeedTAS: app.config.CruiseSpeed,
	}
}

// Run computes the envelopes for the configured aircraft and writes
// the requested output formats. The computation is one-shot and
// deterministic; any failure aborts the run with no partial output.
func (app *Application) Run() error {
	app.logger.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}).Info("Starting V-n envelope computation")

	result, err := app.Compute()
	if err != nil {
		return err
	}

	app.logger.WithFields(logrus.Fields{
		"v_s":   fmt.Sprintf("%.2f", result.Speeds.VS),
		"v_a":   fmt.Sprintf("%.2f", result.Speeds.VA),
		"v_b":   fmt.Sprintf("%.2f", result.Speeds.VB),
		"v_c":   fmt.Sprintf("%.2f", result.Speeds.VC),
		"v_mo":  fmt.Sprintf("%.2f", result.Speeds.VMO),
		"v_d":   fmt.Sprintf("%.2f", result.Speeds.VD),
		"n_max": fmt.Sprintf("%.3f", result.Loads.NMax),
		"n_min": fmt.Sprintf("%.3f", result.Loads.NMin),
		"k_g":   fmt.Sprintf("%.3f", result.Kg),
	}).Info("Envelope computed")

	return app.writeOutputs(result)
}

// Compute runs the computation pipeline: atmosphere lookup, gust
// table, then the curve builder.
func (app *Application) Compute() (*envelope.Result, error) {
	params := app.Params()
	unit := atmosphere.Unit(app.config.AltitudeUnit)

	state, err := atmosphere.Lookup(app.config.Altitude, unit)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve atmosphere: %w", err)
	}
	app.logger.WithFields(logrus.Fields{
		"altitude_ft": fmt.Sprintf("%.0f", state.AltitudeFt),
		"density":     fmt.Sprintf("%.4f", state.Density),
		"sigma":       fmt.Sprintf("%.4f", state.Sigma),
	}).Debug("Atmosphere resolved")

	gusts, err := gust.Speeds(app.config.Altitude, unit)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve gust velocities: %w", err)
	}
	app.logger.WithFields(logrus.Fields{
		"u_b": fmt.Sprintf("%.2f", gusts.RoughAir),
		"u_c": fmt.Sprintf("%.2f", gusts.Cruise),
		"u_d": fmt.Sprintf("%.2f", gusts.Dive),
	}).Debug("Gust velocities resolved")

	builder, err := envelope.NewBuilder(params, state, gusts, app.config.Resolution, app.logger)
	if err != nil {
		return nil, err
	}
	result, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("envelope construction failed: %w", err)
	}
	return result, nil
}

// writeOutputs writes the configured output formats.
func (app *Application) writeOutputs(result *envelope.Result) error {
	if !app.config.WriteCSV && !app.config.WriteXLSX && !app.config.WritePNG {
		app.logger.Warn("No output format selected, computation discarded")
		return nil
	}

	if err := os.MkdirAll(app.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	base := filepath.Join(app.config.OutputDir, app.config.BaseName)

	if app.config.WriteCSV {
		path := base + ".csv"
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create CSV file: %w", err)
		}
		if err := export.WriteCSV(f, result); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close CSV file: %w", err)
		}
		app.logger.WithField("path", path).Info("CSV written")
	}

	if app.config.WriteXLSX {
		path := base + ".xlsx"
		if err := export.WriteWorkbook(path, result); err != nil {
			return err
		}
		app.logger.WithField("path", path).Info("Workbook written")
	}

	if app.config.WritePNG {
		path := base + ".png"
		if err := export.SavePNG(path, result, export.DefaultChartWidth, export.DefaultChartHeight); err != nil {
			return err
		}
		app.logger.WithField("path", path).Info("Diagram written")
	}

	return nil
}
