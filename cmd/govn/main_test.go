package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govn/internal/app"
)

// TestRootCmdFlags tests that every configuration flag is registered
// with its default
func TestRootCmdFlags(t *testing.T) {
	var config app.Config
	cmd := newRootCmd(&config)

	tests := []struct {
		flag     string
		defValue string
	}{
		{"ref-area", "31"},
		{"chord", "1.9"},
		{"cl-alpha", "5.64"},
		{"cl-max", "2.6"},
		{"cl-min", "-1.2"},
		{"max-wing-loading", "2100"},
		{"weight-factor", "0.85"},
		{"altitude", "35000"},
		{"altitude-unit", "ft"},
		{"cruise-speed", "203"},
		{"resolution", "60"},
		{"output-dir", "./out"},
		{"base-name", "vn_envelope"},
		{"csv", "true"},
		{"xlsx", "false"},
		{"png", "false"},
		{"verbose", "false"},
		{"version", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.flag)
			require.NotNil(t, f, "flag --%s should be registered", tt.flag)
			assert.Equal(t, tt.defValue, f.DefValue)
		})
	}
}

// TestRootCmdVersion tests the --version short-circuit
func TestRootCmdVersion(t *testing.T) {
	var config app.Config
	cmd := newRootCmd(&config)
	cmd.SetArgs([]string{"--version"})

	assert.NoError(t, cmd.Execute())
}

// TestRootCmdRun tests an end-to-end invocation into a temp directory
func TestRootCmdRun(t *testing.T) {
	dir := t.TempDir()

	var config app.Config
	cmd := newRootCmd(&config)
	cmd.SetArgs([]string{"--output-dir", dir, "--csv"})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(dir, "vn_envelope.csv"))
}

// TestRootCmdRejectsBadParams tests that invalid physics surface as
// command errors
func TestRootCmdRejectsBadParams(t *testing.T) {
	var config app.Config
	cmd := newRootCmd(&config)
	cmd.SetArgs([]string{"--cl-max", "0", "--output-dir", t.TempDir()})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	assert.Error(t, cmd.Execute())
}
