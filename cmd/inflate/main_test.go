package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/costmap/internal/monitoring"
	"github.com/katalvlaran/costmap/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func muteLogs(t *testing.T) {
	t.Helper()
	orig := monitoring.Logf
	monitoring.SetLogger(nil)
	t.Cleanup(func() { monitoring.SetLogger(orig) })
}

func TestParseFlags_Overrides(t *testing.T) {
	o, err := parseFlags([]string{"-radius", "2", "-resolution", "1", "-strategy", "scatter", "-print"})
	require.NoError(t, err)
	assert.True(t, o.printMaps)
	require.NotNil(t, o.overrides.InflationRadius)
	assert.Equal(t, 2, *o.overrides.InflationRadius)
	require.NotNil(t, o.overrides.Strategy)
	assert.Equal(t, "scatter", *o.overrides.Strategy)
	// Unset flags must not override config values.
	assert.Nil(t, o.overrides.Width)
	assert.Nil(t, o.overrides.InscribedRadius)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := parseFlags([]string{"-bogus"})
	assert.Error(t, err)
}

// TestRun_Walkthrough inflates the 10×10 walkthrough map and checks the
// printed obstacle markers: r=2 with 1 m cells adds no new lethal cells.
func TestRun_Walkthrough(t *testing.T) {
	muteLogs(t)
	o, err := parseFlags([]string{
		"-input", filepath.Join("testdata", "walkthrough.txt"),
		"-radius", "2", "-inscribed", "0.325", "-resolution", "1", "-scaling", "3",
		"-print", "-kernel",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(o, &out))
	text := out.String()

	assert.Contains(t, text, "=== Inflation Kernel ===")
	assert.Contains(t, text, "=== Input Costmap ===")
	inflated := text[strings.Index(text, "=== Inflated Map ==="):]
	assert.Equal(t, 7, strings.Count(inflated, "X"))
	// Orthogonal neighbours of an obstacle round to 33.
	assert.Contains(t, inflated, " 33 ")
}

func TestRun_GeneratedBatchWithConfigAndHeatmap(t *testing.T) {
	muteLogs(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"width": 30, "height": 20, "clusters": 5, "seed": 11, "maps": 3, "workers": 2}`), 0o644))
	png := filepath.Join(dir, "cost.png")

	o, err := parseFlags([]string{"-config", cfgPath, "-heatmap", png, "-radius", "4"})
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, run(o, &out))
	assert.Empty(t, out.String())

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRun_Errors(t *testing.T) {
	muteLogs(t)

	o, err := parseFlags([]string{"-resolution", "0"})
	require.NoError(t, err)
	assert.ErrorIs(t, run(o, &bytes.Buffer{}), kernel.ErrInvalidParameter)

	o, err = parseFlags([]string{"-config", filepath.Join(t.TempDir(), "missing.json")})
	require.NoError(t, err)
	assert.Error(t, run(o, &bytes.Buffer{}))

	o, err = parseFlags([]string{"-input", filepath.Join(t.TempDir(), "missing.txt")})
	require.NoError(t, err)
	assert.Error(t, run(o, &bytes.Buffer{}))
}

func TestRun_Quiet(t *testing.T) {
	orig := monitoring.Logf
	t.Cleanup(func() { monitoring.SetLogger(orig) })

	o, err := parseFlags([]string{"-quiet", "-width", "5", "-height", "5", "-seed", "1", "-radius", "1"})
	require.NoError(t, err)
	require.NoError(t, run(o, &bytes.Buffer{}))
}

// TestExecute_QuietStillReportsErrors: -quiet mutes progress, not failures.
func TestExecute_QuietStillReportsErrors(t *testing.T) {
	orig := monitoring.Logf
	t.Cleanup(func() { monitoring.SetLogger(orig) })

	var stdout, stderr bytes.Buffer
	code := execute([]string{"-quiet", "-radius", "-1"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "inflate: invalid configuration")
	assert.Contains(t, stderr.String(), "InflationRadius=-1")
}

func TestExecute_ExitCodes(t *testing.T) {
	muteLogs(t)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, execute([]string{"-width", "4", "-height", "4", "-seed", "3", "-radius", "1"}, &stdout, &stderr))
	assert.Empty(t, stderr.String())

	stderr.Reset()
	assert.Equal(t, 2, execute([]string{"-bogus"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "bogus")
}
