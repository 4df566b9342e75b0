package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-bikeshare/filters"
	"github.com/andareed/siftly-bikeshare/trips"
)

// 2017-06-05 and 2017-06-12 are Mondays.
const chicagoFixture = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-06-05 08:10:00,2017-06-05 08:15:00,300,Canal St & Adams St,Clinton St & Madison St,Subscriber,Male,1985.0
2,2017-06-12 08:20:00,2017-06-12 08:30:00,600,Canal St & Adams St,Clinton St & Madison St,Customer,Female,1990.0
3,2017-03-07 17:00:00,2017-03-07 17:15:00,900,Halsted St & Roscoe St,Broadway & Barry Ave,Subscriber,Male,1985.0
`

func testDataDir(t *testing.T) (dataDir, cfgFile string) {
	t.Helper()
	dataDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "chicago.csv"), []byte(chicagoFixture), 0o600))

	cfgFile = filepath.Join(t.TempDir(), "bikeshare.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("output:\n  timings: false\n"), 0o600))
	return dataDir, cfgFile
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	_, out, err := executeApp(t, stdin, args...)
	return out, err
}

func executeApp(t *testing.T, stdin string, args ...string) (*app, string, error) {
	t.Helper()
	a := &app{}
	root := a.rootCmd()
	var out bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	a.close()
	return a, out.String(), err
}

func TestVersion(t *testing.T) {
	_, cfg := testDataDir(t)

	out, err := execute(t, "", "--config", cfg, "version")
	require.NoError(t, err)
	assert.Equal(t, "Version: "+Version+"\n", out)
}

func TestStats_PrintsAllSections(t *testing.T) {
	dir, cfg := testDataDir(t)

	out, err := execute(t, "", "--config", cfg, "--data-dir", dir, "--no-color",
		"stats", "--city", "Chicago", "--month", "june", "--day", "monday")
	require.NoError(t, err)

	assert.Contains(t, out, "chicago / June / Monday: 2 trips")
	assert.Contains(t, out, "most common start hour: 8:00")
	assert.Contains(t, out, "Most commonly used start station: Canal St & Adams St")
	assert.Contains(t, out, "Total travel time: 900.0 s")
	assert.Contains(t, out, "Mean travel time: 450.0 s")
	assert.Contains(t, out, "Earliest year of birth: 1985")
	assert.NotContains(t, out, "Halsted St")
	assert.NotContains(t, out, "This took")
}

func TestStats_InvalidCity(t *testing.T) {
	dir, cfg := testDataDir(t)

	_, err := execute(t, "", "--config", cfg, "--data-dir", dir, "stats", "--city", "boston")
	var invalid *filters.InvalidError
	require.True(t, errors.As(err, &invalid), "got %v", err)
	assert.Equal(t, "boston", invalid.Value)
}

func TestStats_CityRequired(t *testing.T) {
	_, cfg := testDataDir(t)

	_, err := execute(t, "", "--config", cfg, "stats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"city"`)
}

func TestStats_MissingDataFile(t *testing.T) {
	dir, cfg := testDataDir(t)

	_, err := execute(t, "", "--config", cfg, "--data-dir", dir, "stats", "--city", "washington")
	require.Error(t, err)
	assert.ErrorIs(t, err, trips.ErrDataAccess)
}

func TestInteractive_SinglePass(t *testing.T) {
	dir, cfg := testDataDir(t)

	out, err := execute(t, "chicago\nall\nall\nyes\nno\nno\n", "--config", cfg, "--data-dir", dir, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Hello! Let's explore some US bikeshare data!")
	assert.Contains(t, out, "most common month: June")
	assert.Contains(t, out, "Halsted St & Roscoe St", "first raw page shows every trip")
	assert.Contains(t, out, "Have a nice day.")
}

func TestInteractive_ClosedInputEndsQuietly(t *testing.T) {
	dir, cfg := testDataDir(t)

	_, err := execute(t, "chicago\n", "--config", cfg, "--data-dir", dir)
	require.NoError(t, err)
}

func TestFail_ReportsThroughPrinter(t *testing.T) {
	dir, cfg := testDataDir(t)

	a, out, err := executeApp(t, "", "--config", cfg, "--data-dir", dir, "--no-color", "stats", "--city", "washington")
	require.Error(t, err)

	var fallback bytes.Buffer
	a.fail(&fallback, err)
	assert.Empty(t, fallback.String())
	assert.Contains(t, out, "[ERROR] load washington:")
}

func TestFail_FallsBackBeforeInit(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	a, _, err := executeApp(t, "", "--config", missing, "version")
	require.Error(t, err)
	require.Nil(t, a.printer)

	var fallback bytes.Buffer
	a.fail(&fallback, err)
	assert.True(t, strings.HasPrefix(fallback.String(), "Error: loading config:"), fallback.String())
}
