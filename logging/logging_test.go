package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_EmptyFilenameDiscards(t *testing.T) {
	cleanup, err := SetupLogging("", "debug", "text")
	require.NoError(t, err)
	defer cleanup()

	Infof("nothing to see %d", 1)
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := SetupLogging(path, "info", "text")
	require.NoError(t, err)
	Infof("loaded %d trips", 42)
	Debugf("hidden at info level")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "loaded 42 trips")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestSetOutput_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "warn")
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, "info") })

	Infof("skip")
	Warnf("keep %s", "me")
	Errorf("and %s", "me")

	out := buf.String()
	assert.NotContains(t, out, "skip")
	assert.Contains(t, out, "keep me")
	assert.Contains(t, out, "and me")
}

func TestInfof_SourceNamesCaller(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "info")
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, "info") })

	Infof("hello from caller")

	out := buf.String()
	assert.Contains(t, out, "hello from caller")
	assert.Contains(t, out, "logging_test.go:")
	assert.NotContains(t, out, "logging.go:")
}
