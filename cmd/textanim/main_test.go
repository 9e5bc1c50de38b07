package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRecordsAndExits(t *testing.T) {
	dir := t.TempDir()
	frames := filepath.Join(dir, "frames")
	logFile := filepath.Join(dir, "textanim.log")

	code := run([]string{
		"-backend", "record", "-effect", "glitch", "-delay", "5ms", "-poll", "1ms",
		"-frames", "2", "-record-dir", frames, "-log-file", logFile, "-seed", "1",
	})
	require.Equal(t, 0, code)

	written, err := filepath.Glob(filepath.Join(frames, "frame-*.png"))
	require.NoError(t, err)
	assert.Len(t, written, 2, "queued frames are flushed before exit")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "logging initialized")
}

func TestRunReportsBackendError(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "textanim.log")

	code := run([]string{
		"-backend", "record", "-record-format", "gif",
		"-record-dir", filepath.Join(dir, "frames"), "-log-file", logFile,
	})
	assert.Equal(t, 1, code)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "unknown frame format")
}

func TestRunRejectsBadFlags(t *testing.T) {
	assert.Equal(t, 2, run([]string{"-backend", "hologram"}))
	assert.Equal(t, 0, run([]string{"-h"}))
}
