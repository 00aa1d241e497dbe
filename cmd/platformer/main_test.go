package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// execute runs the root command with args in an isolated home and working
// directory so only the embedded config is found.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	// Flags keep their values between runs of the same command tree.
	flagConfig, flagDifficulty, flagCheck = "", "", ""
	flagSeed, flagTicks, flagHold = 0, 60, nil
	flagWidth, flagHeight = 90, 44
	flagLogLevel = "error"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigPrintsDefault(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Equal(t, string(config.DefaultYAML()), out)
}

func TestConfigCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte("physics:\n  gravity: 0.4\n"), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("physics:\n  gravity: -1\n"), 0o600))

	out, err := execute(t, "config", "--check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (4 platforms, canvas 450x440)")

	_, err = execute(t, "config", "--check", bad)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSnapshotSettlesOnFloor(t *testing.T) {
	out, err := execute(t, "snapshot", "--seed", "1", "--ticks", "60")
	require.NoError(t, err)

	assert.Contains(t, out, "player x=50.00 y=368.00 vx=0.00 vy=0.00 grounded=true jumping=false")
	assert.Contains(t, out, string(rune(0x2588)), "player and platforms are filled")
}

func TestSnapshotHoldRight(t *testing.T) {
	out, err := execute(t, "snapshot", "--ticks", "200", "--hold", "right")
	require.NoError(t, err)
	assert.Contains(t, out, "player x=418.00")
}

func TestSnapshotUnknownControl(t *testing.T) {
	_, err := execute(t, "snapshot", "--hold", "down")
	assert.ErrorContains(t, err, `unknown control "down"`)
}

func TestSnapshotRejectsBadSize(t *testing.T) {
	for _, args := range [][]string{
		{"snapshot", "--width", "-1"},
		{"snapshot", "--height", "0"},
	} {
		_, err := execute(t, args...)
		assert.ErrorContains(t, err, "output size must be positive", "%v", args)
	}
}

func TestDifficultyRejected(t *testing.T) {
	_, err := execute(t, "snapshot", "--difficulty", "impossible")
	assert.Error(t, err)
}
