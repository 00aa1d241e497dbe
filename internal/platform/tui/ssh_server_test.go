package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	assert.Equal(t, ":23234", cfg.Address)
	assert.Equal(t, 30*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, 60, cfg.TickRate)
	assert.NoError(t, cfg.Game.Validate())
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, ":23234", srv.Addr())

	info, err := os.Stat(filepath.Dir(cfg.HostKeyPath))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewSSHServerInvalidGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Game.Message.Text = ""

	_, err := NewSSHServer(cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
