package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, []string{"toilet", "bc"}, cfg.Packages)
	assert.Equal(t, "sshd", cfg.SSHService)
	assert.Equal(t, "toilet -f standard", cfg.RendererCommand)
	assert.Equal(t, "/etc/update-motd.d", cfg.HookDir)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("DYNMOTD_SSH_SERVICE", "ssh")
	t.Setenv("DYNMOTD_PACKAGES", "figlet,bc")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "ssh", cfg.SSHService)
	assert.Equal(t, []string{"figlet", "bc"}, cfg.Packages)
	assert.Equal(t, "toilet -f standard", cfg.RendererCommand, "unset keys keep their defaults")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dynmotd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ssh_service: ssh\nhook_dir: /opt/motd.d\n"), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ssh", cfg.SSHService)
	assert.Equal(t, "/opt/motd.d", cfg.HookDir)
	assert.Equal(t, []string{"toilet", "bc"}, cfg.Packages)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
