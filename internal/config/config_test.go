package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFileDefaultsForOmittedFields(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "image: example/validator\n")
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "example/validator", cfg.Image)
	require.Equal(t, DefaultDaemonBinary, cfg.DaemonBinary)
	require.Equal(t, DefaultServicePort, cfg.ServicePort)
	require.Equal(t, DefaultGossipPort, cfg.GossipPort)
}

func TestLoadFileFullOverride(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
image: example/validator:v2
daemon_binary: /usr/local/bin/validatord
service_port: 9000
gossip_port: 9001
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "example/validator:v2", cfg.Image)
	require.Equal(t, "/usr/local/bin/validatord", cfg.DaemonBinary)
	require.Equal(t, 9000, cfg.ServicePort)
	require.Equal(t, 9001, cfg.GossipPort)
}

func TestLoadFileRejectsBadPort(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "service_port: 70000\n")
	_, err := LoadFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "service_port")
}

func TestLoadFileRejectsBadYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "image: [\n")
	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateEmptyImage(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Image = ""
	require.Error(t, cfg.Validate())
}
