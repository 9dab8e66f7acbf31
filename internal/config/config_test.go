package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"SLACK_WEBHOOK_URL", "DOMAINS_FILE", "MAX_WORKERS", "TZ_OFFSET_HOURS", "CHECK_TIMEOUT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, []string{"#"}, cfg.Webhooks)
	require.Equal(t, "#", cfg.DomainsFile)
	require.Equal(t, 5, cfg.MaxWorkers)
	require.Equal(t, 10*time.Second, cfg.CheckTimeout)
	require.Equal(t, "link_checker.log", cfg.LogFile)
	require.Equal(t, 7, cfg.TZOffsetHours)

	_, off := time.Date(2025, 1, 1, 0, 0, 0, 0, cfg.Location()).Zone()
	require.Equal(t, 7*3600, off)
}

func TestFromEnv_ParsesOverrides(t *testing.T) {
	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.example/a,https://hooks.example/b")
	t.Setenv("DOMAINS_FILE", "/tmp/links.txt")
	t.Setenv("MAX_WORKERS", "7")
	t.Setenv("CHECK_TIMEOUT", "1500ms")
	t.Setenv("TZ_OFFSET_HOURS", "0")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, []string{"https://hooks.example/a", "https://hooks.example/b"}, cfg.Webhooks)
	require.Equal(t, "/tmp/links.txt", cfg.DomainsFile)
	require.Equal(t, 7, cfg.MaxWorkers)
	require.Equal(t, 1500*time.Millisecond, cfg.CheckTimeout)

	_, off := time.Now().In(cfg.Location()).Zone()
	require.Equal(t, 0, off)
}

func TestFromEnv_RejectsBadWorkers(t *testing.T) {
	t.Setenv("MAX_WORKERS", "0")
	_, err := FromEnv()
	require.Error(t, err)
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("domainsFile: ./links.txt\nmaxWorkers: 3\n"), 0o600))
	t.Setenv("MAX_WORKERS", "9")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "./links.txt", cfg.DomainsFile)
	require.Equal(t, 9, cfg.MaxWorkers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
