package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte("env: dev\nlogs_path: /tmp/todo.log\nhttp_server:\n  address: 127.0.0.1:9090\n  timeout: 2s\n  idle_timeout: 30s\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	t.Setenv("CONFIG_PATH", path)

	cfg := MustLoad()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "/tmp/todo.log", cfg.LogsPath)
	assert.Equal(t, "127.0.0.1:9090", cfg.Address)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, 30*time.Second, cfg.IdleTimeout)
}
