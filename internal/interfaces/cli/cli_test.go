package cli

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/pokedex/backend/internal/buildinfo"
	"github.com/pokedex/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "tui", "version"}, names)
	assert.NotNil(t, root.PersistentFlags().Lookup("backend"))
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestVersionCmd(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, buildinfo.String()+"\n", out.String())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[storage]
backend = "sqlite"

[database]
path = "dex.db"
`)

	t.Run("file values", func(t *testing.T) {
		cfg, err := loadConfig(&rootOptions{configPath: path})
		require.NoError(t, err)
		assert.Equal(t, config.BackendSQLite, cfg.Storage.Backend)
		assert.Equal(t, "dex.db", cfg.Database.Path)
	})

	t.Run("backend flag wins", func(t *testing.T) {
		cfg, err := loadConfig(&rootOptions{configPath: path, backend: "MEMORY"})
		require.NoError(t, err)
		assert.Equal(t, config.BackendMemory, cfg.Storage.Backend)
	})

	t.Run("unknown backend flag", func(t *testing.T) {
		_, err := loadConfig(&rootOptions{configPath: path, backend: "mongo"})
		assert.Error(t, err)
	})

	t.Run("airtable flag still needs credentials", func(t *testing.T) {
		_, err := loadConfig(&rootOptions{configPath: path, backend: "airtable"})
		assert.ErrorContains(t, err, "airtable.base_id")
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := loadConfig(&rootOptions{configPath: filepath.Join(t.TempDir(), "nope.toml")})
		assert.Error(t, err)
	})
}

func TestTUILogOutput(t *testing.T) {
	tests := []struct {
		flag, configured, expected string
	}{
		{"", "stdout", DefaultTUILogFile},
		{"", "stderr", DefaultTUILogFile},
		{"", "", DefaultTUILogFile},
		{"", "/var/log/pokedex.log", "/var/log/pokedex.log"},
		{"ui.log", "stdout", "ui.log"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tuiLogOutput(tt.flag, tt.configured), "%q/%q", tt.flag, tt.configured)
	}
}

func TestRunServer(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := loadConfig(&rootOptions{configPath: path, backend: config.BackendMemory})
	require.NoError(t, err)

	port := freePort(t)
	cfg.App.Port = strconv.Itoa(port)
	cfg.HTTP.ShutdownTimeout = 5 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServer(ctx, cfg, zap.NewNop()) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/health", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunServer_PortInUse(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()

	cfg, err := loadConfig(&rootOptions{configPath: writeConfig(t, ""), backend: config.BackendMemory})
	require.NoError(t, err)
	cfg.App.Port = strconv.Itoa(l.Addr().(*net.TCPAddr).Port)

	err = runServer(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}
