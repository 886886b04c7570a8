package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clipevent.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"info\"\n"), 0o600))

	type reload struct {
		cfg *Config
		err error
	}
	reloads := make(chan reload, 4)
	w, err := NewWatcher(path, func(cfg *Config, err error) {
		reloads <- reload{cfg, err}
	}, WithDebounce(20*time.Millisecond), WithLoadOptions(WithoutEnv()))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"debug\"\n"), 0o600))

	select {
	case r := <-reloads:
		require.NoError(t, r.err)
		assert.Equal(t, "debug", r.cfg.Logging.Level)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload")
	}

	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"nope\"\n"), 0o600))

	select {
	case r := <-reloads:
		assert.ErrorIs(t, r.err, ErrValidationFailed)
		assert.Nil(t, r.cfg)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clipevent.toml")

	reloads := make(chan struct{}, 1)
	w, err := NewWatcher(path, func(*Config, error) { reloads <- struct{}{} },
		WithDebounce(10*time.Millisecond), WithLoadOptions(WithoutEnv()))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0o600))

	select {
	case <-reloads:
		t.Fatal("reloaded for another file")
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
