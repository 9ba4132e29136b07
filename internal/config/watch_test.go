package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextUpdate(t *testing.T, updates <-chan Update) Update {
	t.Helper()
	select {
	case u, ok := <-updates:
		require.True(t, ok, "updates closed")
		return u
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return Update{}
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tincture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gray: \"#888888\"\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := NewLoader(afero.NewOsFs()).WithEnv(noEnv).Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("gray: \"#999999\"\n"), 0o644))
	u := nextUpdate(t, updates)
	require.NoError(t, u.Err)
	assert.Equal(t, "#999999", u.Config.Gray)

	require.NoError(t, os.WriteFile(path, []byte("gray: nope\n"), 0o644))
	u = nextUpdate(t, updates)
	assert.Error(t, u.Err)
	assert.Nil(t, u.Config)

	cancel()
	select {
	case _, ok := <-updates:
		for ok {
			_, ok = <-updates
		}
	case <-time.After(5 * time.Second):
		t.Fatal("updates not closed after cancel")
	}
}

func TestWatchMissingFile(t *testing.T) {
	_, err := NewLoader(afero.NewOsFs()).Watch(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
