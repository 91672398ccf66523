package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LINEAR_API_KEY", "")
	t.Setenv("LINEAR_DEFAULT_TEAM_ID", "")
}

func TestStore_MissingFileIsEmpty(t *testing.T) {
	clearEnv(t)
	s, err := OpenStore(filepath.Join(t.TempDir(), ConfigFile))
	require.NoError(t, err)

	assert.Equal(t, "", s.Token())
	assert.False(t, s.HasToken())
	assert.Equal(t, "", s.DefaultTeam())
}

func TestStore_SetTokenPersists(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", ConfigFile)

	s, err := OpenStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("lin_api_123"))
	assert.Equal(t, "lin_api_123", s.Token())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	dir, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, dir.IsDir())
	assert.Equal(t, os.FileMode(0700), dir.Mode().Perm())

	reopened, err := OpenStore(path)
	require.NoError(t, err)
	assert.Equal(t, "lin_api_123", reopened.Token())
}

func TestStore_OverwriteAndDefaultTeam(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ConfigFile)

	s, err := OpenStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("first"))
	require.NoError(t, s.SetDefaultTeam("ENG"))
	require.NoError(t, s.SetToken("second"))

	reopened, err := OpenStore(path)
	require.NoError(t, err)
	assert.Equal(t, "second", reopened.Token())
	assert.Equal(t, "ENG", reopened.DefaultTeam())
}

func TestStore_DeleteTokenKeepsTeam(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ConfigFile)

	s, err := OpenStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("secret"))
	require.NoError(t, s.SetDefaultTeam("ENG"))
	require.NoError(t, s.DeleteToken())

	reopened, err := OpenStore(path)
	require.NoError(t, err)
	assert.False(t, reopened.HasToken())
	assert.Equal(t, "ENG", reopened.DefaultTeam())
}

func TestStore_EnvOverridesButIsNotPersisted(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ConfigFile)

	s, err := OpenStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("from-file"))

	t.Setenv("LINEAR_API_KEY", "from-env")
	s, err = OpenStore(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", s.Token())

	require.NoError(t, s.SetDefaultTeam("OPS"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "from-file")
	assert.NotContains(t, string(data), "from-env")
}

func TestStore_CorruptFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("apiKey: [unterminated"), 0600))

	_, err := OpenStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config.yaml")
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", AppName), DefaultConfigDir())
}

func TestNew_UsesGivenDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, filepath.Join(dir, ConfigFile), cfg.Path())
	assert.Equal(t, cfg.Path(), cfg.Store.Path())
	assert.NotNil(t, cfg.Logger)
}
