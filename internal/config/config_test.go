package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://api:9000\nrotation_speed: 0.01\ngrid_visible: false\nbackground: [10, 20, 30]\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://api:9000", cfg.APIURL)
	assert.Equal(t, float32(0.01), cfg.RotationSpeed)
	assert.False(t, cfg.GridVisible)
	assert.Equal(t, [3]uint8{10, 20, 30}, cfg.Background)
	assert.Equal(t, Default().ZoomSpeed, cfg.ZoomSpeed)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_distance: 0\n"), 0644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "min_distance")

	require.NoError(t, os.WriteFile(path, []byte("fov: [1\n"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "viewer.yaml")
	cfg := Default()
	cfg.ShowFPS = true
	cfg.WindowWidth = 640
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestResolveFlags(t *testing.T) {
	cfg := Default()
	cfg.Resolve(Flags{File: "d.json", Width: 300})
	assert.Equal(t, "d.json", cfg.File)
	assert.Equal(t, 300, cfg.WindowWidth)
	assert.Equal(t, Default().WindowHeight, cfg.WindowHeight)
	assert.Equal(t, Default().APIURL, cfg.APIURL)
}

func TestReadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# comment\n\nSTROKEVIEW_API_URL = \"http://env:1\"\nSTROKEVIEW_FILE='d.json'\nbroken\n=x\n"), 0644))

	vars, err := ReadEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"STROKEVIEW_API_URL": "http://env:1",
		"STROKEVIEW_FILE":    "d.json",
	}, vars)

	vars, err = ReadEnvFile(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, vars)
}

func TestApplyEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STROKEVIEW_API_URL=http://file\nSTROKEVIEW_FILE=from-file.json\n"), 0644))
	t.Setenv(EnvAPIURL, "http://process")

	lookup, err := EnvLookup(path)
	require.NoError(t, err)
	cfg := Default()
	cfg.ApplyEnv(lookup)
	assert.Equal(t, "http://process", cfg.APIURL)
	assert.Equal(t, "from-file.json", cfg.File)

	cfg.Resolve(Flags{APIURL: "http://flag"})
	assert.Equal(t, "http://flag", cfg.APIURL)
}
