package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "base_url: https://support.example.org/api\nnickname: sam\ntimeout_seconds: 5\ntheme: dusk\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://support.example.org/api", cfg.BaseURL)
	assert.Equal(t, "sam", cfg.Nickname)
	assert.Equal(t, 5, cfg.TimeoutSeconds)
	assert.Equal(t, "dusk", cfg.Theme)
}

func TestLoadConfig_BackfillsZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("timeout_seconds: 0\nbase_url: \"\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.NotEmpty(t, cfg.BaseURL)
}

func TestOverlay_Precedence(t *testing.T) {
	// Env must win over a file value even when the file repeats the
	// compiled-in default.
	t.Setenv("SOLACE_BASE_URL", "https://env.example.org/api")
	t.Setenv("SOLACE_NICKNAME", "env-nick")
	t.Setenv("SOLACE_THEME", "")
	t.Setenv("SOLACE_NO_COLOR", "")

	cfg := DefaultConfig()
	cfg.Theme = "dusk"

	out := cfg.Overlay("", "", "", false)
	assert.Equal(t, "https://env.example.org/api", out.BaseURL)
	assert.Equal(t, "env-nick", out.Nickname)
	assert.Equal(t, "dusk", out.Theme, "no flag and no env leaves the file value")

	// A flag beats the env var.
	out = cfg.Overlay("https://flag.example.org/api", "", "dawn", false)
	assert.Equal(t, "https://flag.example.org/api", out.BaseURL)
	assert.Equal(t, "dawn", out.Theme)
}

func TestOverlay_NoColor(t *testing.T) {
	t.Setenv("SOLACE_NO_COLOR", "1")
	assert.True(t, DefaultConfig().Overlay("", "", "", false).NoColor)

	t.Setenv("SOLACE_NO_COLOR", "")
	assert.False(t, DefaultConfig().Overlay("", "", "", false).NoColor)
	assert.True(t, DefaultConfig().Overlay("", "", "", true).NoColor)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	in := Config{BaseURL: "http://localhost:9000/api", Nickname: "kit", TimeoutSeconds: 10, Theme: "dawn"}
	require.NoError(t, SaveConfig(in, path))

	out, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
