package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/women", cfg.API.BotPrefix)
	assert.Equal(t, 200, cfg.API.PageLimit)
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce())
	assert.Equal(t, time.Second, cfg.TutorialDelay())
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: https://example.test
  page_limit: 50
ui:
  debounce_ms: 100
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.test", cfg.API.BaseURL)
	assert.Equal(t, 50, cfg.API.PageLimit)
	assert.Equal(t, 100*time.Millisecond, cfg.Debounce())
	// Untouched sections keep their defaults.
	assert.Equal(t, "/women", cfg.API.BotPrefix)
}

func TestLoad_EnvOverridesWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: https://file.test\n"), 0o644))

	t.Setenv("PROMPTDECK_API_BASE_URL", "https://env.test")
	t.Setenv("PROMPTDECK_API_PAGE_LIMIT", "25")
	t.Setenv("PROMPTDECK_BOT_USERNAME", "otherbot")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.test", cfg.API.BaseURL)
	assert.Equal(t, 25, cfg.API.PageLimit)
	assert.Equal(t, "otherbot", cfg.UI.BotUsername)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  timeout: nonsense\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "api.timeout")
}

func TestInitData_FromEnvironment(t *testing.T) {
	t.Setenv("PROMPTDECK_INIT_DATA", "query_id=xyz")
	assert.Equal(t, "query_id=xyz", InitData())
}
