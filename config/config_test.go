package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSourceURL(t *testing.T) {
	t.Setenv("M3U_SOURCE_URL", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingSourceURL)
}

func TestLoadDefaults(t *testing.T) {
	original := GetConfig()
	defer SetConfig(original)

	t.Setenv("M3U_SOURCE_URL", "http://example.com/playlist.m3u")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://example.com/playlist.m3u", cfg.SourceURL)
	assert.Equal(t, "./data", cfg.DataPath)
	assert.Empty(t, cfg.FilterKeywords)
	assert.Equal(t, DefaultHeaderText, cfg.HeaderText)
	assert.False(t, cfg.IncludeFooter)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)

	// Load installs the config globally.
	assert.Same(t, cfg, GetConfig())
}

func TestLoadOverrides(t *testing.T) {
	original := GetConfig()
	defer SetConfig(original)

	t.Setenv("M3U_SOURCE_URL", "http://example.com/playlist.m3u")
	t.Setenv("DATA_PATH", "/tmp/out")
	t.Setenv("FILTER_KEYWORDS", " Star , zee ,")
	t.Setenv("PLAYLIST_FOOTER", "true")
	t.Setenv("FETCH_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/out", cfg.DataPath)
	assert.Equal(t, []string{"star", "zee"}, cfg.FilterKeywords)
	assert.True(t, cfg.IncludeFooter)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
}

func TestLoadSonyKeywordSet(t *testing.T) {
	original := GetConfig()
	defer SetConfig(original)

	t.Setenv("M3U_SOURCE_URL", "http://example.com/playlist.m3u")
	t.Setenv("FILTER_KEYWORDS", "sony")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SonyFamilyKeywords(), cfg.FilterKeywords)
	assert.Contains(t, cfg.FilterKeywords, "ten 5")
}

func TestSonyFamilyKeywordsReturnsCopy(t *testing.T) {
	first := SonyFamilyKeywords()
	first[0] = "mutated"
	assert.Equal(t, "sony", SonyFamilyKeywords()[0])
}

func TestOutputPaths(t *testing.T) {
	original := GetConfig()
	defer SetConfig(original)

	SetConfig(&Config{DataPath: "/var/lib/curator"})
	assert.Equal(t, "/var/lib/curator/playlist.m3u", GetPlaylistPath())
	assert.Equal(t, "/var/lib/curator/channels.json", GetCatalogPath())
}
