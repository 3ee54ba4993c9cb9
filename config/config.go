package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ErrMissingSourceURL is returned by Load when no playlist source is
// configured. It aborts the run before any network or disk I/O.
var ErrMissingSourceURL = errors.New("M3U_SOURCE_URL not set")

type Config struct {
	// SourceURL is the upstream playlist location. http(s):// or file://.
	SourceURL string

	// DataPath is where the generated playlist and catalog are written.
	DataPath string

	// FilterKeywords selects the broadcaster-family subset. Empty means
	// no filtering; the single token "sony" expands to the built-in set.
	FilterKeywords []string

	// Playlist rendering options.
	HeaderText    string
	IncludeFooter bool

	FetchTimeout time.Duration
	UserAgent    string
}

var globalConfig = defaultConfig()

func defaultConfig() *Config {
	return &Config{
		DataPath:      "./data",
		HeaderText:    DefaultHeaderText,
		IncludeFooter: false,
		FetchTimeout:  30 * time.Second,
		UserAgent:     "IPTV Smarters/1.0.3 (iPad; iOS 16.6.1; Scale/2.00)",
	}
}

func GetConfig() *Config {
	return globalConfig
}

func SetConfig(c *Config) {
	globalConfig = c
}

// Load builds a Config from the environment and installs it as the
// global config. The source URL is the only required value.
func Load() (*Config, error) {
	sourceURL := strings.TrimSpace(os.Getenv("M3U_SOURCE_URL"))
	if sourceURL == "" {
		return nil, ErrMissingSourceURL
	}

	c := defaultConfig()
	c.SourceURL = sourceURL
	c.DataPath = getEnv("DATA_PATH", c.DataPath)
	c.FilterKeywords = parseKeywords(os.Getenv("FILTER_KEYWORDS"))
	c.HeaderText = getEnv("PLAYLIST_HEADER", c.HeaderText)
	c.IncludeFooter = getEnvBool("PLAYLIST_FOOTER", c.IncludeFooter)
	c.FetchTimeout = getEnvDuration("FETCH_TIMEOUT", c.FetchTimeout)
	c.UserAgent = getEnv("USER_AGENT", c.UserAgent)

	SetConfig(c)
	return c, nil
}

func parseKeywords(raw string) []string {
	if strings.EqualFold(strings.TrimSpace(raw), "sony") {
		return SonyFamilyKeywords()
	}
	var out []string
	for _, kw := range strings.Split(raw, ",") {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

func GetPlaylistPath() string {
	return filepath.Join(globalConfig.DataPath, "playlist.m3u")
}

func GetCatalogPath() string {
	return filepath.Join(globalConfig.DataPath, "channels.json")
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
