package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"m3u-channel-curator/config"
	"m3u-channel-curator/logger"
)

// StatusError reports a non-success HTTP status from the source.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// Source retrieves the playlist text from sourceURL. file:// URLs are
// read from disk, everything else goes over HTTP with the configured
// timeout and User-Agent. Nothing is written on failure.
func Source(ctx context.Context, sourceURL string) (string, error) {
	if strings.HasPrefix(sourceURL, "file://") {
		data, err := os.ReadFile(strings.TrimPrefix(sourceURL, "file://"))
		if err != nil {
			return "", fmt.Errorf("error reading local playlist: %w", err)
		}
		return string(data), nil
	}

	cfg := config.GetConfig()

	client := &http.Client{
		Timeout: cfg.FetchTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// Keep the custom User-Agent across redirects.
			req.Header.Set("User-Agent", cfg.UserAgent)
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	logger.Default.Logf("Fetching playlist from %s", sourceURL)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP GET error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}

	return string(data), nil
}
