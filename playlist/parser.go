package playlist

import (
	"strings"

	"m3u-channel-curator/logger"
)

// Parse walks the raw playlist text and returns one ChannelInfo per
// usable #EXTINF/URL pair, in source order. Metadata lines without a
// display name, or not followed by a plain URL line, are dropped
// silently; Parse never fails on malformed input.
func Parse(content string) []ChannelInfo {
	lines := strings.Split(content, "\n")
	var channels []ChannelInfo

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "#EXTINF:") {
			continue
		}

		tags := parseExtInf(line)
		if tags.Name == "" {
			logger.Default.Debugf("Skipping EXTINF without display name: %s", line)
			continue
		}

		if i+1 >= len(lines) {
			break
		}
		url := strings.TrimSpace(lines[i+1])
		if url == "" || strings.HasPrefix(url, "#") {
			// Dangling metadata with no stream line; resume at next line.
			logger.Default.Debugf("Skipping EXTINF without stream URL: %s", tags.Name)
			continue
		}

		category := tags.Group
		if category == "" {
			category = Classify(tags.Name)
		}

		channels = append(channels, ChannelInfo{
			Name:     tags.Name,
			TvgID:    tags.TvgID,
			TvgName:  tags.TvgName,
			LogoURL:  tags.LogoURL,
			Category: category,
			URL:      url,
		})
		i++
	}

	return channels
}
