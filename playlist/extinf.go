package playlist

import (
	"regexp"
	"strings"
)

// attributeRegex matches M3U attributes in the format key="value"
var attributeRegex = regexp.MustCompile(`([a-zA-Z0-9_-]+)="([^"]*)"`)

// extinfTags holds whatever could be extracted from one #EXTINF line.
// Absent attributes stay empty; Name empty means the line carries no
// display name and cannot produce a channel.
type extinfTags struct {
	TvgID   string
	TvgName string
	LogoURL string
	Group   string
	Name    string
}

// parseExtInf extracts the known tvg attributes and the display name
// from a single #EXTINF line. The name is everything after the last
// comma; a group-title whose value is only whitespace counts as not
// specified.
func parseExtInf(line string) extinfTags {
	var tags extinfTags

	for _, match := range attributeRegex.FindAllStringSubmatch(line, -1) {
		key := strings.ToLower(strings.TrimSpace(match[1]))
		value := match[2]

		switch key {
		case "tvg-id":
			tags.TvgID = value
		case "tvg-name":
			tags.TvgName = value
		case "tvg-logo":
			tags.LogoURL = value
		case "group-title":
			if strings.TrimSpace(value) != "" {
				tags.Group = strings.TrimSpace(value)
			}
		}
	}

	if idx := strings.LastIndex(line, ","); idx != -1 {
		tags.Name = strings.TrimSpace(line[idx+1:])
	}

	return tags
}
