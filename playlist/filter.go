package playlist

import "strings"

// SelectByKeywords retains channels whose lowercased name contains at
// least one of the given keywords, preserving order. An empty keyword
// set selects everything, so the stage is a no-op when unconfigured.
func SelectByKeywords(channels []ChannelInfo, keywords []string) []ChannelInfo {
	if len(keywords) == 0 {
		return channels
	}

	var out []ChannelInfo
	for _, ch := range channels {
		if matchesAnyKeyword(ch.Name, keywords) {
			out = append(out, ch)
		}
	}
	return out
}

func matchesAnyKeyword(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
