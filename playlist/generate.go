package playlist

import (
	"fmt"
	"sort"
	"strings"
)

// categoryOrder is the preferred ordering of category sections in the
// generated playlist. Categories not listed here follow alphabetically.
var categoryOrder = []string{"Entertainment", "Movies", "Sports", "Kids", "Regional", "News", "Music"}

type GenerateOptions struct {
	// HeaderText is the comment banner emitted after #EXTM3U.
	HeaderText string
	// FooterText closes the playlist when IncludeFooter is set.
	FooterText    string
	IncludeFooter bool
}

// GenerateM3U renders channels back into playlist text, grouped by
// category. Re-parsing the output yields the same (name, category, url)
// triples in the same per-category order.
func GenerateM3U(channels []ChannelInfo, opts GenerateOptions) string {
	buckets := groupByCategory(channels)

	var out strings.Builder
	out.WriteString("#EXTM3U\n")
	if opts.HeaderText != "" {
		out.WriteString(opts.HeaderText)
		out.WriteString("\n")
	}
	out.WriteString("\n")

	for _, category := range orderedCategories(buckets) {
		fmt.Fprintf(&out, "# ========== %s ==========\n", category)
		for _, ch := range buckets[category] {
			out.WriteString(formatChannelEntry(ch, category))
		}
	}

	if opts.IncludeFooter && opts.FooterText != "" {
		out.WriteString(opts.FooterText)
		out.WriteString("\n")
	}

	return out.String()
}

// groupByCategory buckets channels by category, keeping each channel's
// relative order within its bucket.
func groupByCategory(channels []ChannelInfo) map[string][]ChannelInfo {
	buckets := make(map[string][]ChannelInfo)
	for _, ch := range channels {
		buckets[ch.Category] = append(buckets[ch.Category], ch)
	}
	return buckets
}

// orderedCategories returns the preferred categories that are present,
// followed by the remaining ones sorted alphabetically.
func orderedCategories(buckets map[string][]ChannelInfo) []string {
	preferred := make(map[string]bool, len(categoryOrder))
	var out []string
	for _, category := range categoryOrder {
		preferred[category] = true
		if _, ok := buckets[category]; ok {
			out = append(out, category)
		}
	}

	var rest []string
	for category := range buckets {
		if !preferred[category] {
			rest = append(rest, category)
		}
	}
	sort.Strings(rest)

	return append(out, rest...)
}

// formatChannelEntry reconstructs one #EXTINF entry. Attributes are
// only emitted when present; group-title always carries the resolved
// category.
func formatChannelEntry(ch ChannelInfo, category string) string {
	var entry strings.Builder

	entry.WriteString("#EXTINF:-1")
	if ch.TvgID != "" {
		entry.WriteString(fmt.Sprintf(" tvg-id=\"%s\"", ch.TvgID))
	}
	if ch.TvgName != "" {
		entry.WriteString(fmt.Sprintf(" tvg-name=\"%s\"", ch.TvgName))
	}
	if ch.LogoURL != "" {
		entry.WriteString(fmt.Sprintf(" tvg-logo=\"%s\"", ch.LogoURL))
	}
	entry.WriteString(fmt.Sprintf(" group-title=\"%s\",%s\n", category, ch.Name))
	entry.WriteString(ch.URL)
	entry.WriteString("\n\n")

	return entry.String()
}
