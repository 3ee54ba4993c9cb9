package playlist

// ChannelInfo is one playlist entry. Instances are built during parsing
// and read-only afterwards.
type ChannelInfo struct {
	Name     string
	TvgID    string
	TvgName  string
	LogoURL  string
	Category string
	URL      string
}
