package config

// DefaultHeaderText is the banner emitted after #EXTM3U at the top of
// the generated playlist.
const DefaultHeaderText = `# ===============================
#  StreamFlex™ Official Playlist
#  AU • Secure • Private
#  Join: https://t.me/streamflex19
# ===============================`

// DefaultFooterText closes the generated playlist when PLAYLIST_FOOTER
// is enabled.
const DefaultFooterText = `# ===============================
#  End of playlist
# ===============================`

// sonyFamilyKeywords identifies the Sony broadcaster family by brand
// tokens and numbered channel variants.
var sonyFamilyKeywords = []string{
	"sony", "set", "sab", "pal", "aath",
	"pix", "wah",
	"max", "max1", "max 1", "max 2",
	"ten 1", "ten 2", "ten 3", "ten 4", "ten 5",
	"sony yay",
}

// SonyFamilyKeywords returns a copy so callers cannot mutate the
// built-in set.
func SonyFamilyKeywords() []string {
	out := make([]string, len(sonyFamilyKeywords))
	copy(out, sonyFamilyKeywords)
	return out
}
