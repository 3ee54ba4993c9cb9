package playlist

import (
	"time"

	"github.com/goccy/go-json"
)

// CatalogChannel is a channel entry with normalized fields: missing
// optional attributes become empty strings, never null.
type CatalogChannel struct {
	Name    string `json:"name"`
	TvgID   string `json:"tvg_id"`
	TvgName string `json:"tvg_name"`
	Logo    string `json:"logo"`
	Group   string `json:"group"`
	URL     string `json:"url"`
}

// CatalogCategory is one category bucket with its channel count.
type CatalogCategory struct {
	Count    int              `json:"count"`
	Channels []CatalogChannel `json:"channels"`
}

// CatalogFieldNames maps the catalog's top-level keys so deployments
// that consume the older field naming keep working.
type CatalogFieldNames struct {
	UpdatedAt       string
	TotalChannels   string
	TotalCategories string
	Categories      string
	AllChannels     string
}

func DefaultCatalogFieldNames() CatalogFieldNames {
	return CatalogFieldNames{
		UpdatedAt:       "updated_at",
		TotalChannels:   "total_channels",
		TotalCategories: "total_categories",
		Categories:      "categories",
		AllChannels:     "all_channels",
	}
}

type CatalogOptions struct {
	FieldNames CatalogFieldNames
}

// GenerateCatalog renders channels into an indented JSON document with
// per-category buckets (keys sorted alphabetically by the encoder) and
// a flat channel list in original parse order. The timestamp is UTC
// with a trailing Z.
func GenerateCatalog(channels []ChannelInfo, generatedAt time.Time, opts CatalogOptions) ([]byte, error) {
	names := opts.FieldNames
	if names == (CatalogFieldNames{}) {
		names = DefaultCatalogFieldNames()
	}

	categories := make(map[string]CatalogCategory)
	allChannels := make([]CatalogChannel, 0, len(channels))

	for _, ch := range channels {
		entry := CatalogChannel{
			Name:    ch.Name,
			TvgID:   ch.TvgID,
			TvgName: ch.TvgName,
			Logo:    ch.LogoURL,
			Group:   ch.Category,
			URL:     ch.URL,
		}

		bucket := categories[ch.Category]
		bucket.Channels = append(bucket.Channels, entry)
		bucket.Count = len(bucket.Channels)
		categories[ch.Category] = bucket

		allChannels = append(allChannels, entry)
	}

	doc := map[string]any{
		names.UpdatedAt:       generatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		names.TotalChannels:   len(allChannels),
		names.TotalCategories: len(categories),
		names.Categories:      categories,
		names.AllChannels:     allChannels,
	}

	return json.MarshalIndent(doc, "", "  ")
}
