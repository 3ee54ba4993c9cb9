package playlist

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogDoc struct {
	UpdatedAt       string                     `json:"updated_at"`
	TotalChannels   int                        `json:"total_channels"`
	TotalCategories int                        `json:"total_categories"`
	Categories      map[string]CatalogCategory `json:"categories"`
	AllChannels     []CatalogChannel           `json:"all_channels"`
}

func TestGenerateCatalog(t *testing.T) {
	generatedAt := time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC)

	data, err := GenerateCatalog(sampleChannels(), generatedAt, CatalogOptions{})
	require.NoError(t, err)

	var doc catalogDoc
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "2026-08-30T12:30:00Z", doc.UpdatedAt)
	assert.Equal(t, 5, doc.TotalChannels)
	assert.Equal(t, 4, doc.TotalCategories)
	require.Len(t, doc.AllChannels, 5)

	// Flat list keeps original parse order.
	assert.Equal(t, "Aaj Tak", doc.AllChannels[0].Name)
	assert.Equal(t, "Sony SAB", doc.AllChannels[4].Name)

	// Per-category counts sum to the total.
	sum := 0
	for _, cat := range doc.Categories {
		assert.Equal(t, len(cat.Channels), cat.Count)
		sum += cat.Count
	}
	assert.Equal(t, doc.TotalChannels, sum)

	ent := doc.Categories["Entertainment"]
	require.Equal(t, 2, ent.Count)
	assert.Equal(t, "Sony SET HD", ent.Channels[0].Name)
	assert.Equal(t, "Sony SAB", ent.Channels[1].Name)
}

func TestGenerateCatalogNormalizesMissingFields(t *testing.T) {
	channels := []ChannelInfo{{Name: "Bare Channel", Category: "Entertainment", URL: "http://x/1"}}

	data, err := GenerateCatalog(channels, time.Now(), CatalogOptions{})
	require.NoError(t, err)

	var doc catalogDoc
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.AllChannels, 1)

	ch := doc.AllChannels[0]
	assert.Equal(t, "Bare Channel", ch.Name)
	assert.Equal(t, "", ch.TvgID)
	assert.Equal(t, "", ch.TvgName)
	assert.Equal(t, "", ch.Logo)
	assert.Equal(t, "Entertainment", ch.Group)
	assert.Equal(t, "http://x/1", ch.URL)
}

func TestGenerateCatalogCustomFieldNames(t *testing.T) {
	opts := CatalogOptions{FieldNames: CatalogFieldNames{
		UpdatedAt:       "generated",
		TotalChannels:   "channel_count",
		TotalCategories: "category_count",
		Categories:      "groups",
		AllChannels:     "channels",
	}}

	data, err := GenerateCatalog(sampleChannels(), time.Now(), opts)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))

	for _, key := range []string{"generated", "channel_count", "category_count", "groups", "channels"} {
		assert.Contains(t, doc, key)
	}
	assert.NotContains(t, doc, "updated_at")
}

func TestGenerateCatalogEmptyInput(t *testing.T) {
	data, err := GenerateCatalog(nil, time.Now(), CatalogOptions{})
	require.NoError(t, err)

	var doc catalogDoc
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Zero(t, doc.TotalChannels)
	assert.Zero(t, doc.TotalCategories)
	assert.Empty(t, doc.AllChannels)
}
