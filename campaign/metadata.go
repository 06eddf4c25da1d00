package campaign

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"fundrr-backend/logger"
	"fundrr-backend/utils"
)

const (
	metadataCacheSize = 256
	metadataTimeout   = 5 * time.Second
)

type Metadata struct {
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// MetadataResolver dereferences stored metadata URLs expecting a JSON
// document with description and imageUrl fields. Failures (unreachable
// URL, non-JSON content such as a plain image) degrade gracefully to the
// stored raw values. Resolved documents are cached.
type MetadataResolver struct {
	client *http.Client
	cache  utils.Cache[string, Metadata]
}

func NewMetadataResolver() *MetadataResolver {
	return &MetadataResolver{
		client: &http.Client{Timeout: metadataTimeout},
		cache:  utils.NewCache[string, Metadata](metadataCacheSize),
	}
}

func (r *MetadataResolver) Resolve(rawURL, fallbackDescription, fallbackImage string) Metadata {
	fallback := Metadata{Description: fallbackDescription, ImageURL: fallbackImage}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return fallback
	}
	if cached, ok := r.cache.Get(rawURL); ok {
		return cached
	}

	resp, err := r.client.Get(rawURL)
	if err != nil {
		logger.Debug("metadata fetch failed for %s: %v", rawURL, err)
		return fallback
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		logger.Debug("metadata fetch for %s returned status %d", rawURL, resp.StatusCode)
		return fallback
	}

	var metadata Metadata
	if err := json.NewDecoder(resp.Body).Decode(&metadata); err != nil {
		return fallback
	}
	if len(metadata.Description) == 0 {
		metadata.Description = fallbackDescription
	}
	if len(metadata.ImageURL) == 0 {
		metadata.ImageURL = fallbackImage
	}
	r.cache.Add(rawURL, metadata)
	return metadata
}
