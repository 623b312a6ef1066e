package models

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// MediaItem is one ingested photo or video. The payload travels inline as
// a base64 data URL so listings stay self-contained once published.
type MediaItem struct {
	ID   string `json:"id"`
	Type string `json:"type"` // image, video
	URL  string `json:"url"`  // data URL, e.g. "data:image/jpeg;base64,..."
	Name string `json:"name"`
}
