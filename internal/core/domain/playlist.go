package domain

import (
	"path"
	"strings"
	"time"
)

// MediaType classifies a creative for the player.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// ImageDurationSeconds is the suggested on-screen time for still images.
// Videos carry no duration; the player lets them run to their natural end.
const ImageDurationSeconds = 10

// imageExts is the closed set of extensions treated as still images.
// Anything else is assumed to be video.
var imageExts = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {},
	".webp": {}, ".bmp": {}, ".svg": {},
}

// PlaylistItem is the client-facing projection of a campaign row.
type PlaylistItem struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	URL           string     `json:"url"`
	Type          MediaType  `json:"type"`
	Duration      *int       `json:"duration"`
	ScheduledFrom *time.Time `json:"scheduled_from"`
	ScheduledTo   *time.Time `json:"scheduled_to"`
}

// ProjectPlaylistItem maps a campaign to its playlist entry. It is pure:
// the same campaign always projects to the same item.
func ProjectPlaylistItem(c *Campaign) PlaylistItem {
	item := PlaylistItem{
		ID:            c.ID,
		Title:         c.Title,
		URL:           c.FileURL,
		Type:          MediaVideo,
		ScheduledFrom: c.ScheduledFrom,
		ScheduledTo:   c.ScheduledTo,
	}
	ext := strings.ToLower(path.Ext(c.FileURL))
	if _, ok := imageExts[ext]; ok {
		item.Type = MediaImage
		d := ImageDurationSeconds
		item.Duration = &d
	}
	return item
}
