package domain

import (
	"testing"
	"time"
)

func TestProjectPlaylistItemMediaTypes(t *testing.T) {
	cases := []struct {
		url          string
		wantType     MediaType
		wantDuration *int
	}{
		{"https://cdn.example.com/spot.mp4", MediaVideo, nil},
		{"https://cdn.example.com/banner.PNG", MediaImage, intp(10)},
		{"https://cdn.example.com/banner.jpg", MediaImage, intp(10)},
		{"https://cdn.example.com/banner.JPEG", MediaImage, intp(10)},
		{"https://cdn.example.com/anim.gif", MediaImage, intp(10)},
		{"https://cdn.example.com/pic.webp", MediaImage, intp(10)},
		{"https://cdn.example.com/pic.bmp", MediaImage, intp(10)},
		{"https://cdn.example.com/logo.svg", MediaImage, intp(10)},
		{"https://cdn.example.com/clip.webm", MediaVideo, nil},
		{"https://cdn.example.com/clip.mov", MediaVideo, nil},
		{"https://cdn.example.com/noextension", MediaVideo, nil},
		{"", MediaVideo, nil},
	}
	for _, tc := range cases {
		t.Run(tc.url, func(t *testing.T) {
			item := ProjectPlaylistItem(&Campaign{ID: 1, Title: "t", FileURL: tc.url})
			if item.Type != tc.wantType {
				t.Fatalf("type = %s, want %s", item.Type, tc.wantType)
			}
			if (item.Duration == nil) != (tc.wantDuration == nil) {
				t.Fatalf("duration presence mismatch: %v", item.Duration)
			}
			if item.Duration != nil && *item.Duration != *tc.wantDuration {
				t.Fatalf("duration = %d, want %d", *item.Duration, *tc.wantDuration)
			}
		})
	}
}

func TestProjectPlaylistItemCarriesSchedule(t *testing.T) {
	from := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	c := Campaign{
		ID:            7,
		Title:         "Lunch special",
		FileURL:       "https://cdn.example.com/lunch.mp4",
		ScheduledFrom: &from,
		ScheduledTo:   &to,
	}
	item := ProjectPlaylistItem(&c)
	if item.ID != 7 || item.Title != "Lunch special" || item.URL != c.FileURL {
		t.Fatalf("identity fields not carried: %+v", item)
	}
	if item.ScheduledFrom == nil || !item.ScheduledFrom.Equal(from) {
		t.Fatalf("scheduled_from not carried: %v", item.ScheduledFrom)
	}
	if item.ScheduledTo == nil || !item.ScheduledTo.Equal(to) {
		t.Fatalf("scheduled_to not carried: %v", item.ScheduledTo)
	}
}

func TestProjectPlaylistItemDeterministic(t *testing.T) {
	c := Campaign{ID: 3, Title: "x", FileURL: "https://cdn.example.com/x.png"}
	first := ProjectPlaylistItem(&c)
	second := ProjectPlaylistItem(&c)
	if first.ID != second.ID || first.Type != second.Type ||
		*first.Duration != *second.Duration || first.URL != second.URL {
		t.Fatalf("projection not deterministic: %+v vs %+v", first, second)
	}
}

func intp(v int) *int { return &v }
