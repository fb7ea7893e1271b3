package api

import (
	"time"

	"kotoba/internal/captions"
	"kotoba/internal/library"
	"kotoba/internal/wordinfo"
)

// OpenRequest selects the captions to load. When only VideoPath is given the
// sidecar files next to it are discovered.
type OpenRequest struct {
	VideoPath     string `json:"video_path"`
	PrimaryPath   string `json:"primary_path"`
	SecondaryPath string `json:"secondary_path"`
	Title         string `json:"title,omitempty"`
	URL           string `json:"url,omitempty"`
}

// OpenResponse summarizes a load.
type OpenResponse struct {
	ID        string          `json:"id"`
	Sources   library.Sources `json:"sources"`
	Primary   int             `json:"primary"`
	Secondary int             `json:"secondary"`
	Aligned   bool            `json:"aligned"`
}

// ActiveResponse reports the captions showing at one time.
type ActiveResponse struct {
	Time      float64           `json:"time"`
	Primary   *captions.Caption `json:"primary"`
	Secondary *captions.Caption `json:"secondary"`
}

// CaptionsResponse carries the whole current set and, when it was opened
// from disk, the caption files behind it.
type CaptionsResponse struct {
	Set     *captions.Set    `json:"set"`
	Sources *library.Sources `json:"sources,omitempty"`
}

// RecentResponse lists recently opened videos.
type RecentResponse struct {
	Items []library.Recent `json:"items"`
}

// WordResponse carries one dictionary panel record.
type WordResponse struct {
	Word wordinfo.Record `json:"word"`
}

// HealthResponse reports server liveness and whether captions are loaded.
type HealthResponse struct {
	Status   string    `json:"status"`
	Loaded   bool      `json:"loaded"`
	LoadID   string    `json:"load_id,omitempty"`
	LoadedAt time.Time `json:"loaded_at,omitzero"`
}
