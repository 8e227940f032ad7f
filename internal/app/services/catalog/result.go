package catalog

import (
	"fmt"
	"math"
	"strings"
)

// Track is a catalog track as returned by the search API.
type Track struct {
	ID         string
	Name       string
	URI        string
	Artists    []Artist
	DurationMs int
	Images     []Image
}

type Artist struct {
	Name string
}

type Image struct {
	URL    string
	Height int
}

// SearchResult is the trimmed track shape served to the client.
type SearchResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Artists  string `json:"artists"`
	Duration string `json:"duration"`
	URI      string `json:"uri"`
	ImageURL string `json:"imageUrl"`
}

func NewSearchResult(track Track) SearchResult {
	return SearchResult{
		ID:       track.ID,
		Name:     track.Name,
		Artists:  JoinArtistNames(track.Artists),
		Duration: FormatDuration(track.DurationMs),
		URI:      track.URI,
		ImageURL: SmallestImageURL(track.Images),
	}
}

// JoinArtistNames joins names with ", " keeping the API order.
func JoinArtistNames(artists []Artist) string {
	names := make([]string, 0, len(artists))
	for _, artist := range artists {
		names = append(names, artist.Name)
	}

	return strings.Join(names, ", ")
}

// FormatDuration renders milliseconds as "H:MM:SS h" or "M:SS min".
func FormatDuration(durationMs int) string {
	totalSeconds := int(math.Round(float64(durationMs) / 1000))

	hours := totalSeconds / 3600
	minutes := (totalSeconds / 60) % 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d h", hours, minutes, seconds)
	}

	return fmt.Sprintf("%d:%02d min", minutes, seconds)
}

// SmallestImageURL returns the URL of the lowest image, or "" when there is none.
func SmallestImageURL(images []Image) string {
	if len(images) == 0 {
		return ""
	}

	smallest := images[0]
	for _, image := range images[1:] {
		if image.Height < smallest.Height {
			smallest = image
		}
	}

	return smallest.URL
}
