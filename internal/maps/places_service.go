package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// Place represents a simplified location result.
type Place struct {
	Name             string
	Address          string
	Rating           float32
	PlaceID          string
	UserRatingsTotal int
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// TopSights returns up to limit well-rated attractions for a destination,
// used to ground activity suggestions in real places.
func (s *PlacesService) TopSights(ctx context.Context, destination string, limit int) ([]Place, error) {
	if limit <= 0 {
		limit = 3
	}

	r := &maps.TextSearchRequest{
		Query: fmt.Sprintf("top attractions in %s", destination),
		Type:  "tourist_attraction",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Place
	for _, result := range resp.Results {
		if result.Rating < 4.0 {
			continue
		}
		results = append(results, Place{
			Name:             result.Name,
			Address:          result.FormattedAddress,
			Rating:           result.Rating,
			PlaceID:          result.PlaceID,
			UserRatingsTotal: result.UserRatingsTotal,
		})
		if len(results) >= limit {
			break
		}
	}

	return results, nil
}

// FormatSights renders places as a compact bulleted list for prompt injection.
func FormatSights(places []Place) string {
	if len(places) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range places {
		fmt.Fprintf(&b, "- %s (rating %.1f, %d reviews)\n", p.Name, p.Rating, p.UserRatingsTotal)
	}
	return strings.TrimRight(b.String(), "\n")
}
