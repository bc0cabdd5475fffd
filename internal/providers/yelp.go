package providers

import (
	"context"
	"fmt"
)

type YelpProvider interface {
	BusinessSearch(ctx context.Context, lat, lng float64) ([]YelpBusiness, error)
}

type yelpService struct {
	baseURL string
	apiKey  string
	*apiClient
}

func NewYelpService(baseURL, apiKey string) YelpProvider {
	return &yelpService{
		baseURL:   baseURL,
		apiKey:    apiKey,
		apiClient: newAPIClient("yelp"),
	}
}

type YelpBusiness struct {
	URL      string  `json:"url"`
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Price    string  `json:"price"`
	ImageURL string  `json:"image_url"`
}

type yelpResponse struct {
	Businesses []YelpBusiness `json:"businesses"`
}

// BusinessSearch queries Yelp around the coordinates. Yelp authenticates via
// bearer token, not query param.
func (s *yelpService) BusinessSearch(ctx context.Context, lat, lng float64) ([]YelpBusiness, error) {
	endpoint := fmt.Sprintf("%s?latitude=%v&longitude=%v", s.baseURL, lat, lng)

	var resp yelpResponse
	if err := s.getJSON(ctx, endpoint, s.apiKey, &resp); err != nil {
		return nil, fmt.Errorf("yelp request failed: %w", err)
	}

	return resp.Businesses, nil
}
