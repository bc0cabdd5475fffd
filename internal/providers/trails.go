package providers

import (
	"context"
	"fmt"
)

type TrailsProvider interface {
	TrailsNear(ctx context.Context, lat, lng float64) ([]Trail, error)
}

type trailsService struct {
	baseURL string
	apiKey  string
	*apiClient
}

func NewTrailsService(baseURL, apiKey string) TrailsProvider {
	return &trailsService{
		baseURL:   baseURL,
		apiKey:    apiKey,
		apiClient: newAPIClient("trails"),
	}
}

type Trail struct {
	URL             string  `json:"url"`
	Name            string  `json:"name"`
	Location        string  `json:"location"`
	Length          float64 `json:"length"`
	ConditionDate   string  `json:"conditionDate"`
	ConditionStatus string  `json:"conditionStatus"`
	Stars           float64 `json:"stars"`
	StarVotes       int     `json:"starVotes"`
	Summary         string  `json:"summary"`
}

type trailsResponse struct {
	Trails []Trail `json:"trails"`
}

func (s *trailsService) TrailsNear(ctx context.Context, lat, lng float64) ([]Trail, error) {
	endpoint := fmt.Sprintf("%s?lat=%v&lon=%v&maxDistance=10&key=%s", s.baseURL, lat, lng, s.apiKey)

	var resp trailsResponse
	if err := s.getJSON(ctx, endpoint, "", &resp); err != nil {
		return nil, fmt.Errorf("trails request failed: %w", err)
	}

	return resp.Trails, nil
}
