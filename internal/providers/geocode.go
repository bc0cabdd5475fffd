package providers

import (
	"context"
	"fmt"
	"net/url"
)

type Geocoder interface {
	Geocode(ctx context.Context, query string) (GeocodeResult, error)
}

type geocodeService struct {
	baseURL string
	apiKey  string
	*apiClient
}

func NewGeocodeService(baseURL, apiKey string) Geocoder {
	return &geocodeService{
		baseURL:   baseURL,
		apiKey:    apiKey,
		apiClient: newAPIClient("geocode"),
	}
}

type GeocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

type geocodeResponse struct {
	Results []GeocodeResult `json:"results"`
}

// Geocode resolves a free-text place query to its first geocoding result.
// Zero results is ErrNoData, not an empty success: without coordinates none
// of the dependent categories can run.
func (s *geocodeService) Geocode(ctx context.Context, query string) (GeocodeResult, error) {
	endpoint := fmt.Sprintf("%s?address=%s&key=%s", s.baseURL, url.QueryEscape(query), s.apiKey)

	var resp geocodeResponse
	if err := s.getJSON(ctx, endpoint, "", &resp); err != nil {
		return GeocodeResult{}, fmt.Errorf("geocode request failed: %w", err)
	}

	if len(resp.Results) == 0 {
		return GeocodeResult{}, ErrNoData
	}

	return resp.Results[0], nil
}
