package providers

import (
	"context"
	"fmt"
)

type ForecastProvider interface {
	Forecast(ctx context.Context, lat, lng float64) ([]ForecastDay, error)
}

type forecastService struct {
	baseURL string
	apiKey  string
	*apiClient
}

func NewForecastService(baseURL, apiKey string) ForecastProvider {
	return &forecastService{
		baseURL:   baseURL,
		apiKey:    apiKey,
		apiClient: newAPIClient("forecast"),
	}
}

type ForecastDay struct {
	Summary string `json:"summary"`
	Time    int64  `json:"time"`
}

type forecastResponse struct {
	Daily struct {
		Data []ForecastDay `json:"data"`
	} `json:"daily"`
}

func (s *forecastService) Forecast(ctx context.Context, lat, lng float64) ([]ForecastDay, error) {
	endpoint := fmt.Sprintf("%s/%s/%v,%v", s.baseURL, s.apiKey, lat, lng)

	var resp forecastResponse
	if err := s.getJSON(ctx, endpoint, "", &resp); err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}

	return resp.Daily.Data, nil
}
