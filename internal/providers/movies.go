package providers

import (
	"context"
	"fmt"
	"net/url"
)

type MovieProvider interface {
	SearchMovies(ctx context.Context, query string) ([]Movie, error)
}

type movieService struct {
	baseURL string
	apiKey  string
	*apiClient
}

func NewMovieService(baseURL, apiKey string) MovieProvider {
	return &movieService{
		baseURL:   baseURL,
		apiKey:    apiKey,
		apiClient: newAPIClient("movies"),
	}
}

type Movie struct {
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	VoteCount   int     `json:"vote_count"`
	VoteAverage float64 `json:"vote_average"`
	Popularity  float64 `json:"popularity"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
}

type movieResponse struct {
	Results []Movie `json:"results"`
}

func (s *movieService) SearchMovies(ctx context.Context, query string) ([]Movie, error) {
	endpoint := fmt.Sprintf("%s?api_key=%s&language=en-US&query=%s&page=1&include_adult=false",
		s.baseURL, s.apiKey, url.QueryEscape(query))

	var resp movieResponse
	if err := s.getJSON(ctx, endpoint, "", &resp); err != nil {
		return nil, fmt.Errorf("movie request failed: %w", err)
	}

	return resp.Results, nil
}
