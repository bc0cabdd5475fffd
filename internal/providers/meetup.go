package providers

import (
	"context"
	"fmt"
)

type MeetupProvider interface {
	UpcomingEvents(ctx context.Context, lat, lng float64) ([]MeetupEvent, error)
}

type meetupService struct {
	baseURL string
	apiKey  string
	*apiClient
}

func NewMeetupService(baseURL, apiKey string) MeetupProvider {
	return &meetupService{
		baseURL:   baseURL,
		apiKey:    apiKey,
		apiClient: newAPIClient("meetup"),
	}
}

type MeetupEvent struct {
	Link  string `json:"link"`
	Group struct {
		Name    string `json:"name"`
		Created int64  `json:"created"`
		Who     string `json:"who"`
	} `json:"group"`
}

type meetupResponse struct {
	Events []MeetupEvent `json:"events"`
}

func (s *meetupService) UpcomingEvents(ctx context.Context, lat, lng float64) ([]MeetupEvent, error) {
	endpoint := fmt.Sprintf("%s?&sign=true&photo-host=public&lon=%v&page=20&lat=%v&key=%s",
		s.baseURL, lng, lat, s.apiKey)

	var resp meetupResponse
	if err := s.getJSON(ctx, endpoint, "", &resp); err != nil {
		return nil, fmt.Errorf("meetup request failed: %w", err)
	}

	return resp.Events, nil
}
