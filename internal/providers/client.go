package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// ErrNoData marks an upstream that answered successfully but had nothing for
// the query. Callers use it to distinguish "no data" from transport failures.
var ErrNoData = errors.New("no data")

// apiClient is the shared transport for all upstream calls: one HTTP client
// and one circuit breaker per upstream, so a flapping API fails fast instead
// of tying up request handlers.
type apiClient struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

func newAPIClient(name string) *apiClient {
	return &apiClient{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    name,
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// getJSON issues a GET through the breaker, optionally with a bearer token,
// and decodes the 200 body into out.
func (c *apiClient) getJSON(ctx context.Context, endpoint, bearerToken string, out interface{}) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		if bearerToken != "" {
			req.Header.Set("Authorization", "Bearer "+bearerToken)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("returned status code: %d", resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("returned malformed JSON: %w", err)
		}

		return nil, nil
	})
	return err
}
