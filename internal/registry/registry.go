// Package registry is the static category table: per category, its staleness
// threshold, its cache key field, and the typed binding of upstream fetch to
// normalizer. The orchestrator runs generically against these bindings, so
// adding a category is one model, one binding, and one TTL in config.
package registry

import (
	"context"
	"strings"
	"time"

	"cityscout/explorer-service/internal/db/records"
	"cityscout/explorer-service/internal/normalize"
	"cityscout/explorer-service/internal/providers"
)

// Config is one row of the category table.
type Config struct {
	Name     string
	TTL      time.Duration
	KeyField string
}

// Category binds one per-location category to its fetch and normalizer.
type Category[Raw any, E records.Entry] struct {
	Config
	Fetch     func(ctx context.Context, loc records.Location) ([]Raw, error)
	Normalize func(raw Raw, locationID uint) E
}

type Providers struct {
	Forecast providers.ForecastProvider
	Meetup   providers.MeetupProvider
	Yelp     providers.YelpProvider
	Trails   providers.TrailsProvider
	Movies   providers.MovieProvider
}

type TTLs struct {
	Weather time.Duration
	Meetup  time.Duration
	Yelp    time.Duration
	Trail   time.Duration
	Movie   time.Duration
}

type Registry struct {
	Weather          Category[providers.ForecastDay, records.WeatherEntry]
	Meetups          Category[providers.MeetupEvent, records.MeetupEntry]
	PointsOfInterest Category[providers.YelpBusiness, records.PointOfInterestEntry]
	Trails           Category[providers.Trail, records.TrailEntry]
	Movies           Category[providers.Movie, records.MovieEntry]
}

func New(p Providers, ttls TTLs) *Registry {
	return &Registry{
		Weather: Category[providers.ForecastDay, records.WeatherEntry]{
			Config: Config{Name: "weather", TTL: ttls.Weather, KeyField: "location_id"},
			Fetch: func(ctx context.Context, loc records.Location) ([]providers.ForecastDay, error) {
				return p.Forecast.Forecast(ctx, loc.Latitude, loc.Longitude)
			},
			Normalize: normalize.Weather,
		},
		Meetups: Category[providers.MeetupEvent, records.MeetupEntry]{
			Config: Config{Name: "meetups", TTL: ttls.Meetup, KeyField: "location_id"},
			Fetch: func(ctx context.Context, loc records.Location) ([]providers.MeetupEvent, error) {
				return p.Meetup.UpcomingEvents(ctx, loc.Latitude, loc.Longitude)
			},
			Normalize: normalize.Meetup,
		},
		PointsOfInterest: Category[providers.YelpBusiness, records.PointOfInterestEntry]{
			Config: Config{Name: "yelps", TTL: ttls.Yelp, KeyField: "location_id"},
			Fetch: func(ctx context.Context, loc records.Location) ([]providers.YelpBusiness, error) {
				return p.Yelp.BusinessSearch(ctx, loc.Latitude, loc.Longitude)
			},
			Normalize: normalize.PointOfInterest,
		},
		Trails: Category[providers.Trail, records.TrailEntry]{
			Config: Config{Name: "trails", TTL: ttls.Trail, KeyField: "location_id"},
			Fetch: func(ctx context.Context, loc records.Location) ([]providers.Trail, error) {
				return p.Trails.TrailsNear(ctx, loc.Latitude, loc.Longitude)
			},
			Normalize: normalize.Trail,
		},
		Movies: Category[providers.Movie, records.MovieEntry]{
			Config: Config{Name: "movies", TTL: ttls.Movie, KeyField: "location_id"},
			Fetch: func(ctx context.Context, loc records.Location) ([]providers.Movie, error) {
				return p.Movies.SearchMovies(ctx, CityToken(loc.FormattedQuery))
			},
			Normalize: normalize.Movie,
		},
	}
}

// Table reports every category row, locations included. Locations carry no
// TTL: a resolved query never expires.
func (r *Registry) Table() []Config {
	return []Config{
		{Name: "locations", TTL: 0, KeyField: "search_query"},
		r.Weather.Config,
		r.Meetups.Config,
		r.PointsOfInterest.Config,
		r.Trails.Config,
		r.Movies.Config,
	}
}

// CityToken extracts the city part of a formatted address ("Seattle, WA" →
// "Seattle") for upstreams that search by name rather than coordinates.
func CityToken(formatted string) string {
	if i := strings.IndexByte(formatted, ','); i >= 0 {
		return formatted[:i]
	}
	return formatted
}
