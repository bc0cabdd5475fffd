package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"cityscout/explorer-service/internal/db/records"
	"cityscout/explorer-service/internal/normalize"
	"cityscout/explorer-service/internal/providers"
	"cityscout/explorer-service/internal/registry"
)

type ExplorerService interface {
	Location(ctx context.Context, query string) (records.Location, error)
	Weather(ctx context.Context, loc records.Location) ([]records.WeatherEntry, error)
	Meetups(ctx context.Context, loc records.Location) ([]records.MeetupEntry, error)
	PointsOfInterest(ctx context.Context, loc records.Location) ([]records.PointOfInterestEntry, error)
	Trails(ctx context.Context, loc records.Location) ([]records.TrailEntry, error)
	Movies(ctx context.Context, loc records.Location) ([]records.MovieEntry, error)
}

type Explorer struct {
	store    *records.Store
	geocoder providers.Geocoder
	registry *registry.Registry
	now      func() time.Time
}

func NewExplorer(store *records.Store, geocoder providers.Geocoder, reg *registry.Registry) *Explorer {
	return &Explorer{
		store:    store,
		geocoder: geocoder,
		registry: reg,
		now:      time.Now,
	}
}

// Location resolves a free-text query to a stored location. A store lookup
// failure counts as a cache miss; a geocode with zero results surfaces as
// providers.ErrNoData. The save must succeed because the assigned id is the
// foreign key every dependent category fetch needs.
func (e *Explorer) Location(ctx context.Context, query string) (records.Location, error) {
	loc, found, err := e.store.LocationByQuery(query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("location lookup failed, treating as cache miss")
	}
	if found {
		return *loc, nil
	}

	raw, err := e.geocoder.Geocode(ctx, query)
	if err != nil {
		return records.Location{}, err
	}

	resolved := normalize.Location(query, raw)
	if err := e.store.SaveLocation(&resolved); err != nil {
		return records.Location{}, fmt.Errorf("saving location: %w", err)
	}

	return resolved, nil
}

func (e *Explorer) Weather(ctx context.Context, loc records.Location) ([]records.WeatherEntry, error) {
	return FetchOrCache(ctx, e.store, e.registry.Weather, loc, e.now())
}

func (e *Explorer) Meetups(ctx context.Context, loc records.Location) ([]records.MeetupEntry, error) {
	return FetchOrCache(ctx, e.store, e.registry.Meetups, loc, e.now())
}

func (e *Explorer) PointsOfInterest(ctx context.Context, loc records.Location) ([]records.PointOfInterestEntry, error) {
	return FetchOrCache(ctx, e.store, e.registry.PointsOfInterest, loc, e.now())
}

func (e *Explorer) Trails(ctx context.Context, loc records.Location) ([]records.TrailEntry, error) {
	return FetchOrCache(ctx, e.store, e.registry.Trails, loc, e.now())
}

func (e *Explorer) Movies(ctx context.Context, loc records.Location) ([]records.MovieEntry, error) {
	return FetchOrCache(ctx, e.store, e.registry.Movies, loc, e.now())
}

// FetchOrCache is the one control flow behind every per-location category:
// cached rows that are still within the category TTL are returned as-is;
// stale rows are deleted and refetched in the request path; a cache miss
// fetches upstream, normalizes each record, caches it, and returns the set.
// Store failures are logged and degrade to a miss (lookup) or a skipped write
// (insert) — the fetched records are returned to the caller regardless.
func FetchOrCache[Raw any, E records.Entry](
	ctx context.Context,
	store *records.Store,
	cat registry.Category[Raw, E],
	loc records.Location,
	now time.Time,
) ([]E, error) {
	rows, err := records.EntriesByLocation[E](store, loc.ID)
	if err != nil {
		log.Warn().Err(err).Str("category", cat.Name).Uint("location_id", loc.ID).
			Msg("cache lookup failed, treating as cache miss")
		rows = nil
	}

	if len(rows) > 0 {
		if fresh(rows, cat.TTL, now) {
			return rows, nil
		}
		if err := records.DeleteEntriesByLocation[E](store, loc.ID); err != nil {
			log.Warn().Err(err).Str("category", cat.Name).Uint("location_id", loc.ID).
				Msg("failed to delete stale cache entries")
		}
	}

	raws, err := cat.Fetch(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("%s fetch failed: %w", cat.Name, err)
	}

	// Zero upstream results is a valid empty answer for list categories.
	out := make([]E, 0, len(raws))
	for _, raw := range raws {
		entry := cat.Normalize(raw, loc.ID)
		if err := records.InsertEntry(store, &entry); err != nil {
			log.Warn().Err(err).Str("category", cat.Name).Uint("location_id", loc.ID).
				Msg("failed to cache entry")
		}
		out = append(out, entry)
	}

	return out, nil
}

// fresh reports whether the newest cached row is still inside the TTL. A zero
// TTL means the category never goes stale.
func fresh[E records.Entry](rows []E, ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return true
	}
	var newest time.Time
	for _, row := range rows {
		if t := row.CreatedAtTime(); t.After(newest) {
			newest = t
		}
	}
	return now.Sub(newest) <= ttl
}
