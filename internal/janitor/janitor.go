// Package janitor prunes expired cache rows in the background so tables that
// stop being queried do not accumulate stale entries forever. The request
// path still does its own staleness check; the janitor only deletes, it never
// refetches.
package janitor

import (
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"

	"cityscout/explorer-service/internal/db/records"
	"cityscout/explorer-service/internal/registry"
)

type Janitor struct {
	scheduler *gocron.Scheduler
	store     *records.Store
	registry  *registry.Registry
	interval  time.Duration
}

func New(store *records.Store, reg *registry.Registry, interval time.Duration) *Janitor {
	return &Janitor{
		scheduler: gocron.NewScheduler(time.UTC),
		store:     store,
		registry:  reg,
		interval:  interval,
	}
}

func (j *Janitor) Start() error {
	interval := j.interval
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	if _, err := j.scheduler.Every(interval).Do(j.sweep); err != nil {
		return err
	}

	j.scheduler.StartAsync()
	return nil
}

func (j *Janitor) Stop() {
	j.scheduler.Stop()
}

func (j *Janitor) sweep() {
	now := time.Now()
	prune[records.WeatherEntry](j.store, j.registry.Weather.Config, now)
	prune[records.MeetupEntry](j.store, j.registry.Meetups.Config, now)
	prune[records.PointOfInterestEntry](j.store, j.registry.PointsOfInterest.Config, now)
	prune[records.TrailEntry](j.store, j.registry.Trails.Config, now)
	prune[records.MovieEntry](j.store, j.registry.Movies.Config, now)
}

func prune[E records.Entry](store *records.Store, cfg registry.Config, now time.Time) {
	if cfg.TTL <= 0 {
		return
	}

	rows, err := records.DeleteEntriesBefore[E](store, now.Add(-cfg.TTL))
	if err != nil {
		log.Warn().Err(err).Str("category", cfg.Name).Msg("failed to prune expired cache entries")
		return
	}
	if rows > 0 {
		log.Info().Int64("rows", rows).Str("category", cfg.Name).Msg("pruned expired cache entries")
	}
}
