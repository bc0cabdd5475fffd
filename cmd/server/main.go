package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cityscout/explorer-service/config"
	"cityscout/explorer-service/internal/api/v1/handlers"
	"cityscout/explorer-service/internal/db/records"
	"cityscout/explorer-service/internal/janitor"
	"cityscout/explorer-service/internal/providers"
	"cityscout/explorer-service/internal/registry"
	"cityscout/explorer-service/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()

	ctx, mainCtxStop := context.WithCancel(context.Background())

	db, dbErr := initializeDatabase(conf)
	if dbErr != nil {
		log.Fatal().Err(dbErr).Msg("failed to initialize database")
	}

	store := records.NewStore(db)

	geocoder := providers.NewGeocodeService(conf.GeocodeBaseURL, conf.GeocodeAPIKey)

	reg := registry.New(registry.Providers{
		Forecast: providers.NewForecastService(conf.DarkSkyBaseURL, conf.DarkSkyAPIKey),
		Meetup:   providers.NewMeetupService(conf.MeetupBaseURL, conf.MeetupAPIKey),
		Yelp:     providers.NewYelpService(conf.YelpBaseURL, conf.YelpAPIKey),
		Trails:   providers.NewTrailsService(conf.TrailsBaseURL, conf.TrailsAPIKey),
		Movies:   providers.NewMovieService(conf.MovieBaseURL, conf.MovieAPIKey),
	}, registry.TTLs{
		Weather: conf.WeatherTTL,
		Meetup:  conf.MeetupTTL,
		Yelp:    conf.YelpTTL,
		Trail:   conf.TrailTTL,
		Movie:   conf.MovieTTL,
	})

	explorer := service.NewExplorer(store, geocoder, reg)

	sweeper := janitor.New(store, reg, conf.JanitorInterval)
	if err := sweeper.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start cache janitor")
	}

	handler := handlers.NewExplorerHandler(explorer, conf.HTTPTimeoutDuration())

	r := chi.NewRouter()
	r.Mount("/", handler.Routes())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		sweeper.Stop()
		if shutdownErr := httpServer.Shutdown(ctx); shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(records.AllModels()...); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
