package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	GeocodeAPIKey string
	DarkSkyAPIKey string
	MeetupAPIKey  string
	YelpAPIKey    string
	TrailsAPIKey  string
	MovieAPIKey   string

	GeocodeBaseURL string
	DarkSkyBaseURL string
	MeetupBaseURL  string
	YelpBaseURL    string
	TrailsBaseURL  string
	MovieBaseURL   string

	WeatherTTL time.Duration
	MeetupTTL  time.Duration
	YelpTTL    time.Duration
	TrailTTL   time.Duration
	MovieTTL   time.Duration

	JanitorInterval time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "explorer-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 175)

	v.SetDefault("GEOCODE_BASE_URL", "https://maps.googleapis.com/maps/api/geocode/json")
	v.SetDefault("DARKSKY_BASE_URL", "https://api.darksky.net/forecast")
	v.SetDefault("MEETUP_BASE_URL", "https://api.meetup.com/find/upcoming_events")
	v.SetDefault("YELP_BASE_URL", "https://api.yelp.com/v3/businesses/search")
	v.SetDefault("TRAILS_BASE_URL", "https://www.hikingproject.com/data/get-trails")
	v.SetDefault("MOVIE_BASE_URL", "https://api.themoviedb.org/3/search/movie")

	v.SetDefault("WEATHER_TTL", 15*time.Minute)
	v.SetDefault("MEETUP_TTL", 168*time.Hour)
	v.SetDefault("YELP_TTL", 24*time.Hour)
	v.SetDefault("TRAIL_TTL", 24*time.Hour)
	v.SetDefault("MOVIE_TTL", 720*time.Hour)

	v.SetDefault("JANITOR_INTERVAL", 10*time.Minute)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:     v.GetString("SERVICE_NAME"),
		ServerAddress:   v.GetString("SERVER_ADDRESS"),
		DBName:          v.GetString("DATABASE_NAME"),
		DBPassword:      v.GetString("DATABASE_PASSWORD"),
		DBUser:          v.GetString("DATABASE_USER"),
		DBPort:          v.GetString("DATABASE_PORT"),
		DBHost:          v.GetString("DATABASE_HOST"),
		Env:             v.GetString("ENV"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		HTTPTimeout:     v.GetInt32("HTTP_TIMEOUT"),
		GeocodeAPIKey:   v.GetString("GEOCODE_API_KEY"),
		DarkSkyAPIKey:   v.GetString("DARKSKY_API_KEY"),
		MeetupAPIKey:    v.GetString("MEETUP_API_KEY"),
		YelpAPIKey:      v.GetString("YELP_API_KEY"),
		TrailsAPIKey:    v.GetString("TRAILS_API_KEY"),
		MovieAPIKey:     v.GetString("MOVIE_DB_API_KEY"),
		GeocodeBaseURL:  v.GetString("GEOCODE_BASE_URL"),
		DarkSkyBaseURL:  v.GetString("DARKSKY_BASE_URL"),
		MeetupBaseURL:   v.GetString("MEETUP_BASE_URL"),
		YelpBaseURL:     v.GetString("YELP_BASE_URL"),
		TrailsBaseURL:   v.GetString("TRAILS_BASE_URL"),
		MovieBaseURL:    v.GetString("MOVIE_BASE_URL"),
		WeatherTTL:      v.GetDuration("WEATHER_TTL"),
		MeetupTTL:       v.GetDuration("MEETUP_TTL"),
		YelpTTL:         v.GetDuration("YELP_TTL"),
		TrailTTL:        v.GetDuration("TRAIL_TTL"),
		MovieTTL:        v.GetDuration("MOVIE_TTL"),
		JanitorInterval: v.GetDuration("JANITOR_INTERVAL"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
