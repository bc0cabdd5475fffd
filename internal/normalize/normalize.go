// Package normalize maps raw upstream payloads into the flat records the
// store persists. Every function is pure and total: a missing upstream field
// comes through as its zero value, never as a panic.
package normalize

import (
	"strconv"
	"time"

	"cityscout/explorer-service/internal/db/records"
	"cityscout/explorer-service/internal/providers"
)

// dayLayout matches the leading 15 characters of a JS Date string, which is
// the date form the legacy clients render verbatim.
const dayLayout = "Mon Jan 02 2006"

const posterBaseURL = "https://image.tmdb.org/t/p/w92/"

func Location(query string, raw providers.GeocodeResult) records.Location {
	return records.Location{
		SearchQuery:    query,
		FormattedQuery: raw.FormattedAddress,
		Latitude:       raw.Geometry.Location.Lat,
		Longitude:      raw.Geometry.Location.Lng,
	}
}

func Weather(raw providers.ForecastDay, locationID uint) records.WeatherEntry {
	return records.WeatherEntry{
		Forecast:   raw.Summary,
		Time:       time.Unix(raw.Time, 0).Format(dayLayout),
		LocationID: locationID,
	}
}

func Meetup(raw providers.MeetupEvent, locationID uint) records.MeetupEntry {
	return records.MeetupEntry{
		Link:         raw.Link,
		Name:         raw.Group.Name,
		CreationDate: time.UnixMilli(raw.Group.Created).Format(dayLayout),
		Host:         raw.Group.Who,
		LocationID:   locationID,
	}
}

func PointOfInterest(raw providers.YelpBusiness, locationID uint) records.PointOfInterestEntry {
	return records.PointOfInterestEntry{
		URL:        raw.URL,
		Name:       raw.Name,
		Rating:     raw.Rating,
		Price:      raw.Price,
		ImageURL:   raw.ImageURL,
		LocationID: locationID,
	}
}

func Trail(raw providers.Trail, locationID uint) records.TrailEntry {
	return records.TrailEntry{
		TrailURL:      raw.URL,
		Name:          raw.Name,
		Location:      raw.Location,
		Length:        raw.Length,
		ConditionDate: leading(raw.ConditionDate, 10),
		ConditionTime: trailing(raw.ConditionDate, 8),
		Conditions:    raw.ConditionStatus,
		Stars:         strconv.FormatFloat(raw.Stars, 'f', -1, 64),
		StarVotes:     strconv.Itoa(raw.StarVotes),
		Summary:       raw.Summary,
		LocationID:    locationID,
	}
}

func Movie(raw providers.Movie, locationID uint) records.MovieEntry {
	imageURL := ""
	if raw.PosterPath != "" {
		imageURL = posterBaseURL + raw.PosterPath
	}
	return records.MovieEntry{
		Title:        raw.Title,
		ReleasedOn:   raw.ReleaseDate,
		TotalVotes:   raw.VoteCount,
		AverageVotes: strconv.FormatFloat(raw.VoteAverage, 'f', -1, 64),
		Popularity:   raw.Popularity,
		Summary:      raw.Overview,
		ImageURL:     imageURL,
		LocationID:   locationID,
	}
}

// The condition timestamp arrives as "2006-01-02 15:04:05"; the date is its
// first 10 characters, the time its last 8. Shorter strings pass through
// unsplit rather than panicking on the slice.
func leading(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func trailing(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[len(s)-n:]
}
