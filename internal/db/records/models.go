package records

import (
	"time"
)

// Location is the anchor row every other category hangs off of. One row per
// distinct free-text search query; never mutated after creation.
type Location struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	SearchQuery    string  `json:"search_query" gorm:"column:search_query;uniqueIndex:idx_search_query"`
	FormattedQuery string  `json:"formatted_query" gorm:"column:formatted_query"`
	Latitude       float64 `json:"latitude" gorm:"column:latitude"`
	Longitude      float64 `json:"longitude" gorm:"column:longitude"`
}

func (Location) TableName() string {
	return "locations"
}

type WeatherEntry struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Forecast   string    `json:"forecast" gorm:"column:forecast"`
	Time       string    `json:"time" gorm:"column:time"`
	LocationID uint      `json:"location_id" gorm:"column:location_id;index:idx_weather_location_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (WeatherEntry) TableName() string {
	return "weathers"
}

func (e WeatherEntry) CreatedAtTime() time.Time { return e.CreatedAt }

type MeetupEntry struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Link         string    `json:"link" gorm:"column:link"`
	Name         string    `json:"name" gorm:"column:name"`
	CreationDate string    `json:"creation_date" gorm:"column:creation_date"`
	Host         string    `json:"host" gorm:"column:host"`
	LocationID   uint      `json:"location_id" gorm:"column:location_id;index:idx_meetup_location_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (MeetupEntry) TableName() string {
	return "meetups"
}

func (e MeetupEntry) CreatedAtTime() time.Time { return e.CreatedAt }

// PointOfInterestEntry holds one Yelp business hit.
type PointOfInterestEntry struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	URL        string    `json:"url" gorm:"column:url"`
	Name       string    `json:"name" gorm:"column:name"`
	Rating     float64   `json:"rating" gorm:"column:rating"`
	Price      string    `json:"price" gorm:"column:price"`
	ImageURL   string    `json:"image_url" gorm:"column:image_url"`
	LocationID uint      `json:"location_id" gorm:"column:location_id;index:idx_yelp_location_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PointOfInterestEntry) TableName() string {
	return "yelps"
}

func (e PointOfInterestEntry) CreatedAtTime() time.Time { return e.CreatedAt }

type TrailEntry struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	TrailURL      string    `json:"trail_url" gorm:"column:trail_url"`
	Name          string    `json:"name" gorm:"column:name"`
	Location      string    `json:"location" gorm:"column:location"`
	Length        float64   `json:"length" gorm:"column:length"`
	ConditionDate string    `json:"condition_date" gorm:"column:condition_date"`
	ConditionTime string    `json:"condition_time" gorm:"column:condition_time"`
	Conditions    string    `json:"conditions" gorm:"column:conditions"`
	Stars         string    `json:"stars" gorm:"column:stars"`
	StarVotes     string    `json:"star_votes" gorm:"column:star_votes"`
	Summary       string    `json:"summary" gorm:"column:summary"`
	LocationID    uint      `json:"location_id" gorm:"column:location_id;index:idx_trail_location_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (TrailEntry) TableName() string {
	return "trails"
}

func (e TrailEntry) CreatedAtTime() time.Time { return e.CreatedAt }

type MovieEntry struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"column:title"`
	ReleasedOn   string    `json:"released_on" gorm:"column:released_on"`
	TotalVotes   int       `json:"total_votes" gorm:"column:total_votes"`
	AverageVotes string    `json:"average_votes" gorm:"column:average_votes"`
	Popularity   float64   `json:"popularity" gorm:"column:popularity"`
	Summary      string    `json:"summary" gorm:"column:summary"`
	ImageURL     string    `json:"image_url" gorm:"column:image_url"`
	LocationID   uint      `json:"location_id" gorm:"column:location_id;index:idx_movie_location_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (MovieEntry) TableName() string {
	return "movies"
}

func (e MovieEntry) CreatedAtTime() time.Time { return e.CreatedAt }

// AllModels is what AutoMigrate runs over at startup.
func AllModels() []interface{} {
	return []interface{}{
		&Location{},
		&WeatherEntry{},
		&MeetupEntry{},
		&PointOfInterestEntry{},
		&TrailEntry{},
		&MovieEntry{},
	}
}
