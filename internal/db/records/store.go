package records

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is satisfied by every per-location category row. The constraint is a
// method set rather than a type union so the generic helpers can read the
// row's creation time for staleness checks.
type Entry interface {
	CreatedAtTime() time.Time
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

// LocationByQuery returns the location cached for a free-text query, with a
// found flag so not-found is distinguishable from a store failure.
func (s *Store) LocationByQuery(query string) (*Location, bool, error) {
	var loc Location
	err := s.db.Where("search_query = ?", query).First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &loc, true, nil
}

// SaveLocation upserts on search_query. Concurrent first-time resolutions of
// the same query converge on a single row, and the surviving row's id is
// populated on loc either way.
func (s *Store) SaveLocation(loc *Location) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "search_query"}},
		DoUpdates: clause.AssignmentColumns([]string{"formatted_query", "latitude", "longitude"}),
	}).Create(loc).Error
}

// EntriesByLocation returns all cached rows of one category for a location,
// ordered by id.
func EntriesByLocation[E Entry](s *Store, locationID uint) ([]E, error) {
	var out []E
	err := s.db.Where("location_id = ?", locationID).Order("id").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func InsertEntry[E Entry](s *Store, entry *E) error {
	return s.db.Create(entry).Error
}

func DeleteEntriesByLocation[E Entry](s *Store, locationID uint) error {
	var model E
	return s.db.Where("location_id = ?", locationID).Delete(&model).Error
}

// DeleteEntriesBefore prunes rows created before cutoff; used by the janitor.
func DeleteEntriesBefore[E Entry](s *Store, cutoff time.Time) (int64, error) {
	var model E
	res := s.db.Where("created_at < ?", cutoff).Delete(&model)
	return res.RowsAffected, res.Error
}
