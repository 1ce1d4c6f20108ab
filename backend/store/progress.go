package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaveProgress persists the completion percentage for a course verbatim,
// last write wins. Keeping the value in 0-100 and only advancing it is the
// caller's rule, not the store's.
func (s *Store) SaveProgress(courseID string, percent int) error {
	p := Progress{CourseID: courseID, Percent: percent}
	return wrap(s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"percent"}),
	}).Create(&p).Error)
}

// GetProgress returns the stored percentage, or ok=false when the course has
// no progress record yet.
func (s *Store) GetProgress(courseID string) (int, bool, error) {
	var p Progress
	err := s.db.First(&p, "course_id = ?", courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, wrap(err)
	}
	return p.Percent, true, nil
}
