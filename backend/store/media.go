package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SetMediaLink overrides the lecture URL for one course.
func (s *Store) SetMediaLink(courseID, url string) error {
	l := CourseMediaLink{CourseID: courseID, URL: url}
	return wrap(s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"url"}),
	}).Create(&l).Error)
}

// MediaLink returns the course override, or fallback when none is set.
func (s *Store) MediaLink(courseID, fallback string) (string, error) {
	var l CourseMediaLink
	err := s.db.First(&l, "course_id = ?", courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}
	if err != nil {
		return "", wrap(err)
	}
	return l.URL, nil
}
