package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaveNote overwrites the single note for a course. Notes are never
// versioned.
func (s *Store) SaveNote(courseID, text string) error {
	n := Note{CourseID: courseID, Text: text}
	return wrap(s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"text"}),
	}).Create(&n).Error)
}

// GetNote returns the note text, or ok=false when none was saved.
func (s *Store) GetNote(courseID string) (string, bool, error) {
	var n Note
	err := s.db.First(&n, "course_id = ?", courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrap(err)
	}
	return n.Text, true, nil
}

// DeleteNote removes the note for a course; missing notes are a no-op.
func (s *Store) DeleteNote(courseID string) error {
	return wrap(s.db.Delete(&Note{}, "course_id = ?", courseID).Error)
}
