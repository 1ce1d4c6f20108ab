package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PutDocument stores or overwrites the blob at the unit key. No size limit is
// enforced here; a full disk surfaces as ErrStorageUnavailable.
func (s *Store) PutDocument(key UnitKey, blob []byte) error {
	doc := Document{Key: key.String(), Content: blob}
	return wrap(s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&doc).Error)
}

// GetDocument returns the stored blob, or ok=false when the key was never
// written. A missing key is not an error.
func (s *Store) GetDocument(key UnitKey) ([]byte, bool, error) {
	var doc Document
	err := s.db.First(&doc, "key = ?", key.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, wrap(err)
	}
	return doc.Content, true, nil
}

// DeleteDocument removes the blob at the key. Deleting a key that does not
// exist is a no-op.
func (s *Store) DeleteDocument(key UnitKey) error {
	return wrap(s.db.Delete(&Document{}, "key = ?", key.String()).Error)
}

// ListDocumentKeys enumerates all stored keys in no particular order.
func (s *Store) ListDocumentKeys() ([]string, error) {
	var keys []string
	if err := s.db.Model(&Document{}).Pluck("key", &keys).Error; err != nil {
		return nil, wrap(err)
	}
	return keys, nil
}

// ClearDocuments removes every stored document.
func (s *Store) ClearDocuments() error {
	return wrap(s.db.Where("1 = 1").Delete(&Document{}).Error)
}
