package store

import (
	"github.com/google/uuid"
)

// SendMessage persists a new direct message. The id and timestamp are
// assigned here; messages are immutable afterwards except for the read flag.
func (s *Store) SendMessage(m *DirectMessage) error {
	m.ID = uuid.NewString()
	m.Date = nowMillis()
	m.IsRead = false
	return wrap(s.db.Create(m).Error)
}

// ListMessagesFor returns every message the user sent or received, in no
// guaranteed order. The partition stays small at local-installation scale,
// so no recipient index is declared.
func (s *Store) ListMessagesFor(userID string) ([]DirectMessage, error) {
	var msgs []DirectMessage
	err := s.db.Where("from_id = ? OR to_id = ?", userID, userID).Find(&msgs).Error
	if err != nil {
		return nil, wrap(err)
	}
	return msgs, nil
}

// MarkMessageRead flips the read flag of one message. The body stays
// untouched; there is no edit operation.
func (s *Store) MarkMessageRead(id string) error {
	return wrap(s.db.Model(&DirectMessage{}).Where("id = ?", id).Update("is_read", true).Error)
}
