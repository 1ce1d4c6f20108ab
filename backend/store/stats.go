package store

import (
	"errors"

	"gorm.io/gorm"
)

// IncrementStat adds delta to the named counter and returns the new total.
// The read-modify-write runs in one transaction; two increments issued in
// sequence from the same caller always sum.
func (s *Store) IncrementStat(name string, delta int64) (int64, error) {
	var total int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var stat AggregateStat
		err := tx.First(&stat, "name = ?", name).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			stat = AggregateStat{Name: name}
		} else if err != nil {
			return wrap(err)
		}
		stat.Value += delta
		total = stat.Value
		return wrap(tx.Save(&stat).Error)
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// GetStat returns the counter value, zero when it was never incremented.
func (s *Store) GetStat(name string) (int64, error) {
	var stat AggregateStat
	err := s.db.First(&stat, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, wrap(err)
	}
	return stat.Value, nil
}
