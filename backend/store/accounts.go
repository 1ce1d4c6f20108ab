package store

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterAccount persists a new account. The creation timestamp is assigned
// here, not by the caller, and the password is stored as a bcrypt hash.
// Fails with ErrDuplicateAccount when the email is already taken; the
// existing record is left untouched.
func (s *Store) RegisterAccount(acc *Account) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&Account{}).Where("email = ?", acc.Email).Count(&existing).Error; err != nil {
			return wrap(err)
		}
		if existing > 0 {
			return ErrDuplicateAccount
		}
		acc.Password = string(hashed)
		acc.CreatedAt = nowMillis()
		return wrap(tx.Create(acc).Error)
	})
}

// Authenticate looks the account up by email and checks the password.
// Comparison is exact and case-sensitive; a missing account and a wrong
// password are indistinguishable to the caller.
func (s *Store) Authenticate(email, password string) (*Account, error) {
	var acc Account
	err := s.db.First(&acc, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, wrap(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &acc, nil
}

// GetAccount returns the account for the email, or ok=false.
func (s *Store) GetAccount(email string) (*Account, bool, error) {
	var acc Account
	err := s.db.First(&acc, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, wrap(err)
	}
	return &acc, true, nil
}

// UpdateAccount overwrites the full record keyed by email. Callers must
// supply every field; anything omitted is dropped. Prefer
// UpdateAccountFields, which merges internally.
func (s *Store) UpdateAccount(acc *Account) error {
	return wrap(s.db.Save(acc).Error)
}

// UpdateAccountFields applies a merge patch to the account: it reads the
// current record, overlays only the supplied fields and writes the result
// back, all in one transaction. Recognized keys: name, password, student_no,
// avatar_url. A password value is re-hashed.
func (s *Store) UpdateAccountFields(email string, fields map[string]any) (*Account, error) {
	var acc Account
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&acc, "email = ?", email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return wrap(err)
		}
		for k, v := range fields {
			str, ok := v.(string)
			if !ok {
				continue
			}
			switch k {
			case "name":
				acc.Name = str
			case "student_no":
				acc.StudentNo = str
			case "avatar_url":
				acc.AvatarURL = str
			case "password":
				hashed, err := bcrypt.GenerateFromPassword([]byte(str), bcrypt.DefaultCost)
				if err != nil {
					return err
				}
				acc.Password = string(hashed)
			}
		}
		return wrap(tx.Save(&acc).Error)
	})
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
