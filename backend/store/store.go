package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portal/backend/config"
)

var (
	// ErrStorageUnavailable means the local database could not be opened or
	// reached. Fatal for every operation; never retried here.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrDuplicateAccount means registration was attempted with an email
	// that already has an account.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrInvalidCredentials means the account is missing or the password
	// does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store wraps the database handle and exposes one typed operation per
// (partition, intent) pair. Absent values come back as ok=false, not errors.
type Store struct {
	db *gorm.DB
}

type schemaMigration struct {
	Version   int `gorm:"primaryKey"`
	AppliedAt int64
}

// migrations is the ordered, additive-only schema history. Adding a partition
// means appending a new version here; steps never drop or rewrite tables, so
// returning users keep their data across upgrades.
var migrations = []struct {
	Version int
	Apply   func(tx *gorm.DB) error
}{
	{
		Version: 1,
		Apply: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&Account{},
				&Document{},
				&Note{},
				&Progress{},
				&SharedResource{},
				&DirectMessage{},
				&AggregateStat{},
				&CourseMediaLink{},
			)
		},
	},
}

// Open opens (creating if absent) the portal database and brings the schema
// up to the current version. Safe to call repeatedly: already-applied
// versions are skipped inside a single transaction, so concurrent opens
// cannot race the upgrade or create duplicate partitions.
func Open(cfg *config.Config) (*Store, error) {
	db, err := openDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("%w: schema upgrade: %v", ErrStorageUnavailable, err)
	}

	return &Store{db: db}, nil
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	if cfg.DBDriver == "postgres" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		return gorm.Open(postgres.Open(dsn), gormCfg)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(cfg.DataDir, cfg.DBName+".db")
	return gorm.Open(sqlite.Open(path), gormCfg)
}

func migrate(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(&schemaMigration{}); err != nil {
			return err
		}
		for _, m := range migrations {
			var applied int64
			if err := tx.Model(&schemaMigration{}).
				Where("version = ?", m.Version).
				Count(&applied).Error; err != nil {
				return err
			}
			if applied > 0 {
				continue
			}
			if err := m.Apply(tx); err != nil {
				return fmt.Errorf("migration %d: %w", m.Version, err)
			}
			if err := tx.Create(&schemaMigration{Version: m.Version, AppliedAt: nowMillis()}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// wrap maps database errors onto the store taxonomy. Record-not-found never
// reaches callers as an error; read paths convert it to ok=false first.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
