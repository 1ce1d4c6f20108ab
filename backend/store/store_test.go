package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portal/backend/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := &config.Config{
		DBDriver: "sqlite",
		DataDir:  t.TempDir(),
		DBName:   "portal_test",
	}
	st, err := Open(cfg)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	return st
}

func TestOpenIsIdempotent(t *testing.T) {
	cfg := &config.Config{
		DBDriver: "sqlite",
		DataDir:  t.TempDir(),
		DBName:   "portal_test",
	}

	st, err := Open(cfg)
	assert.NoError(t, err)

	assert.NoError(t, st.SaveNote("rusya-tarihi", "Kiev Rus"))

	// Reopening the same database must not re-run migrations or lose data.
	st2, err := Open(cfg)
	assert.NoError(t, err)

	text, ok, err := st2.GetNote("rusya-tarihi")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Kiev Rus", text)

	var applied int64
	assert.NoError(t, st2.db.Model(&schemaMigration{}).Count(&applied).Error)
	assert.Equal(t, int64(len(migrations)), applied)
}
