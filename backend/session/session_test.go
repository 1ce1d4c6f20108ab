package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"portal/backend/store"
)

func TestSessionStoreRoundtrip(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	// Never set means logged out.
	_, ok := s.Current()
	assert.False(t, ok)

	acc := store.Account{Email: "a@x.com", Name: "Ayşe", CreatedAt: 1700000000000}
	assert.NoError(t, s.Set(&acc))

	got, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "Ayşe", got.Name)

	assert.NoError(t, s.Clear())
	_, ok = s.Current()
	assert.False(t, ok)

	// Clearing an absent session is a no-op.
	assert.NoError(t, s.Clear())
}

func TestSessionSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, NewStore(dir).Set(&store.Account{Email: "a@x.com", Name: "Ayşe"}))

	// A fresh store over the same directory sees the same record.
	got, ok := NewStore(dir).Current()
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestCorruptSessionFileReadsAsLoggedOut(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("{not json"), 0o600))

	_, ok := NewStore(dir).Current()
	assert.False(t, ok)
}

func TestContextSettersKeepFileAndMemoryTogether(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	ctx := NewContext(s)

	_, ok := ctx.User()
	assert.False(t, ok)

	acc := store.Account{Email: "a@x.com", Name: "Ayşe"}
	assert.NoError(t, ctx.SetUser(&acc))

	got, ok := ctx.User()
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", got.Email)

	// A restart reconstructs the same user from the file.
	restarted := NewContext(NewStore(dir))
	got, ok = restarted.User()
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", got.Email)

	// Profile updates go through the setter so nothing goes stale.
	acc.Name = "Ayşe Kaya"
	assert.NoError(t, ctx.SetUser(&acc))
	got, _ = ctx.User()
	assert.Equal(t, "Ayşe Kaya", got.Name)
	fromFile, _ := s.Current()
	assert.Equal(t, "Ayşe Kaya", fromFile.Name)

	assert.NoError(t, ctx.Logout())
	_, ok = ctx.User()
	assert.False(t, ok)
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestContextUserReturnsCopy(t *testing.T) {
	ctx := NewContext(NewStore(t.TempDir()))
	assert.NoError(t, ctx.SetUser(&store.Account{Email: "a@x.com", Name: "Ayşe"}))

	got, _ := ctx.User()
	got.Name = "mutated"

	again, _ := ctx.User()
	assert.Equal(t, "Ayşe", again.Name)
}
