package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"guestbook/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Message{}))
	return db
}

func TestMessageCreateAndLatest(t *testing.T) {
	repo := NewMessageRepository(newTestDB(t))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := models.Message{AuthorName: "bob", Body: "first", CreatedAt: base}
	newer := models.Message{AuthorName: "carol", Body: "second", CreatedAt: base.Add(time.Minute)}

	require.NoError(t, repo.Create(&older))
	require.NoError(t, repo.Create(&newer))
	assert.NotZero(t, older.ID)
	assert.NotZero(t, newer.ID)

	messages, err := repo.Latest()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "second", messages[0].Body, "most recent message comes first")
	assert.Equal(t, "first", messages[1].Body)
}

func TestMessageCreateSetsTimestamp(t *testing.T) {
	repo := NewMessageRepository(newTestDB(t))

	message := models.Message{AuthorName: "bob", Body: "hello"}
	require.NoError(t, repo.Create(&message))
	assert.False(t, message.CreatedAt.IsZero())
}

func TestMessageDelete(t *testing.T) {
	repo := NewMessageRepository(newTestDB(t))

	message := models.Message{AuthorName: "bob", Body: "hello"}
	require.NoError(t, repo.Create(&message))

	require.NoError(t, repo.Delete(message.ID))

	messages, err := repo.Latest()
	require.NoError(t, err)
	assert.Empty(t, messages)

	// Retry after success behaves like any other miss.
	assert.ErrorIs(t, repo.Delete(message.ID), ErrNotFound)
}

func TestMessageDeleteUnknownID(t *testing.T) {
	repo := NewMessageRepository(newTestDB(t))
	assert.ErrorIs(t, repo.Delete(9999), ErrNotFound)
}

func TestUserCreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := models.User{Username: "alice", PasswordHash: "pbkdf2:sha256:1000$salt$hash"}
	require.NoError(t, repo.Create(&user))
	assert.NotZero(t, user.ID)

	byName, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.Equal(t, "pbkdf2:sha256:1000$salt$hash", byName.PasswordHash)

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestUserFindMisses(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(&models.User{Username: "alice", PasswordHash: "h1"}))

	// The unique index rejects the second insert even though no pre-check
	// ran here; this is the constraint that closes the check-then-insert
	// race between concurrent registrations.
	err := repo.Create(&models.User{Username: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	exists, err := repo.Exists("alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists("bob")
	require.NoError(t, err)
	assert.False(t, exists)
}
