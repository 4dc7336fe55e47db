package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahparag-spring2021/webapp/internal/config"
	"github.com/shahparag-spring2021/webapp/internal/logger"
	"github.com/shahparag-spring2021/webapp/models"
)

// runRepositoryContract exercises every repository against a migrated
// database.
func runRepositoryContract(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	users := NewUserRepository(db, log)
	books := NewBookRepository(db, log)
	images := NewImageRepository(db, log)

	now := time.Now().UTC().Truncate(time.Second)

	user := testUser()
	user.AccountCreated, user.AccountUpdated = now, now
	_, err := users.CreateUser(ctx, user)
	require.NoError(t, err)

	duplicate := user
	duplicate.ID = "another-id"
	_, err = users.CreateUser(ctx, duplicate)
	require.ErrorIs(t, err, ErrUsernameAlreadyExists)

	found, err := users.FindUserByUsername(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.True(t, now.Equal(found.AccountCreated))

	found.FirstName = "Janet"
	found.AccountUpdated = now.Add(time.Minute)
	_, err = users.UpdateUser(ctx, found)
	require.NoError(t, err)

	found, err = users.FindUserByUsername(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, "Janet", found.FirstName)
	assert.True(t, now.Equal(found.AccountCreated))

	_, err = users.FindUserByUsername(ctx, "nobody@example.com")
	require.ErrorIs(t, err, ErrUserNotFound)

	first := testBook("book-a", now)
	second := testBook("book-b", now.Add(time.Second))
	_, err = books.CreateBook(ctx, second)
	require.NoError(t, err)
	_, err = books.CreateBook(ctx, first)
	require.NoError(t, err)

	listed, err := books.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "book-a", listed[0].ID)
	assert.Equal(t, "book-b", listed[1].ID)

	image := testImage("file-1")
	image.BookID = "book-a"
	image.S3ObjectName = models.ImageObjectName("book-a", "file-1", image.FileName)
	_, err = images.CreateImage(ctx, image)
	require.NoError(t, err)

	byBook, err := images.ListImagesByBook(ctx, "book-a")
	require.NoError(t, err)
	require.Len(t, byBook, 1)
	assert.Equal(t, "file-1", byBook[0].FileID)

	names, err := images.ListObjectNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"book-a/file-1/cover.png"}, names)

	require.NoError(t, books.DeleteBook(ctx, "book-a"))
	_, err = books.FindBookByID(ctx, "book-a")
	require.ErrorIs(t, err, ErrBookNotFound)
	_, err = images.FindImageByID(ctx, "file-1")
	require.ErrorIs(t, err, ErrImageNotFound)
	require.ErrorIs(t, books.DeleteBook(ctx, "book-a"), ErrBookNotFound)
}

func TestRepositories_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.DB{DSN: "file:" + filepath.Join(t.TempDir(), "webapp.db")}

	db, err := NewDB(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Migrate())
	runRepositoryContract(t, db)
}

func TestNewDB_UnsupportedDSN(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{DSN: "mysql://root@localhost/db"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}
