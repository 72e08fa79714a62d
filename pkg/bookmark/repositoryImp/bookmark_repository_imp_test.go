package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"herbaverse/entities"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Bookmark{}, &entities.Like{}))
	return db
}

func TestToggleBookmark(t *testing.T) {
	repo := New(testDB(t))

	added, err := repo.ToggleBookmark("u1", "aloe-vera")
	require.NoError(t, err)
	assert.True(t, added)

	rows, err := repo.ListBookmarks("u1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	added, err = repo.ToggleBookmark("u1", "aloe-vera")
	require.NoError(t, err)
	assert.False(t, added)

	rows, err = repo.ListBookmarks("u1")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLikesCountAcrossUsers(t *testing.T) {
	repo := New(testDB(t))

	_, err := repo.ToggleLike("u1", "neem")
	require.NoError(t, err)
	_, err = repo.ToggleLike("u2", "neem")
	require.NoError(t, err)
	_, err = repo.ToggleLike("u3", "turmeric")
	require.NoError(t, err)

	n, err := repo.CountLikes("neem")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	// unliking drops the count
	_, err = repo.ToggleLike("u2", "neem")
	require.NoError(t, err)
	n, err = repo.CountLikes("neem")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
