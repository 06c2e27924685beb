package model_test

import (
	"path/filepath"
	"testing"
	"time"

	"miniblog/pkg/model"
	"miniblog/pkg/model/xgorm"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         xgorm.New(xgorm.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, age int64) *model.User {
	t.Helper()

	u := &model.User{
		UserName: name,
		Email:    email,
		Password: "secret",
		Age:      age,
		Gender:   "other",
		Phone:    "555-0101",
	}
	require.NoError(t, model.CreateUser(db, u))
	require.NotZero(t, u.ID)
	return u
}

func TestUniqueEmail(t *testing.T) {
	db := openDB(t)

	seedUser(t, db, "alice", "alice@example.com", 25)

	dup := &model.User{
		UserName: "other alice",
		Email:    "alice@example.com",
		Password: "secret",
		Age:      30,
		Gender:   "female",
		Phone:    "555-0102",
	}
	err := model.CreateUser(db, dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	taken, err := model.EmailTaken(db, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = model.EmailTaken(db, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserByIDNotFound(t *testing.T) {
	db := openDB(t)

	_, err := model.UserByID(db, 12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSearchUsers(t *testing.T) {
	db := openDB(t)

	seedUser(t, db, "Alice", "alice@example.com", 25)
	seedUser(t, db, "ALBERT", "albert@example.com", 40)
	seedUser(t, db, "Balrog", "balrog@example.com", 30)

	// case-insensitive prefix
	users, err := model.SearchUsers(db, "Al", nil)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].UserName)
	assert.Equal(t, "ALBERT", users[1].UserName)

	// strict upper age bound
	maxAge := int64(30)
	users, err = model.SearchUsers(db, "Al", &maxAge)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].UserName)

	// empty prefix and unset bound match everything
	users, err = model.SearchUsers(db, "", nil)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestUsersByAgeRange(t *testing.T) {
	db := openDB(t)

	seedUser(t, db, "a", "a@example.com", 19)
	seedUser(t, db, "b", "b@example.com", 20)
	seedUser(t, db, "c", "c@example.com", 30)
	seedUser(t, db, "d", "d@example.com", 31)

	lo, hi := int64(20), int64(30)
	users, err := model.UsersByAgeRange(db, &lo, &hi)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(20), users[0].Age)
	assert.Equal(t, int64(30), users[1].Age)

	// unset bounds
	users, err = model.UsersByAgeRange(db, nil, nil)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	users, err = model.UsersByAgeRange(db, &lo, nil)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestCreatePostDefaultsDate(t *testing.T) {
	db := openDB(t)
	u := seedUser(t, db, "alice", "alice@example.com", 25)

	before := time.Now()
	p := &model.Post{Title: "t", Content: "c", UserID: u.ID}
	require.NoError(t, model.CreatePost(db, p))
	assert.False(t, p.Date.IsZero())
	assert.False(t, p.Date.Before(before))

	// an explicit date is kept
	explicit := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p2 := &model.Post{Title: "t2", Content: "c2", UserID: u.ID, Date: explicit}
	require.NoError(t, model.CreatePost(db, p2))
	got, err := model.PostByID(db, p2.ID)
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(explicit))
}

func TestPostsByDateDesc(t *testing.T) {
	db := openDB(t)
	u := seedUser(t, db, "alice", "alice@example.com", 25)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, offset := range []int{2, 0, 1} {
		p := &model.Post{
			Title:   "t",
			Content: "c",
			UserID:  u.ID,
			Date:    base.AddDate(0, 0, offset),
		}
		require.NoError(t, model.CreatePost(db, p))
	}

	posts, err := model.PostsByDateDesc(db)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i-1].Date.Before(posts[i].Date))
	}
}

func TestPostsWithUsers(t *testing.T) {
	db := openDB(t)
	u := seedUser(t, db, "alice", "alice@example.com", 25)
	require.NoError(t, model.CreatePost(db, &model.Post{Title: "t", Content: "c", UserID: u.ID}))

	posts, err := model.PostsWithUsers(db)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.NotNil(t, posts[0].User)
	assert.Equal(t, "alice@example.com", posts[0].User.Email)

	// the plain listing does not expand the owner
	plain, err := model.AllPosts(db)
	require.NoError(t, err)
	require.Len(t, plain, 1)
	assert.Nil(t, plain[0].User)
}

func TestUserWithPosts(t *testing.T) {
	db := openDB(t)
	u := seedUser(t, db, "alice", "alice@example.com", 25)
	other := seedUser(t, db, "bob", "bob@example.com", 30)

	require.NoError(t, model.CreatePost(db, &model.Post{Title: "a1", Content: "c", UserID: u.ID}))
	require.NoError(t, model.CreatePost(db, &model.Post{Title: "a2", Content: "c", UserID: u.ID}))
	require.NoError(t, model.CreatePost(db, &model.Post{Title: "b1", Content: "c", UserID: other.ID}))

	got, err := model.UserWithPosts(db, u.ID)
	require.NoError(t, err)
	require.Len(t, got.Posts, 2)
	for _, p := range got.Posts {
		assert.Equal(t, u.ID, p.UserID)
	}
}
