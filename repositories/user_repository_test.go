package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirpnet/chirpnet/apperr"
	"github.com/chirpnet/chirpnet/models"
)

func TestUserCreateDuplicateUsername(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormUserRepository(db)

	first := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, repo.Create(first))

	dup := &models.User{Username: "alice", Email: "other@example.com", PasswordHash: "x"}
	err := repo.Create(dup)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}))

	err := repo.Create(&models.User{Username: "alice2", Email: "alice@example.com", PasswordHash: "x"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestUserGetByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormUserRepository(db)

	_, err := repo.GetByID(999)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUserSearchCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormUserRepository(db)

	seedUser(t, db, "Alice")
	seedUser(t, db, "bob")
	seedUser(t, db, "malice")

	byName, err := repo.Search("ALI")
	require.NoError(t, err)
	require.Len(t, byName, 2)

	// matches the email domain of every seeded user
	byEmail, err := repo.Search("Example.COM")
	require.NoError(t, err)
	assert.Len(t, byEmail, 3)

	none, err := repo.Search("zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserProfileCounts(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormUserRepository(db)
	follows := NewGormFollowRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	seedPost(t, db, alice.ID, "one")
	seedPost(t, db, alice.ID, "two")
	require.NoError(t, follows.Create(&models.Follow{FollowerID: bob.ID, FollowedID: alice.ID}))
	require.NoError(t, follows.Create(&models.Follow{FollowerID: carol.ID, FollowedID: alice.ID}))
	require.NoError(t, follows.Create(&models.Follow{FollowerID: alice.ID, FollowedID: bob.ID}))

	followers, following, posts, err := repo.ProfileCounts(alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, followers)
	assert.EqualValues(t, 1, following)
	assert.EqualValues(t, 2, posts)
}
