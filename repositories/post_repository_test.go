package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirpnet/chirpnet/apperr"
	"github.com/chirpnet/chirpnet/models"
)

func TestPostDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	posts := NewGormPostRepository(db)
	comments := NewGormCommentRepository(db)
	likes := NewGormLikeRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice.ID, "doomed")

	require.NoError(t, likes.Create(&models.Like{UserID: alice.ID, PostID: post.ID}))
	require.NoError(t, likes.Create(&models.Like{UserID: bob.ID, PostID: post.ID}))
	require.NoError(t, comments.Create(&models.Comment{UserID: bob.ID, PostID: post.ID, Content: "nice"}))

	require.NoError(t, posts.Delete(post.ID))

	_, err := posts.GetByID(post.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	var likeCount, commentCount int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likeCount).Error)
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&commentCount).Error)
	assert.Zero(t, likeCount)
	assert.Zero(t, commentCount)
}

func TestPostDeleteUnknownID(t *testing.T) {
	db := openTestDB(t)
	posts := NewGormPostRepository(db)

	err := posts.Delete(12345)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestPostCounts(t *testing.T) {
	db := openTestDB(t)
	posts := NewGormPostRepository(db)
	comments := NewGormCommentRepository(db)
	likes := NewGormLikeRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice.ID, "counted")

	require.NoError(t, likes.Create(&models.Like{UserID: bob.ID, PostID: post.ID}))
	require.NoError(t, comments.Create(&models.Comment{UserID: bob.ID, PostID: post.ID, Content: "one"}))
	require.NoError(t, comments.Create(&models.Comment{UserID: alice.ID, PostID: post.ID, Content: "two"}))

	likeCount, commentCount, err := posts.Counts(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, likeCount)
	assert.EqualValues(t, 2, commentCount)
}

func TestCommentsOrderedAscending(t *testing.T) {
	db := openTestDB(t)
	comments := NewGormCommentRepository(db)

	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice.ID, "threaded")

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"first", "second", "third"} {
		c := &models.Comment{
			UserID:    alice.ID,
			PostID:    post.ID,
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, comments.Create(c))
	}

	got, err := comments.ListByPost(post.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Content)
	assert.Equal(t, "second", got[1].Content)
	assert.Equal(t, "third", got[2].Content)
}

func TestFeedForAuthorsOrderAndLimit(t *testing.T) {
	db := openTestDB(t)
	posts := NewGormPostRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 25; i++ {
		author := alice.ID
		if i%2 == 1 {
			author = bob.ID
		}
		p := &models.Post{
			UserID:    author,
			Title:     fmt.Sprintf("post-%02d", i),
			Content:   "body",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(p).Error)
	}
	// carol's post must never show up in a feed over {alice, bob}
	seedPost(t, db, carol.ID, "outsider")

	feed, err := posts.FeedForAuthors([]uint{alice.ID, bob.ID}, 20)
	require.NoError(t, err)
	require.Len(t, feed, 20)

	assert.Equal(t, "post-24", feed[0].Title)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].CreatedAt.After(feed[i-1].CreatedAt),
			"feed must be ordered newest first")
	}
	for _, p := range feed {
		assert.Contains(t, []uint{alice.ID, bob.ID}, p.UserID)
	}
}

func TestFeedForNoAuthors(t *testing.T) {
	db := openTestDB(t)
	posts := NewGormPostRepository(db)

	feed, err := posts.FeedForAuthors(nil, 20)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestCountsForPosts(t *testing.T) {
	db := openTestDB(t)
	posts := NewGormPostRepository(db)
	comments := NewGormCommentRepository(db)
	likes := NewGormLikeRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	p1 := seedPost(t, db, alice.ID, "p1")
	p2 := seedPost(t, db, bob.ID, "p2")

	require.NoError(t, likes.Create(&models.Like{UserID: bob.ID, PostID: p1.ID}))
	require.NoError(t, likes.Create(&models.Like{UserID: alice.ID, PostID: p1.ID}))
	require.NoError(t, comments.Create(&models.Comment{UserID: alice.ID, PostID: p2.ID, Content: "hey"}))

	likeCounts, commentCounts, err := posts.CountsForPosts([]uint{p1.ID, p2.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, likeCounts[p1.ID])
	assert.EqualValues(t, 0, likeCounts[p2.ID])
	assert.EqualValues(t, 0, commentCounts[p1.ID])
	assert.EqualValues(t, 1, commentCounts[p2.ID])
}
