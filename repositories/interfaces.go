// Package repositories is the storage abstraction over users, posts,
// comments, likes and follow edges. Implementations must enforce the
// uniqueness invariants at the write itself (constrained inserts), so two
// concurrent check-then-insert requests cannot both succeed.
package repositories

import "github.com/chirpnet/chirpnet/models"

// UserRepository defines data access for accounts.
type UserRepository interface {
	// Create inserts a user; a duplicate username or email fails with a
	// conflict error raised by the unique index, not by a prior read.
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	// Search matches the query case-insensitively as a substring of the
	// username or email. The empty-query rejection belongs to the HTTP
	// boundary, not here.
	Search(query string) ([]models.User, error)
	// ProfileCounts returns follower, following and post counts for a user.
	ProfileCounts(id uint) (followers, following, posts int64, err error)
}

// PostRepository defines data access for posts and their derived counts.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	Update(post *models.Post) error
	// Delete removes the post together with its likes and comments in one
	// transaction; either all rows go or none do.
	Delete(id uint) error
	// Counts returns like and comment totals for a single post.
	Counts(postID uint) (likes, comments int64, err error)
	// CountsForPosts returns like and comment totals keyed by post id.
	CountsForPosts(postIDs []uint) (likes, comments map[uint]int64, err error)
	// FeedForAuthors returns the newest posts authored by the given users,
	// newest first, capped at limit. An empty author set yields an empty
	// slice without touching the database.
	FeedForAuthors(authorIDs []uint, limit int) ([]models.Post, error)
}

// CommentRepository defines data access for comments.
type CommentRepository interface {
	Create(comment *models.Comment) error
	// ListByPost returns a post's comments ordered by creation time ascending.
	ListByPost(postID uint) ([]models.Comment, error)
}

// LikeRepository defines data access for likes.
type LikeRepository interface {
	// Create fails with a conflict error when the (user, post) pair already
	// holds a like.
	Create(like *models.Like) error
	// Delete fails with a not-found error when no like exists for the pair.
	Delete(userID, postID uint) error
}

// FollowRepository defines data access for follow edges.
type FollowRepository interface {
	// Create fails with a validation error on self-follow and a conflict
	// error when the edge already exists.
	Create(follow *models.Follow) error
	// Delete fails with a not-found error when the edge does not exist.
	Delete(followerID, followedID uint) error
	ListFollowingIDs(userID uint) ([]uint, error)
	CountFollowers(userID uint) (int64, error)
	CountFollowing(userID uint) (int64, error)
}
