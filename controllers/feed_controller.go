package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chirpnet/chirpnet/repositories"
	"github.com/chirpnet/chirpnet/utils"
)

// feedLimit caps the feed at the most recent posts; there is no pagination
// beyond it.
const feedLimit = 20

// FeedController assembles the personalized feed: a read-only composition
// of the follow graph and the content store.
type FeedController struct {
	posts   repositories.PostRepository
	follows repositories.FollowRepository
}

// NewFeedController creates a FeedController.
func NewFeedController(posts repositories.PostRepository, follows repositories.FollowRepository) *FeedController {
	return &FeedController{posts: posts, follows: follows}
}

// Get returns the newest posts from the users the caller follows, newest
// first, capped at feedLimit. A user following nobody gets an empty list.
func (f *FeedController) Get(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	followedIDs, err := f.follows.ListFollowingIDs(userID)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}

	posts, err := f.posts.FeedForAuthors(followedIDs, feedLimit)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}

	postIDs := make([]uint, 0, len(posts))
	for i := range posts {
		postIDs = append(postIDs, posts[i].ID)
	}
	likes, comments, err := f.posts.CountsForPosts(postIDs)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}

	items := make([]gin.H, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		items = append(items, postView(p, likes[p.ID], comments[p.ID]))
	}
	utils.Success(ctx, gin.H{"items": items})
}
