package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chirpnet/chirpnet/apperr"
	"github.com/chirpnet/chirpnet/authz"
	"github.com/chirpnet/chirpnet/models"
	"github.com/chirpnet/chirpnet/repositories"
	"github.com/chirpnet/chirpnet/utils"
)

// UserController handles profiles, search and the social graph.
type UserController struct {
	users   repositories.UserRepository
	follows repositories.FollowRepository
}

// NewUserController creates a UserController.
func NewUserController(users repositories.UserRepository, follows repositories.FollowRepository) *UserController {
	return &UserController{users: users, follows: follows}
}

// Search matches users by a case-insensitive substring of username or email.
func (u *UserController) Search(ctx *gin.Context) {
	query := strings.TrimSpace(ctx.Query("q"))
	if query == "" {
		utils.Error(ctx, http.StatusBadRequest, 40020, "query parameter \"q\" is required")
		return
	}

	users, err := u.users.Search(query)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}

	items := make([]gin.H, 0, len(users))
	for i := range users {
		items = append(items, userSummary(&users[i]))
	}
	utils.Success(ctx, gin.H{"items": items})
}

// GetProfile returns a public profile with follower/following/post counts.
func (u *UserController) GetProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40021, "invalid user id")
		return
	}

	user, err := u.users.GetByID(id)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}

	followers, following, posts, err := u.users.ProfileCounts(id)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}

	payload := userSummary(user)
	payload["followers"] = followers
	payload["following"] = following
	payload["posts"] = posts
	utils.Success(ctx, payload)
}

// UpdateProfile lets a user change their own bio and avatar. Absent fields
// keep their current value.
func (u *UserController) UpdateProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40022, "invalid user id")
		return
	}
	actorID, _ := getUserID(ctx)

	if d := authz.Authorize(actorID, id, authz.OpUpdateProfile); !d.Allowed {
		utils.Error(ctx, http.StatusForbidden, 40301, d.Reason)
		return
	}

	var req struct {
		Bio       *string `json:"bio"`
		AvatarURL *string `json:"avatar_url"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40023, "invalid request payload")
		return
	}

	user, err := u.users.GetByID(id)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}

	if req.Bio != nil {
		user.Bio = utils.Sanitize(strings.TrimSpace(*req.Bio))
	}
	if req.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*req.AvatarURL)
	}

	if err := u.users.Update(user); err != nil {
		utils.Fail(ctx, err)
		return
	}

	utils.Success(ctx, gin.H{"user": userSummary(user)})
}

// Follow creates a follow edge from the authenticated user to the target.
func (u *UserController) Follow(ctx *gin.Context) {
	targetID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40024, "invalid user id")
		return
	}
	actorID, _ := getUserID(ctx)

	if d := authz.Authorize(actorID, targetID, authz.OpFollow); !d.Allowed {
		utils.Error(ctx, http.StatusForbidden, 40302, d.Reason)
		return
	}

	// The edge must reference an existing user.
	if _, err := u.users.GetByID(targetID); err != nil {
		utils.Fail(ctx, err)
		return
	}

	err := u.follows.Create(&models.Follow{FollowerID: actorID, FollowedID: targetID})
	if err != nil {
		failEdge(ctx, err)
		return
	}

	utils.Success(ctx, gin.H{"message": "now following user"})
}

// Unfollow removes the follow edge from the authenticated user to the target.
func (u *UserController) Unfollow(ctx *gin.Context) {
	targetID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40025, "invalid user id")
		return
	}
	actorID, _ := getUserID(ctx)

	if d := authz.Authorize(actorID, targetID, authz.OpUnfollow); !d.Allowed {
		utils.Error(ctx, http.StatusForbidden, 40303, d.Reason)
		return
	}

	if err := u.follows.Delete(actorID, targetID); err != nil {
		failEdge(ctx, err)
		return
	}

	utils.Success(ctx, gin.H{"message": "unfollowed user"})
}

// failEdge maps conflict and absent-edge failures on like/follow edges to
// 400, matching the endpoint contract; everything else takes the default
// mapping.
func failEdge(ctx *gin.Context, err error) {
	if e, ok := apperr.As(err); ok {
		switch e.Kind {
		case apperr.KindConflict, apperr.KindNotFound:
			utils.Error(ctx, http.StatusBadRequest, e.Code, e.Message)
			return
		}
	}
	utils.Fail(ctx, err)
}
