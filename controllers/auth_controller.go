package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chirpnet/chirpnet/apperr"
	"github.com/chirpnet/chirpnet/middleware"
	"github.com/chirpnet/chirpnet/models"
	"github.com/chirpnet/chirpnet/repositories"
	"github.com/chirpnet/chirpnet/utils"
)

// AuthController handles registration, login and session endpoints.
type AuthController struct {
	users repositories.UserRepository
}

// NewAuthController creates an AuthController.
func NewAuthController(users repositories.UserRepository) *AuthController {
	return &AuthController{users: users}
}

// Register creates a local account. Username and email uniqueness is left
// to the storage constraint; a duplicate answers 409 regardless of which
// concurrent request wins the insert.
func (a *AuthController) Register(ctx *gin.Context) {
	var req struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Bio       string `json:"bio"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if len(req.Username) < 3 {
		utils.Error(ctx, http.StatusBadRequest, 40002, "username must be at least 3 characters")
		return
	}
	if !strings.Contains(req.Email, "@") {
		utils.Error(ctx, http.StatusBadRequest, 40003, "valid email is required")
		return
	}
	if len(req.Password) < 6 {
		utils.Error(ctx, http.StatusBadRequest, 40004, "password must be at least 6 characters")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Fail(ctx, apperr.Internal(50010, "failed to hash password", err))
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Bio:          utils.Sanitize(strings.TrimSpace(req.Bio)),
		AvatarURL:    strings.TrimSpace(req.AvatarURL),
	}
	if err := a.users.Create(&user); err != nil {
		utils.Fail(ctx, err)
		return
	}

	utils.Created(ctx, gin.H{"user": userSummary(&user)})
}

// Login verifies credentials and issues a JWT. Unknown usernames and wrong
// passwords are deliberately indistinguishable to the caller.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40005, "invalid request payload")
		return
	}

	user, err := a.users.GetByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			utils.Error(ctx, http.StatusUnauthorized, 40107, "invalid username or password")
			return
		}
		utils.Fail(ctx, err)
		return
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.Error(ctx, http.StatusUnauthorized, 40107, "invalid username or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		utils.Fail(ctx, apperr.Internal(50011, "failed to generate token", err))
		return
	}

	utils.Success(ctx, gin.H{
		"token": token,
		"user":  userSummary(user),
	})
}

// Logout revokes the presented token until its natural expiration.
func (a *AuthController) Logout(ctx *gin.Context) {
	token := ctx.GetString(middleware.ContextTokenKey)
	if token == "" {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	claims, err := utils.ParseToken(token)
	if err != nil {
		utils.Error(ctx, http.StatusUnauthorized, 40105, "invalid token")
		return
	}

	expiresAt := time.Now().Add(time.Hour)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	utils.BlacklistToken(token, expiresAt)

	utils.Success(ctx, gin.H{"message": "logged out"})
}

// Me returns the current authenticated user.
func (a *AuthController) Me(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40108, "unauthorized")
		return
	}

	user, err := a.users.GetByID(userID)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}

	utils.Success(ctx, userSummary(user))
}
