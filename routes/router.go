package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chirpnet/chirpnet/config"
	"github.com/chirpnet/chirpnet/controllers"
	"github.com/chirpnet/chirpnet/middleware"
	"github.com/chirpnet/chirpnet/repositories"
	"github.com/chirpnet/chirpnet/utils"
)

// SetupRouter wires repositories, controllers and middlewares into a gin
// engine.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	if utils.Logger != nil {
		r.Use(utils.Ginzap(utils.Logger))
		r.Use(utils.RecoveryWithZap(utils.Logger))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	users := repositories.NewGormUserRepository(db)
	posts := repositories.NewGormPostRepository(db)
	comments := repositories.NewGormCommentRepository(db)
	likes := repositories.NewGormLikeRepository(db)
	follows := repositories.NewGormFollowRepository(db)

	authController := controllers.NewAuthController(users)
	userController := controllers.NewUserController(users, follows)
	postController := controllers.NewPostController(posts, comments, likes)
	feedController := controllers.NewFeedController(posts, follows)

	r.GET("/", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{
			"message": "Welcome to the chirpnet API.",
			"docs":    "See /api/auth for available endpoints.",
		})
	})
	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)

	api.GET("/users/search", userController.Search)
	api.GET("/users/:id", userController.GetProfile)
	api.PUT("/users/:id", middleware.AuthRequired(), userController.UpdateProfile)
	api.POST("/users/:id/follow", middleware.AuthRequired(), userController.Follow)
	api.POST("/users/:id/unfollow", middleware.AuthRequired(), userController.Unfollow)

	api.POST("/posts", middleware.AuthRequired(), postController.Create)
	api.GET("/posts/:id", postController.Get)
	api.PUT("/posts/:id", middleware.AuthRequired(), postController.Update)
	api.DELETE("/posts/:id", middleware.AuthRequired(), postController.Delete)
	api.POST("/posts/:id/like", middleware.AuthRequired(), postController.Like)
	api.POST("/posts/:id/unlike", middleware.AuthRequired(), postController.Unlike)
	api.POST("/posts/:id/comments", middleware.AuthRequired(), postController.CreateComment)
	api.GET("/posts/:id/comments", postController.ListComments)

	api.GET("/feed", middleware.AuthRequired(), feedController.Get)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}
