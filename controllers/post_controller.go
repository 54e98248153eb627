package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chirpnet/chirpnet/authz"
	"github.com/chirpnet/chirpnet/models"
	"github.com/chirpnet/chirpnet/repositories"
	"github.com/chirpnet/chirpnet/utils"
)

// PostController manages posts, likes and comments.
type PostController struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	likes    repositories.LikeRepository
}

// NewPostController creates a PostController.
func NewPostController(posts repositories.PostRepository, comments repositories.CommentRepository, likes repositories.LikeRepository) *PostController {
	return &PostController{posts: posts, comments: comments, likes: likes}
}

// Create adds a new post authored by the authenticated user.
func (p *PostController) Create(ctx *gin.Context) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid request payload")
		return
	}

	title := utils.Sanitize(strings.TrimSpace(req.Title))
	content := utils.Sanitize(strings.TrimSpace(req.Content))
	if title == "" || content == "" {
		utils.Error(ctx, http.StatusBadRequest, 40031, "title and content required")
		return
	}

	actorID, _ := getUserID(ctx)
	if d := authz.Authorize(actorID, actorID, authz.OpCreatePost); !d.Allowed {
		utils.Error(ctx, http.StatusForbidden, 40304, d.Reason)
		return
	}

	post := models.Post{
		UserID:  actorID,
		Title:   title,
		Content: content,
	}
	if err := p.posts.Create(&post); err != nil {
		utils.Fail(ctx, err)
		return
	}

	utils.Created(ctx, gin.H{"post_id": post.ID})
}

// Get returns a single post with its derived like and comment counts.
func (p *PostController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40032, "invalid post id")
		return
	}

	post, err := p.posts.GetByID(id)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}

	likes, comments, err := p.posts.Counts(id)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}

	utils.Success(ctx, postView(post, likes, comments))
}

// Update lets the author change title and/or content. Absent fields keep
// their current value.
func (p *PostController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40033, "invalid post id")
		return
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40034, "invalid request payload")
		return
	}

	post, err := p.posts.GetByID(id)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}

	actorID, _ := getUserID(ctx)
	if d := authz.Authorize(actorID, post.UserID, authz.OpUpdatePost); !d.Allowed {
		utils.Error(ctx, http.StatusForbidden, 40305, d.Reason)
		return
	}

	if req.Title != nil {
		title := utils.Sanitize(strings.TrimSpace(*req.Title))
		if title == "" {
			utils.Error(ctx, http.StatusBadRequest, 40035, "title cannot be empty")
			return
		}
		post.Title = title
	}
	if req.Content != nil {
		content := utils.Sanitize(strings.TrimSpace(*req.Content))
		if content == "" {
			utils.Error(ctx, http.StatusBadRequest, 40036, "content cannot be empty")
			return
		}
		post.Content = content
	}

	if err := p.posts.Update(post); err != nil {
		utils.Fail(ctx, err)
		return
	}

	utils.Success(ctx, gin.H{"message": "post updated"})
}

// Delete removes a post together with its likes and comments.
func (p *PostController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40037, "invalid post id")
		return
	}

	post, err := p.posts.GetByID(id)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}

	actorID, _ := getUserID(ctx)
	if d := authz.Authorize(actorID, post.UserID, authz.OpDeletePost); !d.Allowed {
		utils.Error(ctx, http.StatusForbidden, 40306, d.Reason)
		return
	}

	if err := p.posts.Delete(id); err != nil {
		utils.Fail(ctx, err)
		return
	}

	utils.Success(ctx, gin.H{"message": "post deleted"})
}

// Like records the authenticated user's like on a post.
func (p *PostController) Like(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40038, "invalid post id")
		return
	}
	actorID, _ := getUserID(ctx)

	if d := authz.Authorize(actorID, actorID, authz.OpLike); !d.Allowed {
		utils.Error(ctx, http.StatusForbidden, 40307, d.Reason)
		return
	}

	// A like must reference an existing post.
	if _, err := p.posts.GetByID(id); err != nil {
		utils.Fail(ctx, err)
		return
	}

	if err := p.likes.Create(&models.Like{UserID: actorID, PostID: id}); err != nil {
		failEdge(ctx, err)
		return
	}

	utils.Success(ctx, gin.H{"message": "post liked"})
}

// Unlike removes the authenticated user's like from a post.
func (p *PostController) Unlike(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40039, "invalid post id")
		return
	}
	actorID, _ := getUserID(ctx)

	if d := authz.Authorize(actorID, actorID, authz.OpUnlike); !d.Allowed {
		utils.Error(ctx, http.StatusForbidden, 40308, d.Reason)
		return
	}

	if err := p.likes.Delete(actorID, id); err != nil {
		failEdge(ctx, err)
		return
	}

	utils.Success(ctx, gin.H{"message": "post unliked"})
}

// CreateComment adds a comment to a post.
func (p *PostController) CreateComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid post id")
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40041, "invalid request payload")
		return
	}

	content := utils.Sanitize(strings.TrimSpace(req.Content))
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, 40042, "content required")
		return
	}

	actorID, _ := getUserID(ctx)
	if d := authz.Authorize(actorID, actorID, authz.OpCreateComment); !d.Allowed {
		utils.Error(ctx, http.StatusForbidden, 40309, d.Reason)
		return
	}

	// The comment must reference an existing post.
	if _, err := p.posts.GetByID(id); err != nil {
		utils.Fail(ctx, err)
		return
	}

	comment := models.Comment{
		PostID:  id,
		UserID:  actorID,
		Content: content,
	}
	if err := p.comments.Create(&comment); err != nil {
		utils.Fail(ctx, err)
		return
	}

	utils.Created(ctx, gin.H{"comment_id": comment.ID})
}

// ListComments returns a post's comments, oldest first.
func (p *PostController) ListComments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40043, "invalid post id")
		return
	}

	comments, err := p.comments.ListByPost(id)
	if err != nil {
		utils.Fail(ctx, err)
		return
	}

	items := make([]gin.H, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		items = append(items, gin.H{
			"id":         c.ID,
			"author":     c.User.Username,
			"content":    c.Content,
			"created_at": c.CreatedAt,
		})
	}
	utils.Success(ctx, gin.H{"items": items})
}

func postView(post *models.Post, likes, comments int64) gin.H {
	return gin.H{
		"id":         post.ID,
		"author":     post.User.Username,
		"title":      post.Title,
		"content":    post.Content,
		"created_at": post.CreatedAt,
		"likes":      likes,
		"comments":   comments,
	}
}
