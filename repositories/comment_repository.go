package repositories

import (
	"gorm.io/gorm"

	"github.com/chirpnet/chirpnet/apperr"
	"github.com/chirpnet/chirpnet/models"
)

// GormCommentRepository implements CommentRepository on gorm.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return apperr.Internal(50040, "failed to create comment", err)
	}
	return nil
}

func (r *GormCommentRepository) ListByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, apperr.Internal(50041, "failed to list comments", err)
	}
	return comments, nil
}
