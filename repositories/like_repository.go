package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/chirpnet/chirpnet/apperr"
	"github.com/chirpnet/chirpnet/models"
)

// GormLikeRepository implements LikeRepository on gorm.
type GormLikeRepository struct {
	db *gorm.DB
}

// NewGormLikeRepository creates a GormLikeRepository.
func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

// Create relies on the (user_id, post_id) unique index to reject duplicate
// likes; there is no prior existence read to race against.
func (r *GormLikeRepository) Create(like *models.Like) error {
	if err := r.db.Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict(40903, "already liked")
		}
		return apperr.Internal(50030, "failed to create like", err)
	}
	return nil
}

func (r *GormLikeRepository) Delete(userID, postID uint) error {
	res := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
	if res.Error != nil {
		return apperr.Internal(50031, "failed to delete like", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(40420, "not liked yet")
	}
	return nil
}
