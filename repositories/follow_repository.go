package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/chirpnet/chirpnet/apperr"
	"github.com/chirpnet/chirpnet/models"
)

// GormFollowRepository implements FollowRepository on gorm.
type GormFollowRepository struct {
	db *gorm.DB
}

// NewGormFollowRepository creates a GormFollowRepository.
func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

// Create rejects self-follow up front; duplicate edges are rejected by the
// (follower_id, followed_id) unique index at the insert.
func (r *GormFollowRepository) Create(follow *models.Follow) error {
	if follow.FollowerID == follow.FollowedID {
		return apperr.Validation(40010, "cannot follow yourself")
	}
	if err := r.db.Create(follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict(40904, "already following")
		}
		return apperr.Internal(50032, "failed to create follow", err)
	}
	return nil
}

func (r *GormFollowRepository) Delete(followerID, followedID uint) error {
	res := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).Delete(&models.Follow{})
	if res.Error != nil {
		return apperr.Internal(50033, "failed to delete follow", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(40421, "not following")
	}
	return nil
}

func (r *GormFollowRepository) ListFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followed_id", &ids).Error
	if err != nil {
		return nil, apperr.Internal(50034, "failed to list following", err)
	}
	return ids, nil
}

func (r *GormFollowRepository) CountFollowers(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("followed_id = ?", userID).Count(&count).Error; err != nil {
		return 0, apperr.Internal(50035, "failed to count followers", err)
	}
	return count, nil
}

func (r *GormFollowRepository) CountFollowing(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error; err != nil {
		return 0, apperr.Internal(50036, "failed to count following", err)
	}
	return count, nil
}
