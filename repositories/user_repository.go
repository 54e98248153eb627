package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/chirpnet/chirpnet/apperr"
	"github.com/chirpnet/chirpnet/models"
)

// GormUserRepository implements UserRepository on gorm.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a GormUserRepository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict(40901, "username or email already exists")
		}
		return apperr.Internal(50001, "failed to create user", err)
	}
	return nil
}

func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(40410, "user not found")
		}
		return nil, apperr.Internal(50002, "failed to load user", err)
	}
	return &user, nil
}

func (r *GormUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(40411, "user not found")
		}
		return nil, apperr.Internal(50003, "failed to load user", err)
	}
	return &user, nil
}

func (r *GormUserRepository) Update(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict(40902, "username or email already exists")
		}
		return apperr.Internal(50004, "failed to update user", err)
	}
	return nil
}

func (r *GormUserRepository) Search(query string) ([]models.User, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var users []models.User
	err := r.db.
		Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern).
		Order("username ASC").
		Find(&users).Error
	if err != nil {
		return nil, apperr.Internal(50005, "failed to search users", err)
	}
	return users, nil
}

func (r *GormUserRepository) ProfileCounts(id uint) (int64, int64, int64, error) {
	var followers, following, posts int64
	if err := r.db.Model(&models.Follow{}).Where("followed_id = ?", id).Count(&followers).Error; err != nil {
		return 0, 0, 0, apperr.Internal(50006, "failed to count followers", err)
	}
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ?", id).Count(&following).Error; err != nil {
		return 0, 0, 0, apperr.Internal(50007, "failed to count following", err)
	}
	if err := r.db.Model(&models.Post{}).Where("user_id = ?", id).Count(&posts).Error; err != nil {
		return 0, 0, 0, apperr.Internal(50008, "failed to count posts", err)
	}
	return followers, following, posts, nil
}
