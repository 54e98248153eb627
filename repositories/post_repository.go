package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/chirpnet/chirpnet/apperr"
	"github.com/chirpnet/chirpnet/models"
)

// GormPostRepository implements PostRepository on gorm.
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a GormPostRepository.
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) Create(post *models.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return apperr.Internal(50020, "failed to create post", err)
	}
	return nil
}

func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(40401, "post not found")
		}
		return nil, apperr.Internal(50021, "failed to load post", err)
	}
	return &post, nil
}

func (r *GormPostRepository) Update(post *models.Post) error {
	if err := r.db.Save(post).Error; err != nil {
		return apperr.Internal(50022, "failed to update post", err)
	}
	return nil
}

// Delete removes the post and its dependent likes and comments atomically.
func (r *GormPostRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(40402, "post not found")
		}
		return apperr.Internal(50023, "failed to delete post", err)
	}
	return nil
}

func (r *GormPostRepository) Counts(postID uint) (int64, int64, error) {
	var likes, comments int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&likes).Error; err != nil {
		return 0, 0, apperr.Internal(50024, "failed to count likes", err)
	}
	if err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&comments).Error; err != nil {
		return 0, 0, apperr.Internal(50025, "failed to count comments", err)
	}
	return likes, comments, nil
}

type postCount struct {
	PostID uint
	Total  int64
}

func (r *GormPostRepository) CountsForPosts(postIDs []uint) (map[uint]int64, map[uint]int64, error) {
	likes := make(map[uint]int64, len(postIDs))
	comments := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return likes, comments, nil
	}

	var rows []postCount
	err := r.db.Model(&models.Like{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, nil, apperr.Internal(50026, "failed to count likes", err)
	}
	for _, row := range rows {
		likes[row.PostID] = row.Total
	}

	rows = rows[:0]
	err = r.db.Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, nil, apperr.Internal(50027, "failed to count comments", err)
	}
	for _, row := range rows {
		comments[row.PostID] = row.Total
	}
	return likes, comments, nil
}

func (r *GormPostRepository) FeedForAuthors(authorIDs []uint, limit int) ([]models.Post, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, nil
	}
	var posts []models.Post
	err := r.db.Preload("User").
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, apperr.Internal(50028, "failed to load feed", err)
	}
	return posts, nil
}
