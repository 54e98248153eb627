package models

import "time"

// Like marks a user's like on a post. The composite unique index makes
// "at most one like per (user, post)" a storage invariant: a second insert
// for the same pair fails with a duplicated-key error.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
