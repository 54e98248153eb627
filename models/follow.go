package models

import "time"

// Follow is a directed edge: follower receives followed's posts in their
// feed. At most one edge per (follower, followed) pair, enforced by the
// composite unique index; the no-self-follow rule is checked before insert.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follows_edge" json:"follower_id"`
	FollowedID uint      `gorm:"not null;uniqueIndex:idx_follows_edge" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}
