package models

import "time"

// Follows is a directed edge: the follower follows the followee.
// The pair is unique at the schema level so concurrent double-follows
// are rejected by the database, not just by a pre-insert check.
type Follows struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follows_pair" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follows_pair" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
