package models

import "time"

// Likes records a user's endorsement of a message they did not author.
// The pair is unique so liking twice cannot create a second edge.
type Likes struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_pair" json:"user_id"`
	MessageID uint      `gorm:"not null;uniqueIndex:idx_likes_pair" json:"message_id"`
	CreatedAt time.Time `json:"created_at"`
}
