package models

import (
	"fmt"
	"time"
)

// MaxMessageLength bounds the text of a single warble.
const MaxMessageLength = 140

// Message is a warble posted by a user. Only the author may delete it.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"size:140;not null" json:"text"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	Likes []Likes `gorm:"foreignKey:MessageID" json:"-"`
}

// String returns the diagnostic form of a message, e.g.
// "<Message #1 made by user #1>".
func (m Message) String() string {
	return fmt.Sprintf("<Message #%d made by user #%d>", m.ID, m.UserID)
}
