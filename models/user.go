package models

import "fmt"

// Placeholder images used when a signup does not provide its own.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User represents a registered account. The password is stored only as a
// hash, never in plaintext.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"uniqueIndex;not null" json:"username"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	PWHash         string `gorm:"not null" json:"-"`
	ImageURL       string `json:"image_url"`
	HeaderImageURL string `json:"header_image_url"`
	Bio            string `json:"bio"`
	Location       string `json:"location"`

	Messages  []Message `gorm:"foreignKey:UserID" json:"-"`
	Followers []Follows `gorm:"foreignKey:FolloweeID" json:"-"`
	Following []Follows `gorm:"foreignKey:FollowerID" json:"-"`
}

// String returns the diagnostic form of a user, e.g.
// "<User #3: testuser, test@test.com>".
func (u User) String() string {
	return fmt.Sprintf("<User #%d: %s, %s>", u.ID, u.Username, u.Email)
}
