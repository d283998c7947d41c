package repositories

import "warbler/models"

// UserRepository is the identity store: accounts and credentials.
type UserRepository interface {
	// Signup creates a user with a hashed password. Duplicate username or
	// email, or missing fields, yield a ValidationError.
	Signup(username, email, password, imageURL string) (*models.User, error)
	// Authenticate returns the matching user, or (nil, nil) when the
	// username is unknown or the password does not verify. Bad credentials
	// are a normal negative result, not an error.
	Authenticate(username, password string) (*models.User, error)
	ByID(id uint) (*models.User, error)
	ByUsername(username string) (*models.User, error)
	Search(q string, limit int) ([]models.User, error)
	// UpdateProfile applies the changed fields after verifying
	// confirmPassword against the user's current hash.
	UpdateProfile(userID uint, fields ProfileUpdate, confirmPassword string) (*models.User, error)
	// Delete removes the user and, in the same transaction, every message,
	// follow edge and like referencing them.
	Delete(userID uint) error
}

// FollowRepository is the social graph of directed follow edges.
type FollowRepository interface {
	Follow(followerID, followeeID uint) error
	Unfollow(followerID, followeeID uint) error
	IsFollowing(followerID, followeeID uint) (bool, error)
	IsFollowedBy(userID, otherID uint) (bool, error)
	FollowersOf(userID uint) ([]models.User, error)
	FollowingOf(userID uint) ([]models.User, error)
}

// MessageRepository is the content store: messages and likes.
type MessageRepository interface {
	Post(authorID uint, text string) (*models.Message, error)
	ByID(id uint) (*models.Message, error)
	ByAuthor(authorID uint, limit int) ([]models.Message, error)
	CountByAuthor(authorID uint) (int64, error)
	Recent(limit int) ([]models.Message, error)
	// Timeline returns the user's own messages plus those of everyone they
	// follow, newest first.
	Timeline(userID uint, limit int) ([]models.Message, error)
	Delete(messageID, requesterID uint) error
	Like(userID, messageID uint) error
	Unlike(userID, messageID uint) error
	// ToggleLike flips the like edge in a single transaction and reports
	// the resulting state.
	ToggleLike(userID, messageID uint) (bool, error)
	IsLiked(userID, messageID uint) (bool, error)
	LikedBy(userID uint) ([]models.Message, error)
}

// ProfileUpdate carries the optional profile fields; nil means unchanged.
type ProfileUpdate struct {
	Username       *string
	Email          *string
	ImageURL       *string
	HeaderImageURL *string
	Bio            *string
	Location       *string
}
