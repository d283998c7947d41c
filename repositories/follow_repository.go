package repositories

import (
	"gorm.io/gorm"

	"warbler/models"
)

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Follow(followerID, followeeID uint) error {
	if followerID == followeeID {
		return NewValidationError("followee", "you cannot follow yourself")
	}

	for _, id := range []uint{followerID, followeeID} {
		var count int64
		err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return NewNotFoundError("user", id)
		}
	}

	edge := models.Follows{FollowerID: followerID, FolloweeID: followeeID}
	if err := r.db.Create(&edge).Error; err != nil {
		if isUniqueViolation(err) {
			return NewConflictError("follow", "already following this user")
		}
		return err
	}
	return nil
}

// Unfollow removes the edge if present; removing an absent edge is a no-op.
func (r *followRepository) Unfollow(followerID, followeeID uint) error {
	return r.db.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follows{}).Error
}

func (r *followRepository) IsFollowing(followerID, followeeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follows{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) IsFollowedBy(userID, otherID uint) (bool, error) {
	return r.IsFollowing(otherID, userID)
}

// FollowersOf lists the users following userID, in the order the edges
// were created.
func (r *followRepository) FollowersOf(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("INNER JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Order("follows.id").
		Find(&users).Error
	return users, err
}

// FollowingOf lists the users that userID follows, in the order the edges
// were created.
func (r *followRepository) FollowingOf(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("INNER JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.id").
		Find(&users).Error
	return users, err
}
