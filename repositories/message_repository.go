package repositories

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"warbler/models"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Post(authorID uint, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewValidationError("text", "message text is required")
	}
	// the bound is in characters, not bytes
	if utf8.RuneCountInString(text) > models.MaxMessageLength {
		return nil, NewValidationError("text",
			fmt.Sprintf("message text must be at most %d characters", models.MaxMessageLength))
	}

	var author models.User
	if err := r.db.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("user", authorID)
		}
		return nil, err
	}

	msg := models.Message{Text: text, UserID: authorID}
	if err := r.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) ByID(id uint) (*models.Message, error) {
	var msg models.Message
	err := r.db.Preload("User").First(&msg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("message", id)
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) ByAuthor(authorID uint, limit int) ([]models.Message, error) {
	tx := r.db.Where("user_id = ?", authorID).Order("id DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var messages []models.Message
	err := tx.Find(&messages).Error
	return messages, err
}

func (r *messageRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Where("user_id = ?", authorID).Count(&count).Error
	return count, err
}

func (r *messageRepository) Recent(limit int) ([]models.Message, error) {
	tx := r.db.Preload("User").Order("id DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var messages []models.Message
	err := tx.Find(&messages).Error
	return messages, err
}

func (r *messageRepository) Timeline(userID uint, limit int) ([]models.Message, error) {
	followed := r.db.Model(&models.Follows{}).
		Select("followee_id").
		Where("follower_id = ?", userID)

	tx := r.db.Preload("User").
		Where("user_id = ? OR user_id IN (?)", userID, followed).
		Order("id DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var messages []models.Message
	err := tx.Find(&messages).Error
	return messages, err
}

// Delete removes the message and its likes; only the author may do so.
func (r *messageRepository) Delete(messageID, requesterID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var msg models.Message
		if err := tx.First(&msg, messageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("message", messageID)
			}
			return err
		}
		if msg.UserID != requesterID {
			return NewAuthorizationError(requesterID, "message", "delete")
		}

		if err := tx.Where("message_id = ?", messageID).Delete(&models.Likes{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Message{}, messageID).Error
	})
}

// Like is idempotent: liking an already-liked message is a no-op. Liking
// one's own message is rejected.
func (r *messageRepository) Like(userID, messageID uint) error {
	var msg models.Message
	if err := r.db.First(&msg, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("message", messageID)
		}
		return err
	}
	if msg.UserID == userID {
		return NewValidationError("message", "you cannot like your own message")
	}

	edge := models.Likes{UserID: userID, MessageID: messageID}
	if err := r.db.Create(&edge).Error; err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return err
	}
	return nil
}

// ToggleLike likes the message when not yet liked and unlikes it
// otherwise, returning the resulting state. Runs in one transaction so
// two concurrent toggles cannot both observe the unliked state.
func (r *messageRepository) ToggleLike(userID, messageID uint) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var msg models.Message
		if err := tx.First(&msg, messageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("message", messageID)
			}
			return err
		}
		if msg.UserID == userID {
			return NewValidationError("message", "you cannot like your own message")
		}

		res := tx.Where("user_id = ? AND message_id = ?", userID, messageID).
			Delete(&models.Likes{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}

		edge := models.Likes{UserID: userID, MessageID: messageID}
		if err := tx.Create(&edge).Error; err != nil {
			if isUniqueViolation(err) {
				// a concurrent toggle created the edge first
				liked = true
				return nil
			}
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

// Unlike removes the edge if present; removing an absent edge is a no-op.
func (r *messageRepository) Unlike(userID, messageID uint) error {
	return r.db.
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Likes{}).Error
}

func (r *messageRepository) IsLiked(userID, messageID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Likes{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error
	return count > 0, err
}

// LikedBy lists the messages userID has liked, in the order they were liked.
func (r *messageRepository) LikedBy(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("User").
		Joins("INNER JOIN likes ON likes.message_id = messages.id").
		Where("likes.user_id = ?", userID).
		Order("likes.id").
		Find(&messages).Error
	return messages, err
}
