package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"warbler/auth"
	"warbler/models"
)

type userRepository struct {
	db     *gorm.DB
	hasher auth.Hasher
}

func NewUserRepository(db *gorm.DB, hasher auth.Hasher) UserRepository {
	return &userRepository{db: db, hasher: hasher}
}

func (r *userRepository) Signup(username, email, password, imageURL string) (*models.User, error) {
	if username == "" {
		return nil, NewValidationError("username", "You have to enter a username")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, NewValidationError("email", "You have to enter a valid email address")
	}
	if password == "" {
		return nil, NewValidationError("password", "You have to enter a password")
	}

	taken, err := r.taken("username", username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, NewValidationError("username", "The username is already taken")
	}
	taken, err = r.taken("email", email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, NewValidationError("email", "The email is already taken")
	}

	digest, err := r.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := models.User{
		Username:       username,
		Email:          email,
		PWHash:         digest,
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}
	if err := r.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			// lost a race against a concurrent signup
			return nil, NewValidationError("username", "The username or email is already taken")
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Authenticate(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, NewValidationError("credentials", "username and password are required")
	}

	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !r.hasher.Verify(password, user.PWHash) {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) ByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("user", id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("user", 0)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Search(q string, limit int) ([]models.User, error) {
	tx := r.db.Order("id")
	if q != "" {
		tx = tx.Where("username LIKE ?", "%"+q+"%")
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var users []models.User
	err := tx.Find(&users).Error
	return users, err
}

func (r *userRepository) UpdateProfile(userID uint, fields ProfileUpdate, confirmPassword string) (*models.User, error) {
	user, err := r.ByID(userID)
	if err != nil {
		return nil, err
	}
	if !r.hasher.Verify(confirmPassword, user.PWHash) {
		return nil, NewAuthorizationError(userID, "profile", "update")
	}

	if fields.Username != nil && *fields.Username != user.Username {
		if *fields.Username == "" {
			return nil, NewValidationError("username", "You have to enter a username")
		}
		taken, err := r.taken("username", *fields.Username, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, NewValidationError("username", "The username is already taken")
		}
		user.Username = *fields.Username
	}
	if fields.Email != nil && *fields.Email != user.Email {
		if !strings.Contains(*fields.Email, "@") {
			return nil, NewValidationError("email", "You have to enter a valid email address")
		}
		taken, err := r.taken("email", *fields.Email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, NewValidationError("email", "The email is already taken")
		}
		user.Email = *fields.Email
	}
	if fields.ImageURL != nil {
		user.ImageURL = *fields.ImageURL
	}
	if fields.HeaderImageURL != nil {
		user.HeaderImageURL = *fields.HeaderImageURL
	}
	if fields.Bio != nil {
		user.Bio = *fields.Bio
	}
	if fields.Location != nil {
		user.Location = *fields.Location
	}

	if err := r.db.Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, NewValidationError("username", "The username or email is already taken")
		}
		return nil, err
	}
	return user, nil
}

// Delete cascades: the user's messages and the likes on them, follow edges
// in both directions, the user's own likes, and finally the user row. All
// or nothing.
func (r *userRepository) Delete(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFoundError("user", userID)
			}
			return err
		}

		ownMessages := tx.Model(&models.Message{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("message_id IN (?)", ownMessages).Delete(&models.Likes{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followee_id = ?", userID, userID).Delete(&models.Follows{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Likes{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}

// taken reports whether another user already holds value in column.
func (r *userRepository) taken(column, value string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where(column+" = ? AND id <> ?", value, excludeID).
		Count(&count).Error
	return count > 0, err
}
