package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warbler/models"
	"warbler/repositories"
)

func TestSignupThenAuthenticate(t *testing.T) {
	db := newTestDB(t)
	users := newUserRepo(t, db)

	created, err := users.Signup("signup_user", "signup_user@email.com", "password", "")
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "signup_user", created.Username)
	assert.NotEqual(t, "password", created.PWHash)
	assert.Equal(t, models.DefaultImageURL, created.ImageURL)
	assert.Equal(t, models.DefaultHeaderImageURL, created.HeaderImageURL)

	found, err := users.Authenticate("signup_user", "password")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}

func TestAuthenticateNegativeResults(t *testing.T) {
	db := newTestDB(t)
	users := newUserRepo(t, db)
	signupUser(t, users, "signup_user")

	// bad credentials are a negative result, not an error
	found, err := users.Authenticate("wrong", "password")
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = users.Authenticate("signup_user", "wrong")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSignupValidation(t *testing.T) {
	db := newTestDB(t)
	users := newUserRepo(t, db)

	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"missing username", "", "a@email.com", "password"},
		{"missing email", "someone", "", "password"},
		{"malformed email", "someone", "broken", "password"},
		{"missing password", "someone", "a@email.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := users.Signup(tc.username, tc.email, tc.password, "")
			assert.True(t, repositories.IsValidationError(err))
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := newUserRepo(t, db)

	_, err := users.Signup("signup_user", "signup_user@email.com", "password", "")
	require.NoError(t, err)

	_, err = users.Signup("failed_signup_user", "signup_user@email.com", "password", "")
	assert.True(t, repositories.IsValidationError(err))

	// exactly one matching user exists afterward
	var count int64
	require.NoError(t, db.Model(&models.User{}).
		Where("username LIKE ?", "%signup%").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSignupDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	users := newUserRepo(t, db)
	signupUser(t, users, "user1")

	_, err := users.Signup("user1", "other@email.com", "password", "")
	assert.True(t, repositories.IsValidationError(err))
}

func TestNewUserHasNoMessagesOrFollowers(t *testing.T) {
	db := newTestDB(t)
	users := newUserRepo(t, db)
	messages := repositories.NewMessageRepository(db)
	follows := repositories.NewFollowRepository(db)

	u := signupUser(t, users, "testuser")

	count, err := messages.CountByAuthor(u.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	followers, err := follows.FollowersOf(u.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)

	following, err := follows.FollowingOf(u.ID)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	users := newUserRepo(t, db)
	u := signupUser(t, users, "testuser")

	updated, err := users.UpdateProfile(u.ID, repositories.ProfileUpdate{
		Username: strptr("updateduser"),
		Email:    strptr("updated@email.com"),
		Bio:      strptr("hello"),
	}, "password")
	require.NoError(t, err)
	assert.Equal(t, "updateduser", updated.Username)
	assert.Equal(t, "updated@email.com", updated.Email)
	assert.Equal(t, "hello", updated.Bio)

	reloaded, err := users.ByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "updateduser", reloaded.Username)
}

func TestUpdateProfileWrongPassword(t *testing.T) {
	db := newTestDB(t)
	users := newUserRepo(t, db)
	u := signupUser(t, users, "testuser")

	_, err := users.UpdateProfile(u.ID, repositories.ProfileUpdate{
		Username: strptr("updateduser"),
	}, "wrong")
	assert.True(t, repositories.IsAuthorizationError(err))

	reloaded, err := users.ByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "testuser", reloaded.Username)
}

func TestUpdateProfileDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	users := newUserRepo(t, db)
	signupUser(t, users, "user1")
	u2 := signupUser(t, users, "user2")

	_, err := users.UpdateProfile(u2.ID, repositories.ProfileUpdate{
		Username: strptr("user1"),
	}, "password")
	assert.True(t, repositories.IsValidationError(err))
}

func TestDeleteUserCascades(t *testing.T) {
	db := newTestDB(t)
	users := newUserRepo(t, db)
	messages := repositories.NewMessageRepository(db)
	follows := repositories.NewFollowRepository(db)

	u1 := signupUser(t, users, "user1")
	u2 := signupUser(t, users, "user2")

	m1, err := messages.Post(u1.ID, "u1 message")
	require.NoError(t, err)
	m2, err := messages.Post(u2.ID, "u2 message")
	require.NoError(t, err)

	require.NoError(t, follows.Follow(u1.ID, u2.ID))
	require.NoError(t, follows.Follow(u2.ID, u1.ID))
	require.NoError(t, messages.Like(u1.ID, m2.ID))
	require.NoError(t, messages.Like(u2.ID, m1.ID))

	require.NoError(t, users.Delete(u1.ID))

	_, err = users.ByID(u1.ID)
	assert.True(t, repositories.IsNotFoundError(err))

	// no orphaned row may reference the deleted user
	var count int64
	require.NoError(t, db.Model(&models.Message{}).Where("user_id = ?", u1.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Follows{}).
		Where("follower_id = ? OR followee_id = ?", u1.ID, u1.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Likes{}).Where("user_id = ?", u1.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Likes{}).Where("message_id = ?", m1.ID).Count(&count).Error)
	assert.Zero(t, count)

	// user2's own data is untouched
	remaining, err := messages.CountByAuthor(u2.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, remaining)
}

func TestDeleteUnknownUser(t *testing.T) {
	db := newTestDB(t)
	users := newUserRepo(t, db)

	err := users.Delete(42)
	assert.True(t, repositories.IsNotFoundError(err))
}

func TestByUsername(t *testing.T) {
	db := newTestDB(t)
	users := newUserRepo(t, db)
	u := signupUser(t, users, "testuser")

	found, err := users.ByUsername("testuser")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = users.ByUsername("missing")
	assert.True(t, repositories.IsNotFoundError(err))
}

func TestSearchUsers(t *testing.T) {
	db := newTestDB(t)
	users := newUserRepo(t, db)
	signupUser(t, users, "testuser")
	signupUser(t, users, "searcheduser")

	found, err := users.Search("searched", 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "searcheduser", found[0].Username)

	all, err := users.Search("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
