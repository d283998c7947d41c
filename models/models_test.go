package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"warbler/models"
)

func TestUserString(t *testing.T) {
	u := models.User{ID: 3, Username: "testuser", Email: "test@test.com"}
	assert.Equal(t, "<User #3: testuser, test@test.com>", u.String())
}

func TestMessageString(t *testing.T) {
	m := models.Message{ID: 1, UserID: 1, Text: "This is a test message."}
	assert.Equal(t, "<Message #1 made by user #1>", m.String())
}
