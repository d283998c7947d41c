package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ValidationError reports bad or duplicate input on a named field. It is
// recoverable and its message is meant to be shown to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// AuthorizationError means the acting user lacks rights over the target
// entity. It never indicates an internal fault.
type AuthorizationError struct {
	UserID   uint
	Resource string
	Action   string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user #%d is not authorized to %s this %s", e.UserID, e.Action, e.Resource)
}

func NewAuthorizationError(userID uint, resource, action string) error {
	return &AuthorizationError{UserID: userID, Resource: resource, Action: action}
}

// ConflictError reports a uniqueness or state conflict, such as following
// a user who is already followed.
type ConflictError struct {
	Resource string
	Reason   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s: %s", e.Resource, e.Reason)
}

func NewConflictError(resource, reason string) error {
	return &ConflictError{Resource: resource, Reason: reason}
}

// NotFoundError reports that a referenced entity is absent.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s #%d not found", e.Resource, e.ID)
}

func NewNotFoundError(resource string, id uint) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsAuthorizationError(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

func IsConflictError(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// isUniqueViolation reports whether err is a storage-level unique
// constraint violation. The stores translate these into ConflictError or
// ValidationError instead of leaking the raw driver error.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	// sqlite: "UNIQUE constraint failed", postgres: "duplicate key value
	// violates unique constraint"
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
