package application

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks any per-request "resource does not exist" failure.
	ErrNotFound = errors.New("resource not found")
	// ErrConfigurationDefect marks missing seed data. Retrying cannot fix it;
	// the database has to be re-seeded.
	ErrConfigurationDefect = errors.New("configuration defect")

	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrStorageNotConfigured = errors.New("gcs not configured")
)

// NewsNotFoundError is returned when no news item exists for ID.
type NewsNotFoundError struct {
	ID int64
}

func NewNewsNotFound(id int64) *NewsNotFoundError {
	return &NewsNotFoundError{ID: id}
}

func (e *NewsNotFoundError) Error() string {
	return fmt.Sprintf("News with id %d not found", e.ID)
}

func (e *NewsNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// RoleMissingError reports a seed role absent from the roles table.
type RoleMissingError struct {
	Role string
}

func newRoleMissing(role string) *RoleMissingError {
	return &RoleMissingError{Role: role}
}

func (e *RoleMissingError) Error() string {
	return "Database doesn't contain " + e.Role
}

func (e *RoleMissingError) Is(target error) bool {
	return target == ErrConfigurationDefect
}
