package store

import "errors"

var (
	// ErrEmailAlreadyExists is returned when creating or updating a user
	// with an email that another account already holds.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserNotFound is returned when a user lookup by id or email matches
	// no record.
	ErrUserNotFound = errors.New("user not found")

	// ErrLocationNotFound is returned when a location lookup, update, or
	// delete matches no record.
	ErrLocationNotFound = errors.New("location not found")

	// ErrTaskNotFound is returned when a task lookup, update, or delete
	// matches no record.
	ErrTaskNotFound = errors.New("task not found")

	// ErrUserReferenceNotFound is returned when an insert or update points
	// user_id at a non-existent account (foreign key violation).
	ErrUserReferenceNotFound = errors.New("referenced user does not exist")
)
