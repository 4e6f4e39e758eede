package models

import "time"

// Task is a to-do item owned by a user. IsCompleted defaults to false at the
// schema level; CreatedAt drives the newest-first ordering of task listings.
type Task struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`

	// User is the owning account, populated on joined reads.
	User *UserResponse `json:"user,omitempty"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	UserID      int64   `json:"userId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// UpdateTaskRequest is the body of PUT /tasks/{id}. Pointer fields keep the
// "omitted" and "set to zero value" cases distinct: a nil IsCompleted leaves
// the stored flag untouched instead of resetting it to false.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"isCompleted"`
}
