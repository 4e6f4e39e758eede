package store

import (
	"context"

	"github.com/avelarde/climatask/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, upd UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) (models.User, error)
}

// LocationRepository is the persistence contract for locations.
type LocationRepository interface {
	CreateLocation(ctx context.Context, location models.Location) (models.Location, error)
	GetLocationByID(ctx context.Context, id int64) (models.Location, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	ListLocationsByUser(ctx context.Context, userID int64) ([]models.Location, error)
	UpdateLocation(ctx context.Context, id int64, upd LocationUpdate) (models.Location, error)
	DeleteLocation(ctx context.Context, id int64) (models.Location, error)
}

// TaskRepository is the persistence contract for tasks.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTaskByID(ctx context.Context, id int64) (models.Task, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	ListTasksByUser(ctx context.Context, userID int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, id int64, upd TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, id int64) (models.Task, error)
}

// UserUpdate carries the fields a user update may change. Nil fields are
// left out of the generated SET clause, so the stored value is retained.
// Password, when set, must already be hashed.
type UserUpdate struct {
	Email    *string
	Name     *string
	Password *string
}

// LocationUpdate carries the whitelisted fields a location update may
// change. Nil fields are left out of the generated SET clause.
type LocationUpdate struct {
	UserID      *int64
	Latitude    *float64
	Longitude   *float64
	Name        *string
	Description *string
	Elevation   *float64
	Timezone    *string
}

// TaskUpdate carries the fields a task update may change. A nil IsCompleted
// leaves the stored flag untouched; it never decays to false.
type TaskUpdate struct {
	Title       *string
	Description *string
	IsCompleted *bool
}
