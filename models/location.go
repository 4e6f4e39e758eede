package models

// Location is a named geographic point owned by a user. Description,
// Elevation and Timezone are optional at creation and stored as NULLs when
// absent.
type Location struct {
	ID          int64    `json:"id"`
	UserID      int64    `json:"userId"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Elevation   *float64 `json:"elevation"`
	Timezone    *string  `json:"timezone"`

	// User is the owning account, populated on joined reads and projected
	// so the password hash is never embedded.
	User *UserResponse `json:"user,omitempty"`
}

// TableName returns the name of the database table
// associated with the Location model.
func (l Location) TableName() string {
	return "locations"
}

// CreateLocationRequest is the body of POST /locations.
type CreateLocationRequest struct {
	UserID      int64    `json:"userId"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Elevation   *float64 `json:"elevation"`
	Timezone    *string  `json:"timezone"`
}

// UpdateLocationRequest is the body of PUT /locations/{id}. Every field is
// optional; nil means "leave unchanged". Updatable fields are whitelisted
// here rather than applied from an arbitrary object.
type UpdateLocationRequest struct {
	UserID      *int64   `json:"userId"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Elevation   *float64 `json:"elevation"`
	Timezone    *string  `json:"timezone"`
}
