package store

import "github.com/avelarde/climatask/internal/logger"

// Storages aggregates all entity repositories over one shared connection
// pool. Constructed once at startup and injected into the service layer.
type Storages struct {
	UserRepository     UserRepository
	LocationRepository LocationRepository
	TaskRepository     TaskRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		LocationRepository: NewLocationRepository(db, logger),
		TaskRepository:     NewTaskRepository(db, logger),
	}
}
