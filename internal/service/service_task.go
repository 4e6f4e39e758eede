package service

import (
	"context"

	"github.com/avelarde/climatask/internal/logger"
	"github.com/avelarde/climatask/internal/store"
	"github.com/avelarde/climatask/models"
)

// taskService is the concrete implementation of [TaskService].
type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

// NewTaskService constructs a [TaskService] wired to the given repository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// Create persists a new task. UserID and title are required; the completed
// flag is owned by the schema default and starts false.
func (s *taskService) Create(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if req.UserID == 0 || req.Title == "" {
		log.Error().Any("request", req).Msg("invalid task data provided")
		return models.Task{}, ErrInvalidDataProvided
	}

	return s.taskRepository.CreateTask(ctx, models.Task{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
	})
}

// Get returns the task with the given id, or store.ErrTaskNotFound.
func (s *taskService) Get(ctx context.Context, id int64) (models.Task, error) {
	return s.taskRepository.GetTaskByID(ctx, id)
}

// List returns all tasks, newest first, owners embedded.
func (s *taskService) List(ctx context.Context) ([]models.Task, error) {
	return s.taskRepository.ListTasks(ctx)
}

// ListByUser returns the given user's tasks, newest first.
func (s *taskService) ListByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	return s.taskRepository.ListTasksByUser(ctx, userID)
}

// Update applies a partial update. An omitted isCompleted leaves the stored
// flag untouched rather than resetting it.
func (s *taskService) Update(ctx context.Context, id int64, req models.UpdateTaskRequest) (models.Task, error) {
	return s.taskRepository.UpdateTask(ctx, id, store.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	})
}

// Delete removes the task and returns the deleted record, or
// store.ErrTaskNotFound.
func (s *taskService) Delete(ctx context.Context, id int64) (models.Task, error) {
	return s.taskRepository.DeleteTask(ctx, id)
}
