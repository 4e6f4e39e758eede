package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/avelarde/climatask/internal/logger"
	"github.com/avelarde/climatask/models"
	"github.com/jackc/pgerrcode"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// Listings are ordered by created_at descending so the newest task always
// comes first regardless of insertion order.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

var taskColumns = []string{"id", "user_id", "title", "description", "is_completed", "created_at"}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

func taskSelectColumns() string {
	return strings.Join(taskColumns, ", ")
}

func taskJoinedColumns() []string {
	cols := make([]string, 0, len(taskColumns)+3)
	for _, c := range taskColumns {
		cols = append(cols, "t."+c)
	}
	return append(cols, "u.id", "u.email", "u.name")
}

func scanTaskRow(row rowScanner, task *models.Task) error {
	return row.Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.IsCompleted, &task.CreatedAt,
	)
}

func scanTaskWithUserRow(row rowScanner, task *models.Task) error {
	var owner models.UserResponse
	err := row.Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.IsCompleted, &task.CreatedAt,
		&owner.ID, &owner.Email, &owner.Name,
	)
	if err != nil {
		return err
	}
	task.User = &owner
	return nil
}

// CreateTask persists a new task and returns it with server-assigned fields
// (ID, CreatedAt, and the schema default IsCompleted=false).
//
// Error handling:
//   - foreign_key_violation on user_id → [ErrUserReferenceNotFound]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(task.TableName()).
		Columns("user_id", "title", "description").
		Values(task.UserID, task.Title, task.Description).
		Suffix("RETURNING " + taskSelectColumns()).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("building insert query: %w", err)
	}

	var created models.Task
	if err = scanTaskRow(r.db.QueryRowContext(ctx, query, args...), &created); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error inserting task")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Task{}, ErrUserReferenceNotFound
		default:
			return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetTaskByID retrieves the task with the given id.
// Returns [ErrTaskNotFound] when no record matches.
func (r *taskRepository) GetTaskByID(ctx context.Context, id int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("building select query: %w", err)
	}

	var task models.Task
	if err = scanTaskRow(r.db.QueryRowContext(ctx, query, args...), &task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.GetTaskByID").Msg("error querying task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// ListTasks returns all tasks with their owners embedded, newest first.
func (r *taskRepository) ListTasks(ctx context.Context) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(taskJoinedColumns()...).
		From(models.Task{}.TableName() + " t").
		Join(models.User{}.TableName() + " u ON u.id = t.user_id").
		OrderBy("t.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error querying tasks")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err = scanTaskWithUserRow(rows, &task); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}

	return tasks, nil
}

// ListTasksByUser returns the tasks owned by the given user, newest first.
func (r *taskRepository) ListTasksByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasksByUser").Msg("error querying tasks by user")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err = scanTaskRow(rows, &task); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}

	return tasks, nil
}

// UpdateTask applies the non-nil fields of upd to the task with the given id
// and returns the updated record. A nil IsCompleted is omitted from the SET
// clause entirely, so "not sent" and "set to false" stay distinct. When upd
// carries no fields the stored record is returned unchanged.
//
// Returns [ErrTaskNotFound] when no record matches.
func (r *taskRepository) UpdateTask(ctx context.Context, id int64, upd TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update(models.Task{}.TableName())
	changes := 0
	if upd.Title != nil {
		builder = builder.Set("title", *upd.Title)
		changes++
	}
	if upd.Description != nil {
		builder = builder.Set("description", *upd.Description)
		changes++
	}
	if upd.IsCompleted != nil {
		builder = builder.Set("is_completed", *upd.IsCompleted)
		changes++
	}

	if changes == 0 {
		return r.GetTaskByID(ctx, id)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + taskSelectColumns()).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("building update query: %w", err)
	}

	var updated models.Task
	if err = scanTaskRow(r.db.QueryRowContext(ctx, query, args...), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error updating task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteTask removes the task with the given id and returns the deleted
// record. Returns [ErrTaskNotFound] when no record matches.
func (r *taskRepository) DeleteTask(ctx context.Context, id int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(models.Task{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + taskSelectColumns()).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("building delete query: %w", err)
	}

	var deleted models.Task
	if err = scanTaskRow(r.db.QueryRowContext(ctx, query, args...), &deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error deleting task")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}
