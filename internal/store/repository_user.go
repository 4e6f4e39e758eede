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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, partial update, and deletion against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

var userColumns = []string{"id", "email", "name", "password", "created_at"}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func userSelectColumns() string {
	return strings.Join(userColumns, ", ")
}

func scanUserRow(row rowScanner, user *models.User) error {
	return row.Scan(&user.ID, &user.Email, &user.Name, &user.Password, &user.CreatedAt)
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt). The Password
// field must already contain the bcrypt hash.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(user.TableName()).
		Columns("email", "name", "password").
		Values(user.Email, user.Name, user.Password).
		Suffix("RETURNING " + userSelectColumns()).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("building insert query: %w", err)
	}

	var created models.User
	if err = scanUserRow(r.db.QueryRowContext(ctx, query, args...), &created); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetUserByID retrieves the account with the given id.
// Returns [ErrUserNotFound] when no record matches.
func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("building select query: %w", err)
	}

	var user models.User
	if err = scanUserRow(r.db.QueryRowContext(ctx, query, args...), &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error querying user by id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves the account with the given email.
// Returns [ErrUserNotFound] when no record matches.
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("building select query: %w", err)
	}

	var user models.User
	if err = scanUserRow(r.db.QueryRowContext(ctx, query, args...), &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByEmail").Msg("error querying user by email")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// ListUsers returns all accounts ordered by id.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error querying users")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = scanUserRow(rows, &user); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}

	return users, nil
}

// UpdateUser applies the non-nil fields of upd to the account with the given
// id and returns the updated record. When upd carries no fields the stored
// record is returned unchanged.
//
// Error handling:
//   - no matching row → [ErrUserNotFound]
//   - unique_violation on email → [ErrEmailAlreadyExists]
func (r *userRepository) UpdateUser(ctx context.Context, id int64, upd UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update(models.User{}.TableName())
	changes := 0
	if upd.Email != nil {
		builder = builder.Set("email", *upd.Email)
		changes++
	}
	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
		changes++
	}
	if upd.Password != nil {
		builder = builder.Set("password", *upd.Password)
		changes++
	}

	if changes == 0 {
		return r.GetUserByID(ctx, id)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userSelectColumns()).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("building update query: %w", err)
	}

	var updated models.User
	if err = scanUserRow(r.db.QueryRowContext(ctx, query, args...), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteUser removes the account with the given id and returns the deleted
// record. Returns [ErrUserNotFound] when no record matches.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userSelectColumns()).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("building delete query: %w", err)
	}

	var deleted models.User
	if err = scanUserRow(r.db.QueryRowContext(ctx, query, args...), &deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}
