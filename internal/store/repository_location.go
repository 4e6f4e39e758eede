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

// locationRepository is the PostgreSQL-backed implementation of
// [LocationRepository]. Single-record and list reads join the owning user so
// handlers can embed the owner without a second round trip.
type locationRepository struct {
	logger *logger.Logger
	db     *DB
}

var locationColumns = []string{"id", "user_id", "latitude", "longitude", "name", "description", "elevation", "timezone"}

// NewLocationRepository constructs a [LocationRepository] backed by the
// provided database connection and logger.
func NewLocationRepository(db *DB, logger *logger.Logger) LocationRepository {
	logger.Debug().Msg("creating location repository")
	return &locationRepository{
		db:     db,
		logger: logger,
	}
}

func locationSelectColumns() string {
	return strings.Join(locationColumns, ", ")
}

// locationJoinedColumns returns the location columns qualified with the "l."
// alias plus the owner's projected columns, for joined selects.
func locationJoinedColumns() []string {
	cols := make([]string, 0, len(locationColumns)+3)
	for _, c := range locationColumns {
		cols = append(cols, "l."+c)
	}
	return append(cols, "u.id", "u.email", "u.name")
}

func scanLocationRow(row rowScanner, location *models.Location) error {
	return row.Scan(
		&location.ID, &location.UserID, &location.Latitude, &location.Longitude,
		&location.Name, &location.Description, &location.Elevation, &location.Timezone,
	)
}

func scanLocationWithUserRow(row rowScanner, location *models.Location) error {
	var owner models.UserResponse
	err := row.Scan(
		&location.ID, &location.UserID, &location.Latitude, &location.Longitude,
		&location.Name, &location.Description, &location.Elevation, &location.Timezone,
		&owner.ID, &owner.Email, &owner.Name,
	)
	if err != nil {
		return err
	}
	location.User = &owner
	return nil
}

// CreateLocation persists a new location and returns it with the
// server-assigned id.
//
// Error handling:
//   - foreign_key_violation on user_id → [ErrUserReferenceNotFound]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *locationRepository) CreateLocation(ctx context.Context, location models.Location) (models.Location, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(location.TableName()).
		Columns("user_id", "latitude", "longitude", "name", "description", "elevation", "timezone").
		Values(location.UserID, location.Latitude, location.Longitude, location.Name,
			location.Description, location.Elevation, location.Timezone).
		Suffix("RETURNING " + locationSelectColumns()).
		ToSql()
	if err != nil {
		return models.Location{}, fmt.Errorf("building insert query: %w", err)
	}

	var created models.Location
	if err = scanLocationRow(r.db.QueryRowContext(ctx, query, args...), &created); err != nil {
		log.Err(err).Str("func", "*locationRepository.CreateLocation").Msg("error inserting location")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Location{}, ErrUserReferenceNotFound
		default:
			return models.Location{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetLocationByID retrieves the location with the given id, owner embedded.
// Returns [ErrLocationNotFound] when no record matches.
func (r *locationRepository) GetLocationByID(ctx context.Context, id int64) (models.Location, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(locationJoinedColumns()...).
		From(models.Location{}.TableName() + " l").
		Join(models.User{}.TableName() + " u ON u.id = l.user_id").
		Where(sq.Eq{"l.id": id}).
		ToSql()
	if err != nil {
		return models.Location{}, fmt.Errorf("building select query: %w", err)
	}

	var location models.Location
	if err = scanLocationWithUserRow(r.db.QueryRowContext(ctx, query, args...), &location); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Location{}, ErrLocationNotFound
		}
		log.Err(err).Str("func", "*locationRepository.GetLocationByID").Msg("error querying location")
		return models.Location{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return location, nil
}

// ListLocations returns all locations with their owners embedded, ordered
// by id.
func (r *locationRepository) ListLocations(ctx context.Context) ([]models.Location, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(locationJoinedColumns()...).
		From(models.Location{}.TableName() + " l").
		Join(models.User{}.TableName() + " u ON u.id = l.user_id").
		OrderBy("l.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*locationRepository.ListLocations").Msg("error querying locations")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	locations := make([]models.Location, 0)
	for rows.Next() {
		var location models.Location
		if err = scanLocationWithUserRow(rows, &location); err != nil {
			return nil, fmt.Errorf("scanning location row: %w", err)
		}
		locations = append(locations, location)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating location rows: %w", err)
	}

	return locations, nil
}

// ListLocationsByUser returns the locations owned by the given user, ordered
// by id. An unknown user yields an empty list, matching the behavior of a
// filtered find.
func (r *locationRepository) ListLocationsByUser(ctx context.Context, userID int64) ([]models.Location, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(locationColumns...).
		From(models.Location{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*locationRepository.ListLocationsByUser").Msg("error querying locations by user")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	locations := make([]models.Location, 0)
	for rows.Next() {
		var location models.Location
		if err = scanLocationRow(rows, &location); err != nil {
			return nil, fmt.Errorf("scanning location row: %w", err)
		}
		locations = append(locations, location)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating location rows: %w", err)
	}

	return locations, nil
}

// UpdateLocation applies the non-nil fields of upd to the location with the
// given id and returns the updated record. When upd carries no fields the
// stored record is returned unchanged (owner not embedded).
//
// Error handling:
//   - no matching row → [ErrLocationNotFound]
//   - foreign_key_violation on user_id → [ErrUserReferenceNotFound]
func (r *locationRepository) UpdateLocation(ctx context.Context, id int64, upd LocationUpdate) (models.Location, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update(models.Location{}.TableName())
	changes := 0
	if upd.UserID != nil {
		builder = builder.Set("user_id", *upd.UserID)
		changes++
	}
	if upd.Latitude != nil {
		builder = builder.Set("latitude", *upd.Latitude)
		changes++
	}
	if upd.Longitude != nil {
		builder = builder.Set("longitude", *upd.Longitude)
		changes++
	}
	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
		changes++
	}
	if upd.Description != nil {
		builder = builder.Set("description", *upd.Description)
		changes++
	}
	if upd.Elevation != nil {
		builder = builder.Set("elevation", *upd.Elevation)
		changes++
	}
	if upd.Timezone != nil {
		builder = builder.Set("timezone", *upd.Timezone)
		changes++
	}

	if changes == 0 {
		return r.getLocationPlain(ctx, id)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + locationSelectColumns()).
		ToSql()
	if err != nil {
		return models.Location{}, fmt.Errorf("building update query: %w", err)
	}

	var updated models.Location
	if err = scanLocationRow(r.db.QueryRowContext(ctx, query, args...), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Location{}, ErrLocationNotFound
		}
		log.Err(err).Str("func", "*locationRepository.UpdateLocation").Msg("error updating location")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Location{}, ErrUserReferenceNotFound
		default:
			return models.Location{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteLocation removes the location with the given id and returns the
// deleted record. Returns [ErrLocationNotFound] when no record matches.
func (r *locationRepository) DeleteLocation(ctx context.Context, id int64) (models.Location, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(models.Location{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + locationSelectColumns()).
		ToSql()
	if err != nil {
		return models.Location{}, fmt.Errorf("building delete query: %w", err)
	}

	var deleted models.Location
	if err = scanLocationRow(r.db.QueryRowContext(ctx, query, args...), &deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Location{}, ErrLocationNotFound
		}
		log.Err(err).Str("func", "*locationRepository.DeleteLocation").Msg("error deleting location")
		return models.Location{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}

func (r *locationRepository) getLocationPlain(ctx context.Context, id int64) (models.Location, error) {
	query, args, err := psql.Select(locationColumns...).
		From(models.Location{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Location{}, fmt.Errorf("building select query: %w", err)
	}

	var location models.Location
	if err = scanLocationRow(r.db.QueryRowContext(ctx, query, args...), &location); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Location{}, ErrLocationNotFound
		}
		return models.Location{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return location, nil
}
