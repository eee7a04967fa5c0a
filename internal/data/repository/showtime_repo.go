package repository

import (
	"context"
	"fmt"
	"time"

	"kinopark/internal/data/entity"
	"kinopark/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeFilter struct {
	MovieID   *uuid.UUID
	HallID    *uuid.UUID
	StartDate *time.Time // matches the calendar date of start_time
}

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	FindAll(ctx context.Context, filter ShowtimeFilter) ([]*entity.Showtime, error)
	// CountOverlapping reports active showtimes in the hall whose window
	// intersects [start, end), excluding excludeID when non-nil.
	CountOverlapping(ctx context.Context, hallID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (id, movie_id, hall_id, start_time, end_time, price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.HallID,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
		showtime.IsActive,
		showtime.CreatedAt,
		showtime.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID.String()),
			zap.String("hall_id", showtime.HallID.String()),
			zap.Time("start_time", showtime.StartTime),
		)
		return fmt.Errorf("create showtime: %w", err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, hall_id, start_time, end_time, price, is_active, created_at, updated_at
		FROM showtimes
		WHERE id = $1
	`

	var showtime entity.Showtime
	err := r.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.HallID,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Price,
		&showtime.IsActive,
		&showtime.CreatedAt,
		&showtime.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("find showtime by ID %s: %w", id.String(), err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) FindAll(ctx context.Context, filter ShowtimeFilter) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, hall_id, start_time, end_time, price, is_active, created_at, updated_at
		FROM showtimes
		WHERE is_active = true
	`
	args := []any{}
	n := 0

	if filter.MovieID != nil {
		n++
		query += fmt.Sprintf(" AND movie_id = $%d", n)
		args = append(args, *filter.MovieID)
	}
	if filter.HallID != nil {
		n++
		query += fmt.Sprintf(" AND hall_id = $%d", n)
		args = append(args, *filter.HallID)
	}
	if filter.StartDate != nil {
		n++
		query += fmt.Sprintf(" AND start_time::date = $%d::date", n)
		args = append(args, *filter.StartDate)
	}

	query += ` ORDER BY start_time`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find showtimes", zap.Error(err))
		return nil, fmt.Errorf("find showtimes: %w", err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		var showtime entity.Showtime
		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.HallID,
			&showtime.StartTime,
			&showtime.EndTime,
			&showtime.Price,
			&showtime.IsActive,
			&showtime.CreatedAt,
			&showtime.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtimes = append(showtimes, &showtime)
	}

	return showtimes, nil
}

func (r *showtimeRepository) CountOverlapping(ctx context.Context, hallID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM showtimes
		WHERE hall_id = $1
		  AND is_active = true
		  AND start_time < $3
		  AND end_time > $2
	`
	args := []any{hallID, start, end}

	if excludeID != nil {
		query += ` AND id <> $4`
		args = append(args, *excludeID)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count overlapping showtimes",
			zap.Error(err),
			zap.String("hall_id", hallID.String()),
		)
		return 0, fmt.Errorf("count overlapping showtimes in hall %s: %w", hallID.String(), err)
	}

	return count, nil
}

func (r *showtimeRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE showtimes SET is_active = false, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate showtime",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return fmt.Errorf("deactivate showtime %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %s not found", id.String())
	}

	return nil
}
