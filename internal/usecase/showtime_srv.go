package usecase

import (
	"context"
	"fmt"
	"time"

	"kinopark/internal/data/entity"
	"kinopark/internal/data/repository"
	"kinopark/internal/dto/request"
	"kinopark/internal/dto/response"
	"kinopark/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShowtimeService interface {
	ListShowtimes(ctx context.Context, req *request.ListShowtimesRequest) ([]response.ShowtimeResponse, error)
	GetShowtime(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error)
	CreateShowtime(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error)
	DeactivateShowtime(ctx context.Context, showtimeID string) error
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) ListShowtimes(ctx context.Context, req *request.ListShowtimesRequest) ([]response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List showtimes validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var filter repository.ShowtimeFilter
	if req.MovieID != "" {
		id, err := uuid.Parse(req.MovieID)
		if err != nil {
			return nil, fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
		}
		filter.MovieID = &id
	}
	if req.HallID != "" {
		id, err := uuid.Parse(req.HallID)
		if err != nil {
			return nil, fmt.Errorf("invalid hall ID format %s: %w", req.HallID, err)
		}
		filter.HallID = &id
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date format %s", req.Date)
		}
		filter.StartDate = &date
	}

	showtimes, err := s.repo.Showtime.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list showtimes", zap.Error(err))
		return nil, fmt.Errorf("failed to list showtimes")
	}

	items := make([]response.ShowtimeResponse, 0, len(showtimes))
	for _, showtime := range showtimes {
		items = append(items, response.ShowtimeToResponse(showtime))
	}
	return items, nil
}

func (s *showtimeService) GetShowtime(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID format %s: %w", showtimeID, err)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find showtime", zap.Error(err), zap.String("showtime_id", showtimeID))
		return nil, fmt.Errorf("failed to find showtime")
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s not found", showtimeID)
	}

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
	}
	hallID, err := uuid.Parse(req.HallID)
	if err != nil {
		return nil, fmt.Errorf("invalid hall ID format %s: %w", req.HallID, err)
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time format %s", req.StartTime)
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time format %s", req.EndTime)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("end time must be after start time")
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to find movie", zap.Error(err), zap.String("movie_id", req.MovieID))
		return nil, fmt.Errorf("failed to find movie")
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s not found", req.MovieID)
	}

	hall, err := s.repo.Hall.FindByID(ctx, hallID)
	if err != nil {
		s.log.Error("Failed to find hall", zap.Error(err), zap.String("hall_id", req.HallID))
		return nil, fmt.Errorf("failed to find hall")
	}
	if hall == nil {
		return nil, fmt.Errorf("hall %s not found", req.HallID)
	}

	// A hall can run one movie at a time. Windows touching at the boundary
	// (previous end == next start) do not count as overlap.
	overlapping, err := s.repo.Showtime.CountOverlapping(ctx, hallID, start, end, nil)
	if err != nil {
		s.log.Error("Failed to check overlap", zap.Error(err), zap.String("hall_id", req.HallID))
		return nil, fmt.Errorf("failed to check overlap")
	}
	if overlapping > 0 {
		return nil, fmt.Errorf("showtime overlaps an existing showtime in this hall")
	}

	now := time.Now()
	showtime := &entity.Showtime{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:   movieID,
		HallID:    hallID,
		StartTime: start,
		EndTime:   end,
		Price:     req.Price,
		IsActive:  true,
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		s.log.Error("Failed to create showtime", zap.Error(err),
			zap.String("movie_id", req.MovieID), zap.String("hall_id", req.HallID))
		return nil, fmt.Errorf("failed to create showtime")
	}

	s.log.Info("Showtime created",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("hall_id", req.HallID),
		zap.Time("start_time", start))

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) DeactivateShowtime(ctx context.Context, showtimeID string) error {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return fmt.Errorf("invalid showtime ID format %s: %w", showtimeID, err)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find showtime", zap.Error(err), zap.String("showtime_id", showtimeID))
		return fmt.Errorf("failed to find showtime")
	}
	if showtime == nil {
		return fmt.Errorf("showtime %s not found", showtimeID)
	}

	if err := s.repo.Showtime.Deactivate(ctx, id); err != nil {
		s.log.Error("Failed to deactivate showtime", zap.Error(err), zap.String("showtime_id", showtimeID))
		return fmt.Errorf("failed to deactivate showtime")
	}

	s.log.Info("Showtime deactivated", zap.String("showtime_id", showtimeID))
	return nil
}
