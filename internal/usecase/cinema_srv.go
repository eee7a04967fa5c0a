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

type CinemaService interface {
	ListCinemas(ctx context.Context, city string) ([]response.CinemaResponse, error)
	GetCinema(ctx context.Context, cinemaID string) (*response.CinemaResponse, error)
	CreateCinema(ctx context.Context, req *request.CreateCinemaRequest) (*response.CinemaResponse, error)
	UpdateCinema(ctx context.Context, cinemaID string, req *request.UpdateCinemaRequest) (*response.CinemaResponse, error)
	DeleteCinema(ctx context.Context, cinemaID string) error

	ListHalls(ctx context.Context, cinemaID string) ([]response.HallResponse, error)
	CreateHall(ctx context.Context, cinemaID string, req *request.CreateHallRequest) (*response.HallResponse, error)
	ListSeats(ctx context.Context, hallID string) ([]response.SeatResponse, error)
	GenerateSeats(ctx context.Context, hallID string, req *request.CreateSeatsRequest) ([]response.SeatResponse, error)
}

type cinemaService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCinemaService(repo *repository.Repository, log *zap.Logger) CinemaService {
	return &cinemaService{
		repo: repo,
		log:  log.With(zap.String("service", "cinema")),
	}
}

func (s *cinemaService) ListCinemas(ctx context.Context, city string) ([]response.CinemaResponse, error) {
	cinemas, err := s.repo.Cinema.FindAll(ctx, city)
	if err != nil {
		s.log.Error("Failed to list cinemas", zap.Error(err))
		return nil, fmt.Errorf("failed to list cinemas")
	}

	items := make([]response.CinemaResponse, 0, len(cinemas))
	for _, cinema := range cinemas {
		items = append(items, response.CinemaToResponse(cinema))
	}
	return items, nil
}

func (s *cinemaService) GetCinema(ctx context.Context, cinemaID string) (*response.CinemaResponse, error) {
	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) CreateCinema(ctx context.Context, req *request.CreateCinemaRequest) (*response.CinemaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create cinema validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	cinema := &entity.Cinema{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		Description: req.Description,
	}

	if err := s.repo.Cinema.Create(ctx, cinema); err != nil {
		s.log.Error("Failed to create cinema", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create cinema")
	}

	s.log.Info("Cinema created",
		zap.String("cinema_id", cinema.ID.String()),
		zap.String("name", cinema.Name))

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) UpdateCinema(ctx context.Context, cinemaID string, req *request.UpdateCinemaRequest) (*response.CinemaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update cinema validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cinema.Name = *req.Name
	}
	if req.City != nil {
		cinema.City = *req.City
	}
	if req.Address != nil {
		cinema.Address = *req.Address
	}
	if req.Description != nil {
		cinema.Description = *req.Description
	}
	cinema.UpdatedAt = time.Now()

	if err := s.repo.Cinema.Update(ctx, cinema); err != nil {
		s.log.Error("Failed to update cinema", zap.Error(err), zap.String("cinema_id", cinemaID))
		return nil, fmt.Errorf("failed to update cinema")
	}

	s.log.Info("Cinema updated", zap.String("cinema_id", cinemaID))

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) DeleteCinema(ctx context.Context, cinemaID string) error {
	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return err
	}

	if err := s.repo.Cinema.Delete(ctx, cinema.ID); err != nil {
		s.log.Error("Failed to delete cinema", zap.Error(err), zap.String("cinema_id", cinemaID))
		return fmt.Errorf("failed to delete cinema")
	}

	s.log.Info("Cinema deleted", zap.String("cinema_id", cinemaID))
	return nil
}

func (s *cinemaService) ListHalls(ctx context.Context, cinemaID string) ([]response.HallResponse, error) {
	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	halls, err := s.repo.Hall.FindByCinemaID(ctx, cinema.ID)
	if err != nil {
		s.log.Error("Failed to list halls", zap.Error(err), zap.String("cinema_id", cinemaID))
		return nil, fmt.Errorf("failed to list halls")
	}

	items := make([]response.HallResponse, 0, len(halls))
	for _, hall := range halls {
		items = append(items, response.HallToResponse(hall))
	}
	return items, nil
}

func (s *cinemaService) CreateHall(ctx context.Context, cinemaID string, req *request.CreateHallRequest) (*response.HallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hall validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	hallType := entity.HallType(req.HallType)
	if req.HallType == "" {
		hallType = entity.HallTypeStandard
	}

	now := time.Now()
	hall := &entity.Hall{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CinemaID:   cinema.ID,
		Name:       req.Name,
		TotalSeats: req.TotalSeats,
		HallType:   hallType,
	}

	if err := s.repo.Hall.Create(ctx, hall); err != nil {
		s.log.Error("Failed to create hall", zap.Error(err), zap.String("cinema_id", cinemaID))
		return nil, fmt.Errorf("failed to create hall")
	}

	s.log.Info("Hall created",
		zap.String("hall_id", hall.ID.String()),
		zap.String("cinema_id", cinemaID))

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *cinemaService) ListSeats(ctx context.Context, hallID string) ([]response.SeatResponse, error) {
	hall, err := s.findHall(ctx, hallID)
	if err != nil {
		return nil, err
	}

	seats, err := s.repo.Seat.FindByHallID(ctx, hall.ID)
	if err != nil {
		s.log.Error("Failed to list seats", zap.Error(err), zap.String("hall_id", hallID))
		return nil, fmt.Errorf("failed to list seats")
	}

	items := make([]response.SeatResponse, 0, len(seats))
	for _, seat := range seats {
		items = append(items, response.SeatToResponse(seat))
	}
	return items, nil
}

// GenerateSeats lays out rows x seats_per_row seats for an empty hall. The
// grid must match the hall's declared total so availability math stays honest.
func (s *cinemaService) GenerateSeats(ctx context.Context, hallID string, req *request.CreateSeatsRequest) ([]response.SeatResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Generate seats validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hall, err := s.findHall(ctx, hallID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Seat.FindByHallID(ctx, hall.ID)
	if err != nil {
		s.log.Error("Failed to check existing seats", zap.Error(err), zap.String("hall_id", hallID))
		return nil, fmt.Errorf("failed to check existing seats")
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("hall already has seats")
	}

	if req.Rows*req.SeatsPerRow != hall.TotalSeats {
		return nil, fmt.Errorf("seat grid does not match hall capacity %d", hall.TotalSeats)
	}

	seatType := entity.SeatType(req.SeatType)
	if req.SeatType == "" {
		seatType = entity.SeatTypeStandard
	}

	now := time.Now()
	seats := make([]*entity.Seat, 0, req.Rows*req.SeatsPerRow)
	for row := 1; row <= req.Rows; row++ {
		for num := 1; num <= req.SeatsPerRow; num++ {
			seats = append(seats, &entity.Seat{
				BaseNoDelete: entity.BaseNoDelete{
					ID:        uuid.New(),
					CreatedAt: now,
					UpdatedAt: now,
				},
				HallID:   hall.ID,
				Row:      row,
				Number:   num,
				SeatType: seatType,
			})
		}
	}

	if err := s.repo.Seat.CreateBatch(ctx, seats); err != nil {
		s.log.Error("Failed to create seats", zap.Error(err), zap.String("hall_id", hallID))
		return nil, fmt.Errorf("failed to create seats")
	}

	s.log.Info("Seats generated",
		zap.String("hall_id", hallID),
		zap.Int("count", len(seats)))

	items := make([]response.SeatResponse, 0, len(seats))
	for _, seat := range seats {
		items = append(items, response.SeatToResponse(seat))
	}
	return items, nil
}

func (s *cinemaService) findCinema(ctx context.Context, cinemaID string) (*entity.Cinema, error) {
	id, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, fmt.Errorf("invalid cinema ID format %s: %w", cinemaID, err)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find cinema", zap.Error(err), zap.String("cinema_id", cinemaID))
		return nil, fmt.Errorf("failed to find cinema")
	}
	if cinema == nil {
		return nil, fmt.Errorf("cinema %s not found", cinemaID)
	}
	return cinema, nil
}

func (s *cinemaService) findHall(ctx context.Context, hallID string) (*entity.Hall, error) {
	id, err := uuid.Parse(hallID)
	if err != nil {
		return nil, fmt.Errorf("invalid hall ID format %s: %w", hallID, err)
	}

	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find hall", zap.Error(err), zap.String("hall_id", hallID))
		return nil, fmt.Errorf("failed to find hall")
	}
	if hall == nil {
		return nil, fmt.Errorf("hall %s not found", hallID)
	}
	return hall, nil
}
