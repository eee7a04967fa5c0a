package usecase_test

import (
	"context"
	"testing"

	"kinopark/internal/data/entity"
	"kinopark/internal/data/repository"
	"kinopark/internal/data/repository/mocks"
	"kinopark/internal/dto/request"
	"kinopark/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateSeats_Success(t *testing.T) {
	hallRepo := mocks.NewHallRepository(t)
	seatRepo := mocks.NewSeatRepository(t)

	repo := &repository.Repository{Hall: hallRepo, Seat: seatRepo}
	service := usecase.NewCinemaService(repo, zap.NewNop())

	ctx := context.Background()
	hall := &entity.Hall{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		CinemaID:     uuid.New(),
		Name:         "Hall 2",
		TotalSeats:   20,
	}

	hallRepo.On("FindByID", ctx, hall.ID).Return(hall, nil)
	seatRepo.On("FindByHallID", ctx, hall.ID).Return(nil, nil)
	seatRepo.On("CreateBatch", ctx, mock.AnythingOfType("[]*entity.Seat")).
		Run(func(args mock.Arguments) {
			seats := args.Get(1).([]*entity.Seat)
			require.Len(t, seats, 20)
			assert.Equal(t, 1, seats[0].Row)
			assert.Equal(t, 1, seats[0].Number)
			assert.Equal(t, 4, seats[19].Row)
			assert.Equal(t, 5, seats[19].Number)
		}).
		Return(nil)

	seats, err := service.GenerateSeats(ctx, hall.ID.String(), &request.CreateSeatsRequest{
		Rows:        4,
		SeatsPerRow: 5,
	})

	require.NoError(t, err)
	assert.Len(t, seats, 20)
}

func TestGenerateSeats_GridMismatch(t *testing.T) {
	hallRepo := mocks.NewHallRepository(t)
	seatRepo := mocks.NewSeatRepository(t)

	repo := &repository.Repository{Hall: hallRepo, Seat: seatRepo}
	service := usecase.NewCinemaService(repo, zap.NewNop())

	ctx := context.Background()
	hall := &entity.Hall{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		TotalSeats:   30,
	}

	hallRepo.On("FindByID", ctx, hall.ID).Return(hall, nil)
	seatRepo.On("FindByHallID", ctx, hall.ID).Return(nil, nil)

	_, err := service.GenerateSeats(ctx, hall.ID.String(), &request.CreateSeatsRequest{
		Rows:        4,
		SeatsPerRow: 5,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match hall capacity")
}

func TestGenerateSeats_HallAlreadySeated(t *testing.T) {
	hallRepo := mocks.NewHallRepository(t)
	seatRepo := mocks.NewSeatRepository(t)

	repo := &repository.Repository{Hall: hallRepo, Seat: seatRepo}
	service := usecase.NewCinemaService(repo, zap.NewNop())

	ctx := context.Background()
	hall := &entity.Hall{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		TotalSeats:   1,
	}

	hallRepo.On("FindByID", ctx, hall.ID).Return(hall, nil)
	seatRepo.On("FindByHallID", ctx, hall.ID).
		Return([]*entity.Seat{{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}}}, nil)

	_, err := service.GenerateSeats(ctx, hall.ID.String(), &request.CreateSeatsRequest{
		Rows:        1,
		SeatsPerRow: 1,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already has seats")
}
