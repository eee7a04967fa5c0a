package usecase_test

import (
	"context"
	"testing"
	"time"

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

func TestCreateShowtime_Success(t *testing.T) {
	showtimeRepo := mocks.NewShowtimeRepository(t)
	movieRepo := mocks.NewMovieRepository(t)
	hallRepo := mocks.NewHallRepository(t)

	repo := &repository.Repository{
		Showtime: showtimeRepo,
		Movie:    movieRepo,
		Hall:     hallRepo,
	}
	service := usecase.NewShowtimeService(repo, zap.NewNop())

	ctx := context.Background()
	movie := &entity.Movie{Base: entity.Base{ID: uuid.New()}, Title: "Dune"}
	hall := &entity.Hall{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, TotalSeats: 100}
	start := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	end := start.Add(2 * time.Hour)

	sameInstant := func(want time.Time) any {
		return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
	}

	movieRepo.On("FindByID", ctx, movie.ID).Return(movie, nil)
	hallRepo.On("FindByID", ctx, hall.ID).Return(hall, nil)
	showtimeRepo.On("CountOverlapping", ctx, hall.ID, sameInstant(start), sameInstant(end), (*uuid.UUID)(nil)).
		Return(int64(0), nil)
	showtimeRepo.On("Create", ctx, mock.AnythingOfType("*entity.Showtime")).
		Run(func(args mock.Arguments) {
			showtime := args.Get(1).(*entity.Showtime)
			assert.True(t, showtime.IsActive)
			assert.Equal(t, 1500.0, showtime.Price)
		}).
		Return(nil)

	resp, err := service.CreateShowtime(ctx, &request.CreateShowtimeRequest{
		MovieID:   movie.ID.String(),
		HallID:    hall.ID.String(),
		StartTime: start.Format(time.RFC3339),
		EndTime:   end.Format(time.RFC3339),
		Price:     1500,
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.IsActive)
}

func TestCreateShowtime_Overlap(t *testing.T) {
	showtimeRepo := mocks.NewShowtimeRepository(t)
	movieRepo := mocks.NewMovieRepository(t)
	hallRepo := mocks.NewHallRepository(t)

	repo := &repository.Repository{
		Showtime: showtimeRepo,
		Movie:    movieRepo,
		Hall:     hallRepo,
	}
	service := usecase.NewShowtimeService(repo, zap.NewNop())

	ctx := context.Background()
	movie := &entity.Movie{Base: entity.Base{ID: uuid.New()}}
	hall := &entity.Hall{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}}
	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	end := start.Add(2 * time.Hour)

	movieRepo.On("FindByID", ctx, movie.ID).Return(movie, nil)
	hallRepo.On("FindByID", ctx, hall.ID).Return(hall, nil)
	showtimeRepo.On("CountOverlapping", ctx, hall.ID,
		mock.MatchedBy(func(got time.Time) bool { return got.Equal(start) }),
		mock.MatchedBy(func(got time.Time) bool { return got.Equal(end) }),
		(*uuid.UUID)(nil)).
		Return(int64(1), nil)

	_, err := service.CreateShowtime(ctx, &request.CreateShowtimeRequest{
		MovieID:   movie.ID.String(),
		HallID:    hall.ID.String(),
		StartTime: start.Format(time.RFC3339),
		EndTime:   end.Format(time.RFC3339),
		Price:     1000,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlaps")
}

func TestCreateShowtime_EndBeforeStart(t *testing.T) {
	repo := &repository.Repository{
		Showtime: mocks.NewShowtimeRepository(t),
		Movie:    mocks.NewMovieRepository(t),
		Hall:     mocks.NewHallRepository(t),
	}
	service := usecase.NewShowtimeService(repo, zap.NewNop())

	start := time.Now().Add(24 * time.Hour)

	_, err := service.CreateShowtime(context.Background(), &request.CreateShowtimeRequest{
		MovieID:   uuid.New().String(),
		HallID:    uuid.New().String(),
		StartTime: start.Format(time.RFC3339),
		EndTime:   start.Add(-time.Hour).Format(time.RFC3339),
		Price:     1000,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "end time must be after start time")
}

func TestListShowtimes_FilterByDate(t *testing.T) {
	showtimeRepo := mocks.NewShowtimeRepository(t)

	repo := &repository.Repository{Showtime: showtimeRepo}
	service := usecase.NewShowtimeService(repo, zap.NewNop())

	ctx := context.Background()
	showtime := &entity.Showtime{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		MovieID:      uuid.New(),
		HallID:       uuid.New(),
		IsActive:     true,
	}

	showtimeRepo.On("FindAll", ctx, mock.MatchedBy(func(filter repository.ShowtimeFilter) bool {
		return filter.StartDate != nil && filter.StartDate.Format("2006-01-02") == "2026-09-15"
	})).Return([]*entity.Showtime{showtime}, nil)

	resp, err := service.ListShowtimes(ctx, &request.ListShowtimesRequest{Date: "2026-09-15"})

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, showtime.ID.String(), resp[0].ID)
}
