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

func TestCreateMovie_Success(t *testing.T) {
	movieRepo := mocks.NewMovieRepository(t)
	genreRepo := mocks.NewGenreRepository(t)

	repo := &repository.Repository{Movie: movieRepo, Genre: genreRepo}
	service := usecase.NewMovieService(repo, zap.NewNop())

	ctx := context.Background()
	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		Name:       "Drama",
	}
	releaseDate := "2026-11-20"

	movieRepo.On("FindByTitle", ctx, "Interstellar").Return(nil, nil)
	genreRepo.On("FindByID", ctx, genre.ID).Return(genre, nil)

	created := &entity.Movie{}
	movieRepo.On("Create", ctx, mock.AnythingOfType("*entity.Movie"), []uuid.UUID{genre.ID}).
		Run(func(args mock.Arguments) {
			*created = *(args.Get(1).(*entity.Movie))
		}).
		Return(nil)
	movieRepo.On("FindByID", ctx, mock.AnythingOfType("uuid.UUID")).Return(created, nil)
	genreRepo.On("FindByMovieID", ctx, mock.AnythingOfType("uuid.UUID")).
		Return([]*entity.Genre{genre}, nil)

	resp, err := service.CreateMovie(ctx, &request.CreateMovieRequest{
		Title:       "Interstellar",
		Description: "A crew travels through a wormhole.",
		Duration:    169,
		Language:    "English",
		ReleaseDate: &releaseDate,
		GenreIDs:    []string{genre.ID.String()},
	})

	require.NoError(t, err)
	assert.Equal(t, "Interstellar", resp.Title)
	assert.Equal(t, 169, resp.Duration)
	require.NotNil(t, resp.ReleaseDate)
	assert.Equal(t, "2026-11-20", *resp.ReleaseDate)
	require.Len(t, resp.Genres, 1)
	assert.Equal(t, "Drama", resp.Genres[0].Name)
}

func TestCreateMovie_TitleTaken(t *testing.T) {
	movieRepo := mocks.NewMovieRepository(t)

	repo := &repository.Repository{Movie: movieRepo}
	service := usecase.NewMovieService(repo, zap.NewNop())

	ctx := context.Background()
	existing := &entity.Movie{
		Base:  entity.Base{ID: uuid.New()},
		Title: "Interstellar",
	}

	movieRepo.On("FindByTitle", ctx, "Interstellar").Return(existing, nil)

	_, err := service.CreateMovie(ctx, &request.CreateMovieRequest{
		Title:    "Interstellar",
		Duration: 169,
		Language: "English",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateMovie_GenreNotFound(t *testing.T) {
	movieRepo := mocks.NewMovieRepository(t)
	genreRepo := mocks.NewGenreRepository(t)

	repo := &repository.Repository{Movie: movieRepo, Genre: genreRepo}
	service := usecase.NewMovieService(repo, zap.NewNop())

	ctx := context.Background()
	genreID := uuid.New()

	movieRepo.On("FindByTitle", ctx, "Interstellar").Return(nil, nil)
	genreRepo.On("FindByID", ctx, genreID).Return(nil, nil)

	_, err := service.CreateMovie(ctx, &request.CreateMovieRequest{
		Title:    "Interstellar",
		Duration: 169,
		Language: "English",
		GenreIDs: []string{genreID.String()},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "genre "+genreID.String()+" not found")
}

func TestUpdateMovie_MergesOnlyProvidedFields(t *testing.T) {
	movieRepo := mocks.NewMovieRepository(t)
	genreRepo := mocks.NewGenreRepository(t)

	repo := &repository.Repository{Movie: movieRepo, Genre: genreRepo}
	service := usecase.NewMovieService(repo, zap.NewNop())

	ctx := context.Background()
	movie := &entity.Movie{
		Base:     entity.Base{ID: uuid.New()},
		Title:    "Interstellar",
		Duration: 169,
		Language: "English",
	}
	newDuration := 175

	movieRepo.On("FindByID", ctx, movie.ID).Return(movie, nil)
	movieRepo.On("Update", ctx, mock.AnythingOfType("*entity.Movie"), []uuid.UUID(nil)).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.Movie)
			assert.Equal(t, "Interstellar", updated.Title)
			assert.Equal(t, 175, updated.Duration)
			assert.Equal(t, "English", updated.Language)
		}).
		Return(nil)
	genreRepo.On("FindByMovieID", ctx, movie.ID).Return(nil, nil)

	resp, err := service.UpdateMovie(ctx, movie.ID.String(), &request.UpdateMovieRequest{
		Duration: &newDuration,
	})

	require.NoError(t, err)
	assert.Equal(t, 175, resp.Duration)
}
