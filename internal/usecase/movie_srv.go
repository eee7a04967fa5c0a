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

type MovieService interface {
	ListMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.UpdateMovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error

	ListGenres(ctx context.Context) ([]response.GenreResponse, error)
	CreateGenre(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	movies, err := s.repo.Movie.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("failed to list movies")
	}

	total, err := s.repo.Movie.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, fmt.Errorf("failed to list movies")
	}

	items := make([]response.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		items = append(items, response.MovieToResponse(movie, nil))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *movieService) GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("failed to find movie")
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s not found", movieID)
	}

	genres, err := s.repo.Genre.FindByMovieID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load movie genres", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("failed to find movie")
	}

	list := make([]entity.Genre, 0, len(genres))
	for _, g := range genres {
		list = append(list, *g)
	}

	resp := response.MovieToResponse(movie, list)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Movie.FindByTitle(ctx, req.Title)
	if err != nil {
		s.log.Error("Failed to check title", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to check title")
	}
	if existing != nil {
		return nil, fmt.Errorf("movie title already exists")
	}

	genreIDs, err := s.parseGenreIDs(ctx, req.GenreIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		Rating:      req.Rating,
		Duration:    req.Duration,
		Language:    req.Language,
	}
	if req.ReleaseDate != nil {
		date, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid release date format %s", *req.ReleaseDate)
		}
		movie.ReleaseDate = &date
	}

	if err := s.repo.Movie.Create(ctx, movie, genreIDs); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create movie")
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title))

	return s.GetMovie(ctx, movie.ID.String())
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.UpdateMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("failed to find movie")
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s not found", movieID)
	}

	if req.Title != nil && *req.Title != movie.Title {
		existing, err := s.repo.Movie.FindByTitle(ctx, *req.Title)
		if err != nil {
			s.log.Error("Failed to check title", zap.Error(err), zap.String("title", *req.Title))
			return nil, fmt.Errorf("failed to check title")
		}
		if existing != nil {
			return nil, fmt.Errorf("movie title already exists")
		}
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.Rating != nil {
		movie.Rating = req.Rating
	}
	if req.Duration != nil {
		movie.Duration = *req.Duration
	}
	if req.Language != nil {
		movie.Language = *req.Language
	}
	if req.ReleaseDate != nil {
		date, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid release date format %s", *req.ReleaseDate)
		}
		movie.ReleaseDate = &date
	}
	movie.UpdatedAt = time.Now()

	var genreIDs []uuid.UUID
	if req.GenreIDs != nil {
		genreIDs, err = s.parseGenreIDs(ctx, req.GenreIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.Movie.Update(ctx, movie, genreIDs); err != nil {
		s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("failed to update movie")
	}

	s.log.Info("Movie updated", zap.String("movie_id", movieID))

	return s.GetMovie(ctx, movieID)
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find movie", zap.Error(err), zap.String("movie_id", movieID))
		return fmt.Errorf("failed to find movie")
	}
	if movie == nil {
		return fmt.Errorf("movie %s not found", movieID)
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", movieID))
		return fmt.Errorf("failed to delete movie")
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}

func (s *movieService) ListGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list genres", zap.Error(err))
		return nil, fmt.Errorf("failed to list genres")
	}

	items := make([]response.GenreResponse, 0, len(genres))
	for _, genre := range genres {
		items = append(items, response.GenreToResponse(genre))
	}
	return items, nil
}

func (s *movieService) CreateGenre(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
	}

	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		s.log.Error("Failed to create genre", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create genre")
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

// parseGenreIDs converts and verifies each id against the genres table so a
// bad reference fails before the movie insert starts.
func (s *movieService) parseGenreIDs(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, idStr := range raw {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid genre ID format %s: %w", idStr, err)
		}
		genre, err := s.repo.Genre.FindByID(ctx, id)
		if err != nil {
			s.log.Error("Failed to check genre", zap.Error(err), zap.String("genre_id", idStr))
			return nil, fmt.Errorf("failed to check genre")
		}
		if genre == nil {
			return nil, fmt.Errorf("genre %s not found", idStr)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
