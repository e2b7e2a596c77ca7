package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cinelog/movie-api/internal/apperr"
	"github.com/cinelog/movie-api/internal/cache"
	"github.com/cinelog/movie-api/internal/dto"
	"github.com/cinelog/movie-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	movieListKeyPrefix = "movies:"

	listCacheSliding  = 30 * time.Second
	listCacheAbsolute = 300 * time.Second
)

type MovieService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewMovieService(db *gorm.DB, c *cache.Cache) *MovieService {
	return &MovieService{db: db, cache: c}
}

func (s *MovieService) Create(ctx context.Context, req *dto.CreateMovieRequest) (*dto.MovieResponse, error) {
	movie, err := models.NewMovie(req.Title, req.Genre, req.ReleaseDate, req.Rating)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache()
	if err := s.db.WithContext(ctx).Create(movie).Error; err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	resp := toMovieResponse(movie)
	return &resp, nil
}

func (s *MovieService) GetByID(ctx context.Context, id uuid.UUID) (*dto.MovieResponse, error) {
	var movie models.Movie
	if err := s.db.WithContext(ctx).First(&movie, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Movie with id %s, not found.", id)
		}
		return nil, fmt.Errorf("failed to load movie: %w", err)
	}

	resp := toMovieResponse(&movie)
	return &resp, nil
}

// List returns one page of movies ordered by title then id, so pages
// stay stable when titles repeat. Pages are cached per (page, size) and
// every mutation drops all cached pages.
func (s *MovieService) List(ctx context.Context, page, pageSize int) (*dto.MoviePage, error) {
	key := fmt.Sprintf("%sp%d:s%d", movieListKeyPrefix, page, pageSize)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*dto.MoviePage), nil
	}
	slog.Debug("movie list cache miss", "key", key)

	var totalCount int64
	if err := s.db.WithContext(ctx).Model(&models.Movie{}).Count(&totalCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count movies: %w", err)
	}

	var movies []models.Movie
	err := s.db.WithContext(ctx).
		Order("title ASC, id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&movies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	items := make([]dto.MovieResponse, 0, len(movies))
	for i := range movies {
		items = append(items, toMovieResponse(&movies[i]))
	}

	result := &dto.MoviePage{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(pageSize))),
	}

	s.cache.Set(key, result, listCacheSliding, listCacheAbsolute)
	return result, nil
}

// Update applies the fields present in req and keeps the rest. The whole
// operation validates before any field changes.
func (s *MovieService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMovieRequest) error {
	var movie models.Movie
	if err := s.db.WithContext(ctx).First(&movie, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Movie with id %s, not found.", id)
		}
		return fmt.Errorf("failed to load movie: %w", err)
	}

	title := movie.Title
	if req.Title != nil {
		title = *req.Title
	}
	genre := movie.Genre
	if req.Genre != nil {
		genre = *req.Genre
	}
	releaseDate := movie.ReleaseDate
	if req.ReleaseDate != nil {
		releaseDate = *req.ReleaseDate
	}
	rating := movie.Rating
	if req.Rating != nil {
		rating = *req.Rating
	}

	if err := movie.Update(title, genre, releaseDate, rating); err != nil {
		return err
	}

	s.invalidateListCache()
	if err := s.db.WithContext(ctx).Save(&movie).Error; err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}
	return nil
}

func (s *MovieService) Delete(ctx context.Context, id uuid.UUID) error {
	var movie models.Movie
	if err := s.db.WithContext(ctx).First(&movie, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Movie with id %s, not found.", id)
		}
		return fmt.Errorf("failed to load movie: %w", err)
	}

	s.invalidateListCache()
	if err := s.db.WithContext(ctx).Delete(&movie).Error; err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	return nil
}

func (s *MovieService) invalidateListCache() {
	slog.Debug("invalidating movie list cache")
	s.cache.DeletePrefix(movieListKeyPrefix)
}

func toMovieResponse(m *models.Movie) dto.MovieResponse {
	return dto.MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		ReleaseDate: m.ReleaseDate,
		Rating:      m.Rating,
	}
}
