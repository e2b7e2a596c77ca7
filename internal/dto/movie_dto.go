package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMovieRequest struct {
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	ReleaseDate time.Time `json:"releaseDate"`
	Rating      float64   `json:"rating"`
}

// UpdateMovieRequest is a partial update: nil fields keep their current
// values.
type UpdateMovieRequest struct {
	Title       *string    `json:"title"`
	Genre       *string    `json:"genre"`
	ReleaseDate *time.Time `json:"releaseDate"`
	Rating      *float64   `json:"rating"`
}

type MovieResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	ReleaseDate time.Time `json:"releaseDate"`
	Rating      float64   `json:"rating"`
}

type MoviePage struct {
	Items      []MovieResponse `json:"items"`
	TotalCount int64           `json:"totalCount"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}
