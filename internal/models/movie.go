package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cinelog/movie-api/internal/apperr"
	"github.com/google/uuid"
)

// Movie is only constructed through NewMovie so an invalid record can
// never reach the database.
type Movie struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"size:200;not null;index" json:"title"`
	Genre        string    `gorm:"size:100;not null" json:"genre"`
	ReleaseDate  time.Time `gorm:"not null" json:"releaseDate"`
	Rating       float64   `gorm:"not null" json:"rating"`
	Created      time.Time `gorm:"not null" json:"created"`
	LastModified time.Time `gorm:"not null" json:"lastModified"`
}

func NewMovie(title, genre string, releaseDate time.Time, rating float64) (*Movie, error) {
	if err := validateMovie(title, genre, rating); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Movie{
		ID:           uuid.New(),
		Title:        title,
		Genre:        genre,
		ReleaseDate:  releaseDate,
		Rating:       rating,
		Created:      now,
		LastModified: now,
	}, nil
}

// Update validates first so a failed update leaves the movie untouched.
func (m *Movie) Update(title, genre string, releaseDate time.Time, rating float64) error {
	if err := validateMovie(title, genre, rating); err != nil {
		return err
	}
	m.Title = title
	m.Genre = genre
	m.ReleaseDate = releaseDate
	m.Rating = rating
	m.LastModified = time.Now().UTC()
	return nil
}

func validateMovie(title, genre string, rating float64) error {
	if strings.TrimSpace(title) == "" {
		return apperr.Validation("Title cannot be null or whitespace")
	}
	if utf8.RuneCountInString(title) > 200 {
		return apperr.Validation("Title cannot be longer than 200 characters")
	}
	if strings.TrimSpace(genre) == "" {
		return apperr.Validation("Genre cannot be null or whitespace")
	}
	if utf8.RuneCountInString(genre) > 100 {
		return apperr.Validation("Genre cannot be longer than 100 characters")
	}
	if rating < 0 || rating > 10 {
		return apperr.Validation("Rating must be between 0 and 10")
	}
	return nil
}
