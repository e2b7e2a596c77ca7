package models

import (
	"strings"
	"testing"
	"time"

	"github.com/cinelog/movie-api/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovie_ValidInputs(t *testing.T) {
	releaseDate := time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC)

	movie, err := NewMovie("Inception", "Sci-Fi", releaseDate, 8.8)

	require.NoError(t, err)
	assert.Equal(t, "Inception", movie.Title)
	assert.Equal(t, "Sci-Fi", movie.Genre)
	assert.Equal(t, releaseDate, movie.ReleaseDate)
	assert.Equal(t, 8.8, movie.Rating)
	assert.NotEqual(t, movie.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.False(t, movie.LastModified.Before(movie.Created))
}

func TestNewMovie_InvalidTitle(t *testing.T) {
	for _, title := range []string{"", " ", "\t "} {
		_, err := NewMovie(title, "Sci-Fi", time.Now(), 8.8)

		require.Error(t, err, "title %q", title)
		assert.True(t, apperr.IsValidation(err))
		assert.Contains(t, err.Error(), "Title cannot be null or whitespace")
	}
}

func TestNewMovie_InvalidGenre(t *testing.T) {
	_, err := NewMovie("Inception", "  ", time.Now(), 8.8)

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "Genre cannot be null or whitespace")
}

func TestNewMovie_InvalidRating(t *testing.T) {
	for _, rating := range []float64{-1, 10.1} {
		_, err := NewMovie("Inception", "Sci-Fi", time.Now(), rating)

		require.Error(t, err, "rating %v", rating)
		assert.True(t, apperr.IsValidation(err))
		assert.Contains(t, err.Error(), "Rating must be between 0 and 10")
	}
}

func TestNewMovie_LengthLimitsCountCharacters(t *testing.T) {
	// 150 two-byte characters: 300 bytes but well under the 200-char cap.
	title := strings.Repeat("ü", 150)
	movie, err := NewMovie(title, "Sci-Fi", time.Now(), 8.8)
	require.NoError(t, err)
	assert.Equal(t, title, movie.Title)

	_, err = NewMovie(strings.Repeat("ü", 201), "Sci-Fi", time.Now(), 8.8)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "Title cannot be longer than 200 characters")

	_, err = NewMovie("Inception", strings.Repeat("é", 101), time.Now(), 8.8)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "Genre cannot be longer than 100 characters")
}

func TestMovie_Update(t *testing.T) {
	movie, err := NewMovie("Original Title", "Original Genre", time.Now().UTC(), 5.0)
	require.NoError(t, err)
	before := movie.LastModified

	newDate := time.Now().UTC().AddDate(0, 0, 1)
	err = movie.Update("Updated Title", "Updated Genre", newDate, 9.0)

	require.NoError(t, err)
	assert.Equal(t, "Updated Title", movie.Title)
	assert.Equal(t, "Updated Genre", movie.Genre)
	assert.Equal(t, newDate, movie.ReleaseDate)
	assert.Equal(t, 9.0, movie.Rating)
	assert.False(t, movie.LastModified.Before(before))
}

func TestMovie_UpdateInvalidLeavesMovieUnchanged(t *testing.T) {
	movie, err := NewMovie("Original Title", "Original Genre", time.Now().UTC(), 5.0)
	require.NoError(t, err)
	lastModified := movie.LastModified

	err = movie.Update("", "Updated Genre", time.Now(), 11)

	require.Error(t, err)
	assert.Equal(t, "Original Title", movie.Title)
	assert.Equal(t, "Original Genre", movie.Genre)
	assert.Equal(t, 5.0, movie.Rating)
	assert.Equal(t, lastModified, movie.LastModified)
}
