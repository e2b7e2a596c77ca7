package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/cinelog/movie-api/internal/apperr"
	"github.com/cinelog/movie-api/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movieBody(title string) dto.CreateMovieRequest {
	return dto.CreateMovieRequest{
		Title:       title,
		Genre:       "Sci-Fi",
		ReleaseDate: time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC),
		Rating:      8.8,
	}
}

func TestMovies_CreateAndGet(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/movies", movieBody("Inception"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "/api/movies/")

	var created dto.MovieResponse
	decode(t, resp, &created)
	assert.Equal(t, "Inception", created.Title)

	resp = doJSON(t, app, http.MethodGet, "/api/movies/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched dto.MovieResponse
	decode(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestMovies_CreateValidationProblem(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/movies", movieBody(" "))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var problem apperr.Problem
	decode(t, resp, &problem)
	assert.Equal(t, http.StatusBadRequest, problem.Status)
	assert.Equal(t, "Validation failed", problem.Title)
	assert.Equal(t, "validation_error", problem.Type)
	assert.Equal(t, "/api/movies", problem.Instance)
	assert.NotEmpty(t, problem.TraceID)
	assert.NotEmpty(t, problem.Timestamp)
	// development config: the message is surfaced
	assert.Contains(t, problem.Detail, "Title cannot be null or whitespace")
}

func TestMovies_GetUnknownIsProblem404(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/movies/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var problem apperr.Problem
	decode(t, resp, &problem)
	assert.Equal(t, "not_found", problem.Type)
	assert.Equal(t, "Resource not found", problem.Title)
}

func TestMovies_GetMalformedID(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/movies/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMovies_ListPagination(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 25; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/movies", movieBody(fmt.Sprintf("Movie %02d", i)))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/movies?currentPage=2&pageSize=10", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page dto.MoviePage
	decode(t, resp, &page)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, int64(25), page.TotalCount)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
}

func TestMovies_ListClampsPageSize(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/movies?currentPage=0&pageSize=500", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page dto.MoviePage
	decode(t, resp, &page)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 100, page.PageSize)
}

func TestMovies_UpdateAndDelete(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/movies", movieBody("Inception"))
	var created dto.MovieResponse
	decode(t, resp, &created)

	resp = doJSON(t, app, http.MethodPut, "/api/movies/"+created.ID.String(),
		map[string]interface{}{"rating": 9.1})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/movies/"+created.ID.String(), nil)
	var fetched dto.MovieResponse
	decode(t, resp, &fetched)
	assert.Equal(t, 9.1, fetched.Rating)
	assert.Equal(t, "Inception", fetched.Title)

	resp = doJSON(t, app, http.MethodDelete, "/api/movies/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/movies/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMovies_UpdateUnknownIs404(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/movies/"+uuid.NewString(),
		map[string]interface{}{"rating": 9.1})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/movies/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
