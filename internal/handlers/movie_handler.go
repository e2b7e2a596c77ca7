package handlers

import (
	"github.com/cinelog/movie-api/internal/apperr"
	"github.com/cinelog/movie-api/internal/config"
	"github.com/cinelog/movie-api/internal/dto"
	"github.com/cinelog/movie-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MovieHandler struct {
	service *services.MovieService
	cfg     *config.Config
}

func NewMovieHandler(service *services.MovieService, cfg *config.Config) *MovieHandler {
	return &MovieHandler{service: service, cfg: cfg}
}

func (h *MovieHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}

	movie, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}

	c.Location("/api/movies/" + movie.ID.String())
	return c.Status(fiber.StatusCreated).JSON(movie)
}

func (h *MovieHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("currentPage", 1)
	if page < 1 {
		page = 1
	}
	pageSize := c.QueryInt("pageSize", h.cfg.DefaultPageSize)
	if pageSize < 1 {
		pageSize = h.cfg.DefaultPageSize
	}
	if pageSize > h.cfg.MaxPageSize {
		pageSize = h.cfg.MaxPageSize
	}

	result, err := h.service.List(c.UserContext(), page, pageSize)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *MovieHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.Validation("Invalid movie id: %s", c.Params("id"))
	}

	movie, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(movie)
}

func (h *MovieHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.Validation("Invalid movie id: %s", c.Params("id"))
	}

	var req dto.UpdateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}

	if err := h.service.Update(c.UserContext(), id, &req); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MovieHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.Validation("Invalid movie id: %s", c.Params("id"))
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
