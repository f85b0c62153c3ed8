package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ActorsMoviesAPI/internal/models"
)

type MovieHandler struct {
	MovieService MovieService
}

func NewMovieHandler(service MovieService) *MovieHandler {
	return &MovieHandler{MovieService: service}
}

func (h *MovieHandler) GetMovies(ctx *gin.Context) {
	movies, err := h.MovieService.GetAllMovies(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	ctx.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) GetMovieByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		_ = ctx.Error(models.ErrMovieNotFound)
		return
	}
	movie, err := h.MovieService.GetMovieByID(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) CreateMovie(ctx *gin.Context) {
	var input models.MovieInput
	if !bindJSON(ctx, &input) {
		return
	}
	movie, err := h.MovieService.CreateMovie(ctx.Request.Context(), input)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusCreated, movie)
}
