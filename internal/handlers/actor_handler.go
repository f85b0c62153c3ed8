package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ActorsMoviesAPI/internal/models"
)

type ActorHandler struct {
	ActorService ActorService
}

func NewActorHandler(service ActorService) *ActorHandler {
	return &ActorHandler{ActorService: service}
}

func (h *ActorHandler) GetActors(ctx *gin.Context) {
	actors, err := h.ActorService.GetAllActors(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	if actors == nil {
		actors = []models.Actor{}
	}
	ctx.JSON(http.StatusOK, actors)
}

func (h *ActorHandler) GetActorByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		_ = ctx.Error(models.ErrActorNotFound)
		return
	}
	actor, err := h.ActorService.GetActorByID(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, actor)
}

func (h *ActorHandler) CreateActor(ctx *gin.Context) {
	var input models.ActorInput
	if !bindJSON(ctx, &input) {
		return
	}
	actor, err := h.ActorService.CreateActor(ctx.Request.Context(), input)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusCreated, actor)
}

func (h *ActorHandler) UpdateActor(ctx *gin.Context) {
	var input models.ActorInput
	if !bindJSON(ctx, &input) {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		_ = ctx.Error(models.ErrActorNotFound)
		return
	}
	actor, err := h.ActorService.UpdateActor(ctx.Request.Context(), id, input)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, actor)
}

func (h *ActorHandler) DeleteActor(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		_ = ctx.Error(models.ErrActorNotFound)
		return
	}
	if err := h.ActorService.DeleteActor(ctx.Request.Context(), id); err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
