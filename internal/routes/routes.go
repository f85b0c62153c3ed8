package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"

	"ActorsMoviesAPI/config"
	"ActorsMoviesAPI/internal/handlers"
	"ActorsMoviesAPI/internal/middleware"
)

func SetupRouter(logger logr.Logger, rateLimit config.RateLimitConfig, actorHandler *handlers.ActorHandler, movieHandler *handlers.MovieHandler) *gin.Engine {
	middleware.RegisterJSONFieldNames()

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(),
		middleware.ErrorHandler(),
		middleware.RateLimit(rateLimit.RPS, rateLimit.Burst),
	)
	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	r.GET("/actors", actorHandler.GetActors)
	r.GET("/actors/:id", actorHandler.GetActorByID)
	r.POST("/actors", actorHandler.CreateActor)
	r.PUT("/actors/:id", actorHandler.UpdateActor)
	r.DELETE("/actors/:id", actorHandler.DeleteActor)

	r.GET("/movies", movieHandler.GetMovies)
	r.GET("/movies/:id", movieHandler.GetMovieByID)
	r.POST("/movies", movieHandler.CreateMovie)

	return r
}
