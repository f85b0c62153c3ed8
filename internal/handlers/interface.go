package handlers

import (
	"context"

	"ActorsMoviesAPI/internal/models"
)

type ActorService interface {
	GetAllActors(ctx context.Context) ([]models.Actor, error)
	GetActorByID(ctx context.Context, id int64) (models.Actor, error)
	CreateActor(ctx context.Context, input models.ActorInput) (models.Actor, error)
	UpdateActor(ctx context.Context, id int64, input models.ActorInput) (models.Actor, error)
	DeleteActor(ctx context.Context, id int64) error
}

type MovieService interface {
	GetAllMovies(ctx context.Context) ([]models.Movie, error)
	GetMovieByID(ctx context.Context, id int64) (models.Movie, error)
	CreateMovie(ctx context.Context, input models.MovieInput) (models.Movie, error)
}
