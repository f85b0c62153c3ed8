package services

import (
	"context"

	"ActorsMoviesAPI/internal/models"
)

type ActorRepository interface {
	GetAllActors(ctx context.Context) ([]models.Actor, error)
	GetActorByID(ctx context.Context, id int64) (models.Actor, error)
	CreateActor(ctx context.Context, actor models.Actor) (models.Actor, error)
	UpdateActor(ctx context.Context, actor models.Actor) (models.Actor, error)
	DeleteActor(ctx context.Context, id int64) (models.Actor, error)
}

type MovieRepository interface {
	GetAllMovies(ctx context.Context) ([]models.Movie, error)
	GetMovieByID(ctx context.Context, id int64) (models.Movie, error)
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
}
