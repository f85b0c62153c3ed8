package services

import (
	"context"

	"ActorsMoviesAPI/internal/logging"
	"ActorsMoviesAPI/internal/models"
)

type MovieService struct {
	MovieRepo MovieRepository
}

func NewMovieService(repo MovieRepository) *MovieService {
	return &MovieService{MovieRepo: repo}
}

func (s *MovieService) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	return s.MovieRepo.GetAllMovies(ctx)
}

func (s *MovieService) GetMovieByID(ctx context.Context, id int64) (models.Movie, error) {
	return s.MovieRepo.GetMovieByID(ctx, id)
}

func (s *MovieService) CreateMovie(ctx context.Context, input models.MovieInput) (models.Movie, error) {
	if input.CreationDate == nil {
		return models.Movie{}, &models.Error{Kind: models.ErrValidation, Message: "Creation date is required"}
	}
	created, err := s.MovieRepo.CreateMovie(ctx, models.Movie{
		Title:        input.Title,
		CreationDate: *input.CreationDate,
		ActorID:      input.ActorID,
	})
	if err != nil {
		return models.Movie{}, err
	}
	logging.FromContext(ctx).V(logging.DEBUG).Info("Movie created", "movieID", created.ID, "actorID", created.ActorID)
	return created, nil
}
