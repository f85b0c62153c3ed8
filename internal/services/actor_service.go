package services

import (
	"context"
	"time"

	"ActorsMoviesAPI/internal/logging"
	"ActorsMoviesAPI/internal/models"
)

type ActorService struct {
	ActorRepo ActorRepository
	now       func() time.Time
}

func NewActorService(repo ActorRepository) *ActorService {
	return &ActorService{ActorRepo: repo, now: time.Now}
}

func (s *ActorService) GetAllActors(ctx context.Context) ([]models.Actor, error) {
	return s.ActorRepo.GetAllActors(ctx)
}

func (s *ActorService) GetActorByID(ctx context.Context, id int64) (models.Actor, error) {
	return s.ActorRepo.GetActorByID(ctx, id)
}

func (s *ActorService) CreateActor(ctx context.Context, input models.ActorInput) (models.Actor, error) {
	actor, err := s.toActor(input)
	if err != nil {
		return models.Actor{}, err
	}
	created, err := s.ActorRepo.CreateActor(ctx, actor)
	if err != nil {
		return models.Actor{}, err
	}
	logging.FromContext(ctx).V(logging.DEBUG).Info("Actor created", "actorID", created.ID)
	return created, nil
}

// UpdateActor replaces all mutable fields of the actor with the given id.
func (s *ActorService) UpdateActor(ctx context.Context, id int64, input models.ActorInput) (models.Actor, error) {
	actor, err := s.toActor(input)
	if err != nil {
		return models.Actor{}, err
	}
	actor.ID = id
	return s.ActorRepo.UpdateActor(ctx, actor)
}

func (s *ActorService) DeleteActor(ctx context.Context, id int64) error {
	deleted, err := s.ActorRepo.DeleteActor(ctx, id)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).V(logging.DEBUG).Info("Actor deleted",
		"actorID", deleted.ID, "firstName", deleted.FirstName, "lastName", deleted.LastName)
	return nil
}

// toActor applies the date of birth rule before anything touches the database.
func (s *ActorService) toActor(input models.ActorInput) (models.Actor, error) {
	if input.DateOfBirth == nil {
		return models.Actor{}, &models.Error{Kind: models.ErrValidation, Message: "Date of birth is required"}
	}
	if input.DateOfBirth.After(s.now()) {
		return models.Actor{}, models.ErrDateOfBirthInFuture
	}
	return models.Actor{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: *input.DateOfBirth,
	}, nil
}
