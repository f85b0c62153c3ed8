package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"ActorsMoviesAPI/internal/database"
	"ActorsMoviesAPI/internal/models"
)

const (
	actorColumns = "id, first_name, last_name, date_of_birth"

	selectActorsSQL    = "SELECT " + actorColumns + " FROM actors"
	selectActorByIDSQL = "SELECT " + actorColumns + " FROM actors WHERE id = $1"
	insertActorSQL     = "INSERT INTO actors (first_name, last_name, date_of_birth) VALUES ($1, $2, $3) RETURNING " + actorColumns
	updateActorSQL     = "UPDATE actors SET first_name = $1, last_name = $2, date_of_birth = $3 WHERE id = $4 RETURNING " + actorColumns
	deleteActorSQL     = "DELETE FROM actors WHERE id = $1 RETURNING " + actorColumns
)

var scanActor = pgx.RowToStructByName[models.Actor]

type ActorRepository struct {
	DB database.DBTX
}

func NewActorRepository(db database.DBTX) *ActorRepository {
	return &ActorRepository{DB: db}
}

func (r *ActorRepository) GetAllActors(ctx context.Context) ([]models.Actor, error) {
	actors, err := database.QueryRows(ctx, r.DB, selectActorsSQL, nil, scanActor)
	if err != nil {
		return nil, fmt.Errorf("repositories.GetAllActors: %w", err)
	}
	return actors, nil
}

func (r *ActorRepository) GetActorByID(ctx context.Context, id int64) (models.Actor, error) {
	actor, err := database.QueryOne(ctx, r.DB, selectActorByIDSQL, []any{id}, scanActor)
	return actor, actorErr("repositories.GetActorByID", err)
}

func (r *ActorRepository) CreateActor(ctx context.Context, actor models.Actor) (models.Actor, error) {
	created, err := database.QueryOne(ctx, r.DB, insertActorSQL,
		[]any{actor.FirstName, actor.LastName, actor.DateOfBirth}, scanActor)
	if err != nil {
		return models.Actor{}, fmt.Errorf("repositories.CreateActor: %w", err)
	}
	return created, nil
}

func (r *ActorRepository) UpdateActor(ctx context.Context, actor models.Actor) (models.Actor, error) {
	updated, err := database.QueryOne(ctx, r.DB, updateActorSQL,
		[]any{actor.FirstName, actor.LastName, actor.DateOfBirth, actor.ID}, scanActor)
	return updated, actorErr("repositories.UpdateActor", err)
}

// DeleteActor removes the actor and returns the row as it was.
func (r *ActorRepository) DeleteActor(ctx context.Context, id int64) (models.Actor, error) {
	deleted, err := database.QueryOne(ctx, r.DB, deleteActorSQL, []any{id}, scanActor)
	return deleted, actorErr("repositories.DeleteActor", err)
}

func actorErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrNoRows):
		return fmt.Errorf("%s: %w", op, models.ErrActorNotFound)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
