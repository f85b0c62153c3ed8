package models

import "ActorsMoviesAPI/pkg/utils"

type Movie struct {
	ID           int64            `json:"id" db:"id"`
	Title        string           `json:"title" db:"title"`
	CreationDate utils.CustomDate `json:"creation_date" db:"creation_date"`
	ActorID      int64            `json:"actor_id" db:"actor_id"`
}

// MovieInput is the request body for creating a movie.
type MovieInput struct {
	Title        string            `json:"title" binding:"required,max=255"`
	CreationDate *utils.CustomDate `json:"creationDate" binding:"required"`
	ActorID      int64             `json:"actorId" binding:"required,gt=0"`
}
