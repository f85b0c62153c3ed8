package models

import "ActorsMoviesAPI/pkg/utils"

type Actor struct {
	ID          int64            `json:"id" db:"id"`
	FirstName   string           `json:"first_name" db:"first_name"`
	LastName    string           `json:"last_name" db:"last_name"`
	DateOfBirth utils.CustomDate `json:"date_of_birth" db:"date_of_birth"`
}

// ActorInput is the request body for creating or replacing an actor.
type ActorInput struct {
	FirstName   string            `json:"firstName" binding:"required,max=255"`
	LastName    string            `json:"lastName" binding:"required,max=255"`
	DateOfBirth *utils.CustomDate `json:"dateOfBirth" binding:"required"`
}
