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
	movieColumns = "id, title, creation_date, actor_id"

	selectMoviesSQL    = "SELECT " + movieColumns + " FROM movies"
	selectMovieByIDSQL = "SELECT " + movieColumns + " FROM movies WHERE id = $1"
	insertMovieSQL     = "INSERT INTO movies (title, creation_date, actor_id) VALUES ($1, $2, $3) RETURNING " + movieColumns

	// FOR SHARE blocks a concurrent delete of the actor until the insert commits.
	lockActorSQL = "SELECT id FROM actors WHERE id = $1 FOR SHARE"
)

var scanMovie = pgx.RowToStructByName[models.Movie]

type MovieRepository struct {
	DB database.TxBeginner
}

func NewMovieRepository(db database.TxBeginner) *MovieRepository {
	return &MovieRepository{DB: db}
}

func (r *MovieRepository) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := database.QueryRows(ctx, r.DB, selectMoviesSQL, nil, scanMovie)
	if err != nil {
		return nil, fmt.Errorf("repositories.GetAllMovies: %w", err)
	}
	return movies, nil
}

func (r *MovieRepository) GetMovieByID(ctx context.Context, id int64) (models.Movie, error) {
	const op = "repositories.GetMovieByID"
	movie, err := database.QueryOne(ctx, r.DB, selectMovieByIDSQL, []any{id}, scanMovie)
	if errors.Is(err, database.ErrNoRows) {
		return movie, fmt.Errorf("%s: %w", op, models.ErrMovieNotFound)
	}
	if err != nil {
		return movie, fmt.Errorf("%s: %w", op, err)
	}
	return movie, nil
}

// CreateMovie checks that the referenced actor exists and inserts the movie
// in one transaction.
func (r *MovieRepository) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	const op = "repositories.CreateMovie"

	var created models.Movie
	err := database.InTx(ctx, r.DB, func(tx pgx.Tx) error {
		_, err := database.QueryOne(ctx, tx, lockActorSQL, []any{movie.ActorID}, pgx.RowTo[int64])
		if errors.Is(err, database.ErrNoRows) {
			return models.ErrActorNotFound
		}
		if err != nil {
			return err
		}

		created, err = database.QueryOne(ctx, tx, insertMovieSQL,
			[]any{movie.Title, movie.CreationDate, movie.ActorID}, scanMovie)
		return err
	})
	if database.IsForeignKeyViolation(err) {
		return models.Movie{}, fmt.Errorf("%s: %w", op, models.ErrActorNotFound)
	}
	if err != nil {
		return models.Movie{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}
