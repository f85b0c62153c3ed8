package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ActorsMoviesAPI/internal/models"
	"ActorsMoviesAPI/pkg/utils"
)

var fixedNow = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

// fakeActorRepo keeps actors in memory and counts writes.
type fakeActorRepo struct {
	actors map[int64]models.Actor
	nextID int64
	writes int
	err    error
}

func newFakeActorRepo() *fakeActorRepo {
	return &fakeActorRepo{actors: map[int64]models.Actor{}, nextID: 1}
}

func (r *fakeActorRepo) GetAllActors(context.Context) ([]models.Actor, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Actor{}
	for id := int64(1); id < r.nextID; id++ {
		if a, ok := r.actors[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeActorRepo) GetActorByID(_ context.Context, id int64) (models.Actor, error) {
	if r.err != nil {
		return models.Actor{}, r.err
	}
	a, ok := r.actors[id]
	if !ok {
		return models.Actor{}, models.ErrActorNotFound
	}
	return a, nil
}

func (r *fakeActorRepo) CreateActor(_ context.Context, a models.Actor) (models.Actor, error) {
	r.writes++
	if r.err != nil {
		return models.Actor{}, r.err
	}
	a.ID = r.nextID
	r.nextID++
	r.actors[a.ID] = a
	return a, nil
}

func (r *fakeActorRepo) UpdateActor(_ context.Context, a models.Actor) (models.Actor, error) {
	r.writes++
	if _, ok := r.actors[a.ID]; !ok {
		return models.Actor{}, models.ErrActorNotFound
	}
	r.actors[a.ID] = a
	return a, nil
}

func (r *fakeActorRepo) DeleteActor(_ context.Context, id int64) (models.Actor, error) {
	r.writes++
	a, ok := r.actors[id]
	if !ok {
		return models.Actor{}, models.ErrActorNotFound
	}
	delete(r.actors, id)
	return a, nil
}

type fakeMovieRepo struct {
	actors  map[int64]bool
	created []models.Movie
	err     error
}

func (r *fakeMovieRepo) GetAllMovies(context.Context) ([]models.Movie, error) {
	return r.created, r.err
}

func (r *fakeMovieRepo) GetMovieByID(_ context.Context, id int64) (models.Movie, error) {
	for _, m := range r.created {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Movie{}, models.ErrMovieNotFound
}

func (r *fakeMovieRepo) CreateMovie(_ context.Context, m models.Movie) (models.Movie, error) {
	if r.err != nil {
		return models.Movie{}, r.err
	}
	if !r.actors[m.ActorID] {
		return models.Movie{}, models.ErrActorNotFound
	}
	m.ID = int64(len(r.created) + 1)
	r.created = append(r.created, m)
	return m, nil
}

func date(s string) *utils.CustomDate {
	d, err := utils.ParseCustomDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func newActorService(repo ActorRepository) *ActorService {
	s := NewActorService(repo)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestCreateActor(t *testing.T) {
	repo := newFakeActorRepo()
	svc := newActorService(repo)

	created, err := svc.CreateActor(context.Background(), models.ActorInput{
		FirstName: "Tom", LastName: "Hanks", DateOfBirth: date("1956-07-09"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.Actor{ID: 1, FirstName: "Tom", LastName: "Hanks", DateOfBirth: *date("1956-07-09")}, created)

	today, err := svc.CreateActor(context.Background(), models.ActorInput{
		FirstName: "Born", LastName: "Today", DateOfBirth: date("2026-10-15"),
	})
	require.NoError(t, err, "a birth date of today is allowed")
	assert.Equal(t, int64(2), today.ID)
}

func TestCreateActorRejectsFutureDateWithoutWriting(t *testing.T) {
	repo := newFakeActorRepo()
	svc := newActorService(repo)

	for _, dob := range []string{"2026-10-16", "2999-01-01"} {
		_, err := svc.CreateActor(context.Background(), models.ActorInput{
			FirstName: "X", LastName: "Y", DateOfBirth: date(dob),
		})
		assert.ErrorIs(t, err, models.ErrDateOfBirthInFuture, dob)
		assert.ErrorIs(t, err, models.ErrValidation, dob)
	}
	_, err := svc.CreateActor(context.Background(), models.ActorInput{FirstName: "X", LastName: "Y"})
	assert.ErrorIs(t, err, models.ErrValidation)

	assert.Zero(t, repo.writes)
}

func TestUpdateActor(t *testing.T) {
	repo := newFakeActorRepo()
	svc := newActorService(repo)
	ctx := context.Background()

	created, err := svc.CreateActor(ctx, models.ActorInput{FirstName: "Tom", LastName: "Hanks", DateOfBirth: date("1956-07-09")})
	require.NoError(t, err)

	updated, err := svc.UpdateActor(ctx, created.ID, models.ActorInput{FirstName: "Thomas", LastName: "Hanks", DateOfBirth: date("1956-07-09")})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Thomas", updated.FirstName)

	writes := repo.writes
	_, err = svc.UpdateActor(ctx, created.ID, models.ActorInput{FirstName: "X", LastName: "Y", DateOfBirth: date("2999-01-01")})
	assert.ErrorIs(t, err, models.ErrDateOfBirthInFuture)
	assert.Equal(t, writes, repo.writes, "no write for a rejected update")

	got, err := svc.GetActorByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Thomas", got.FirstName)

	_, err = svc.UpdateActor(ctx, 999, models.ActorInput{FirstName: "X", LastName: "Y", DateOfBirth: date("1990-01-01")})
	assert.ErrorIs(t, err, models.ErrActorNotFound)
}

func TestDeleteActorIsNotRepeatable(t *testing.T) {
	repo := newFakeActorRepo()
	svc := newActorService(repo)
	ctx := context.Background()

	created, err := svc.CreateActor(ctx, models.ActorInput{FirstName: "Tom", LastName: "Hanks", DateOfBirth: date("1956-07-09")})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteActor(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteActor(ctx, created.ID), models.ErrActorNotFound)
	assert.ErrorIs(t, svc.DeleteActor(ctx, created.ID), models.ErrActorNotFound)

	_, err = svc.GetActorByID(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrActorNotFound)

	all, err := svc.GetAllActors(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestActorServicePropagatesRepositoryErrors(t *testing.T) {
	boom := errors.New("connection refused")
	repo := newFakeActorRepo()
	repo.err = boom
	svc := newActorService(repo)

	_, err := svc.GetAllActors(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = svc.CreateActor(context.Background(), models.ActorInput{FirstName: "Tom", LastName: "Hanks", DateOfBirth: date("1956-07-09")})
	assert.ErrorIs(t, err, boom)
}

func TestCreateMovie(t *testing.T) {
	repo := &fakeMovieRepo{actors: map[int64]bool{1: true}}
	svc := NewMovieService(repo)
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, models.MovieInput{Title: "Forrest Gump", CreationDate: date("1994-07-06"), ActorID: 1})
	require.NoError(t, err)
	assert.Equal(t, models.Movie{ID: 1, Title: "Forrest Gump", CreationDate: *date("1994-07-06"), ActorID: 1}, created)

	got, err := svc.GetMovieByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetMovieByID(ctx, 42)
	assert.ErrorIs(t, err, models.ErrMovieNotFound)
}

func TestCreateMovieUnknownActor(t *testing.T) {
	repo := &fakeMovieRepo{actors: map[int64]bool{1: true}}
	svc := NewMovieService(repo)

	_, err := svc.CreateMovie(context.Background(), models.MovieInput{Title: "Ghost", CreationDate: date("2000-01-01"), ActorID: 7})
	assert.ErrorIs(t, err, models.ErrActorNotFound)
	assert.Empty(t, repo.created)

	_, err = svc.CreateMovie(context.Background(), models.MovieInput{Title: "Ghost", ActorID: 1})
	assert.ErrorIs(t, err, models.ErrValidation)

	all, err := svc.GetAllMovies(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
