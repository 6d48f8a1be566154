package repository

import (
	"context"
	"log/slog"
	"sync"

	"cinema-scheduler/internal/domain/movie"
	"cinema-scheduler/internal/infra"

	"github.com/google/uuid"
)

type MovieRepository struct {
	mu     sync.RWMutex
	movies map[uuid.UUID]*movie.Movie
	logger *slog.Logger
}

func NewMovieRepository(logger *slog.Logger) *MovieRepository {
	return &MovieRepository{
		movies: make(map[uuid.UUID]*movie.Movie),
		logger: logger,
	}
}

// Save overwrites an existing movie with the same id and logs a warning.
func (r *MovieRepository) Save(_ context.Context, m *movie.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.movies[m.ID()]; exists {
		r.logger.Warn("movie already exists, overriding", slog.String("movie_id", m.ID().String()))
	}
	r.movies[m.ID()] = m
	return nil
}

func (r *MovieRepository) FindByID(_ context.Context, id uuid.UUID) (*movie.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.movies[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "movie "+id.String()+" not found", nil)
	}
	return m, nil
}

