// Package store holds the in-memory collection for a session and keeps it
// in step with the persistence gateway.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/shoppinglist/internal/metrics"
	"github.com/mmynk/shoppinglist/internal/models"
	"github.com/mmynk/shoppinglist/internal/storage"
)

// ErrPersistence wraps every gateway failure. The store state is unchanged
// when it is returned.
var ErrPersistence = errors.New("persistence failed")

// MutateFunc computes the next collection from the current one.
type MutateFunc func(current models.Collection) (models.Collection, error)

// Store is the single source of truth for the lists of one session.
// Commands are applied one at a time.
type Store struct {
	gateway storage.Gateway
	seed    func() models.Collection
	logger  *slog.Logger

	mu      sync.Mutex
	current models.Collection
}

// Option configures a Store.
type Option func(*Store)

// WithSeed sets the collection used when the gateway has nothing stored.
// Passing nil disables seeding; the store then starts empty.
func WithSeed(seed func() models.Collection) Option {
	return func(s *Store) {
		s.seed = seed
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store backed by gateway. Call Open before use.
func New(gateway storage.Gateway, opts ...Option) *Store {
	s := &Store{
		gateway: gateway,
		seed:    models.DefaultCollection,
		logger:  slog.Default(),
		current: models.Collection{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the collection from the gateway. When nothing has been
// persisted yet, the seed collection is installed and saved immediately.
func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.gateway.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNoSnapshot):
		c = models.Collection{}
		if s.seed != nil {
			c = s.seed()
		}
		if err := s.save(ctx, "Seed", models.Collection{}, c); err != nil {
			return err
		}
		s.logger.Info("List store seeded", "lists", len(c))
	case err != nil:
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	default:
		s.logger.Info("List store loaded", "lists", len(c))
	}

	s.replace(c)
	return nil
}

// Reload replaces the in-memory collection with what the gateway holds.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.gateway.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	s.replace(c)
	return nil
}

// Snapshot returns a copy of the current collection.
func (s *Store) Snapshot() models.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Apply runs one command. If fn rejects the command, or the gateway fails to
// persist the result, the store keeps its previous collection and the error
// is returned. A command that changes nothing is not persisted.
func (s *Store) Apply(ctx context.Context, op string, fn MutateFunc) (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.current.Clone())
	if err != nil {
		metrics.ObserveCommand(op, metrics.ResultRejected)
		s.logger.Debug("Command rejected", "op", op, "error", err)
		return s.current.Clone(), err
	}

	if next.Equal(s.current) {
		metrics.ObserveCommand(op, metrics.ResultNoop)
		return s.current.Clone(), nil
	}

	if err := s.save(ctx, op, s.current, next); err != nil {
		metrics.ObserveCommand(op, metrics.ResultFailed)
		return s.current.Clone(), err
	}

	s.replace(next)
	metrics.ObserveCommand(op, metrics.ResultOK)
	return s.current.Clone(), nil
}

func (s *Store) save(ctx context.Context, op string, prev, next models.Collection) error {
	timer := prometheus.NewTimer(metrics.PersistDuration.WithLabelValues(op))
	defer timer.ObserveDuration()

	if err := s.gateway.Save(ctx, prev, next); err != nil {
		s.logger.Error("Failed to persist collection", "op", op, "error", err)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func (s *Store) replace(c models.Collection) {
	s.current = c.Clone()
	metrics.ListsGauge.Set(float64(len(s.current)))
}
