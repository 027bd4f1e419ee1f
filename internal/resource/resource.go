// Package resource generalizes the load phase every page shares: fan
// out the reads, join before rendering, fail as a unit. It replaces the
// per-page loading/error/data triplets of the original screens.
package resource

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Task is one named read in a page load.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// FetchAll runs every task concurrently and joins them. The first
// failure cancels the rest and becomes the single page-level error;
// partial results are never rendered.
func FetchAll(ctx context.Context, tasks ...Task) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		run := task.Run
		g.Go(func() error {
			return run(ctx)
		})
	}
	return g.Wait()
}

// Single caches one shared fetch (holiday lists and other data that is
// identical for every session). Concurrent loads collapse into one
// upstream call; a cached value is served until the TTL lapses.
type Single[T any] struct {
	fetch func(ctx context.Context) (T, error)
	ttl   time.Duration

	sf singleflight.Group

	mu        sync.Mutex
	val       T
	fetchedAt time.Time
	ok        bool
}

func NewSingle[T any](fetch func(ctx context.Context) (T, error), ttl time.Duration) *Single[T] {
	return &Single[T]{fetch: fetch, ttl: ttl}
}

func (s *Single[T]) Load(ctx context.Context) (T, error) {
	s.mu.Lock()
	if s.ok && time.Since(s.fetchedAt) < s.ttl {
		val := s.val
		s.mu.Unlock()
		return val, nil
	}
	s.mu.Unlock()

	return s.load(ctx)
}

// Refresh drops the cached value and fetches again. Used by the
// explicit refresh actions; nothing here retries automatically.
func (s *Single[T]) Refresh(ctx context.Context) (T, error) {
	s.mu.Lock()
	s.ok = false
	s.mu.Unlock()

	return s.load(ctx)
}

func (s *Single[T]) load(ctx context.Context) (T, error) {
	v, err, _ := s.sf.Do("load", func() (any, error) {
		val, err := s.fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.val = val
		s.fetchedAt = time.Now()
		s.ok = true
		s.mu.Unlock()
		return val, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
