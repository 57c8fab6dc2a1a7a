// Package prefs keeps the athlete's display name and completed workouts,
// writing changes through to a kv.Store in the background.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/claude/allblack/internal/kv"
	"github.com/claude/allblack/internal/metrics"
)

// Storage keys.
const (
	KeyUserName          = "@allblack:userName"
	KeyCompletedWorkouts = "@allblack:completedWorkouts"
)

// DefaultName is shown when no name has been set.
const DefaultName = "Atleta"

const writeTimeout = 5 * time.Second

// ErrClosed is reported to OnWrite for changes made after Close.
var ErrClosed = errors.New("preference store closed")

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for read and write failures.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithMetrics counts write results.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Store) { s.metrics = m }
}

// OnWrite registers a callback invoked from the writer goroutine after each
// write attempt.
func OnWrite(fn func(key string, err error)) Option {
	return func(s *Store) { s.onWrite = fn }
}

// Store is safe for concurrent use. Mutations update memory immediately;
// the durable write happens later on a single writer goroutine, so for each
// key the last change wins.
type Store struct {
	backend kv.Store
	log     *slog.Logger
	metrics *metrics.Manager
	onWrite func(key string, err error)

	mu        sync.RWMutex
	name      string
	completed map[string]struct{}
	pending   map[string]string
	closed    bool

	wake    chan struct{}
	flushes chan chan struct{}
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// New creates a store with default values and starts its writer. Call Load
// to read persisted values and Close to stop the writer.
func New(backend kv.Store, opts ...Option) *Store {
	s := &Store{
		backend:   backend,
		log:       slog.Default(),
		name:      DefaultName,
		completed: make(map[string]struct{}),
		pending:   make(map[string]string),
		wake:      make(chan struct{}, 1),
		flushes:   make(chan chan struct{}),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	for _, o := range opts {
		o(s)
	}
	go s.run()
	return s
}

// Load reads both keys. Missing or unreadable values leave the defaults in
// place; failures are logged, not returned.
func (s *Store) Load(ctx context.Context) {
	name := DefaultName
	if v, ok, err := s.backend.Get(ctx, KeyUserName); err != nil {
		s.log.Warn("reading preference", "key", KeyUserName, "error", err)
	} else if ok && strings.TrimSpace(v) != "" {
		name = strings.TrimSpace(v)
	}

	completed := make(map[string]struct{})
	if v, ok, err := s.backend.Get(ctx, KeyCompletedWorkouts); err != nil {
		s.log.Warn("reading preference", "key", KeyCompletedWorkouts, "error", err)
	} else if ok {
		var ids []string
		if err := json.Unmarshal([]byte(v), &ids); err != nil {
			s.log.Warn("decoding completed workouts", "error", err)
		} else {
			for _, id := range ids {
				completed[id] = struct{}{}
			}
		}
	}

	s.mu.Lock()
	s.name = name
	s.completed = completed
	s.mu.Unlock()
}

// Name returns the display name.
func (s *Store) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// SetName trims the name, falls back to DefaultName when it is empty and
// returns the stored value.
func (s *Store) SetName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}

	s.mu.Lock()
	s.name = name
	queued := s.enqueueLocked(KeyUserName, name)
	s.mu.Unlock()

	if !queued {
		s.report(KeyUserName, ErrClosed)
	}
	return name
}

// ToggleCompleted flips the membership of id and reports whether it is now
// completed.
func (s *Store) ToggleCompleted(id string) bool {
	s.mu.Lock()
	_, was := s.completed[id]
	if was {
		delete(s.completed, id)
	} else {
		s.completed[id] = struct{}{}
	}
	data, _ := json.Marshal(s.sortedLocked())
	queued := s.enqueueLocked(KeyCompletedWorkouts, string(data))
	s.mu.Unlock()

	if !queued {
		s.report(KeyCompletedWorkouts, ErrClosed)
	}
	return !was
}

// IsCompleted reports whether id is in the completed set.
func (s *Store) IsCompleted(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.completed[id]
	return ok
}

// Completed returns the completed workout ids, sorted.
func (s *Store) Completed() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked()
}

// Flush blocks until every change made before the call has been written.
func (s *Store) Flush(ctx context.Context) error {
	reply := make(chan struct{})
	select {
	case s.flushes <- reply:
	case <-s.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close writes outstanding changes and stops the writer. It does not close
// the backend.
func (s *Store) Close() error {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.done)
	})
	<-s.stopped
	return nil
}

func (s *Store) sortedLocked() []string {
	ids := make([]string, 0, len(s.completed))
	for id := range s.completed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// enqueueLocked records the latest value of key for the writer. It reports
// false once the store is closed.
func (s *Store) enqueueLocked(key, value string) bool {
	if s.closed {
		return false
	}
	s.pending[key] = value
	select {
	case s.wake <- struct{}{}:
	default:
	}
	return true
}

func (s *Store) run() {
	defer close(s.stopped)
	for {
		select {
		case <-s.wake:
			s.drain()
		case reply := <-s.flushes:
			s.drain()
			close(reply)
		case <-s.done:
			s.drain()
			return
		}
	}
}

// drain writes the latest pending value of every key, in key order.
func (s *Store) drain() {
	s.mu.Lock()
	batch := s.pending
	s.pending = make(map[string]string)
	s.mu.Unlock()

	keys := make([]string, 0, len(batch))
	for k := range batch {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := s.backend.Set(ctx, k, batch[k])
		cancel()
		if err != nil {
			err = fmt.Errorf("writing preference %s: %w", k, err)
			s.log.Error("preference write failed", "key", k, "error", err)
		}
		s.report(k, err)
	}
}

func (s *Store) report(key string, err error) {
	s.metrics.PrefWriteResult(err)
	if s.onWrite != nil {
		s.onWrite(key, err)
	}
}
