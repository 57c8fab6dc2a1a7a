package records

import (
	"errors"
	"fmt"
	"sync"

	"github.com/claude/allblack/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by Update and Remove for an unknown ID. The
	// collection is left untouched.
	ErrNotFound = errors.New("test record not found")
	// ErrDuplicateID is returned by Add when the ID is already stored.
	ErrDuplicateID = errors.New("test record id already exists")
)

// Summary is the header of the test history.
type Summary struct {
	Count      int      `json:"count"`
	BestVO2max *float64 `json:"best_vo2max"`
}

// Display renders BestVO2max with one decimal, or "-" when there is no data.
func (s Summary) Display() string {
	if s.BestVO2max == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *s.BestVO2max)
}

// Store is an ordered, newest-first collection of test records. It is safe
// for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records []models.TestRecord
	newID   func() string
}

// NewStore creates an empty store that assigns UUIDs to created records.
func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// Create validates the input, assigns a fresh ID and prepends the record.
func (s *Store) Create(in models.TestInput) (models.TestRecord, error) {
	rec, err := NewRecord(in, s.newID())
	if err != nil {
		return models.TestRecord{}, err
	}
	if err := s.Add(rec); err != nil {
		return models.TestRecord{}, err
	}
	return rec, nil
}

// Add prepends a record.
func (s *Store) Add(rec models.TestRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(rec.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
	}
	s.records = append([]models.TestRecord{rec}, s.records...)
	return nil
}

// Update recomputes the record with the given ID from the input and replaces
// it in place. The ID and the position are preserved.
func (s *Store) Update(id string, in models.TestInput) (models.TestRecord, error) {
	rec, err := NewRecord(in, id)
	if err != nil {
		return models.TestRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.TestRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.records[i] = rec
	return rec, nil
}

// Remove deletes the record with the given ID.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.records = append(s.records[:i:i], s.records[i+1:]...)
	return nil
}

// Get returns the record with the given ID.
func (s *Store) Get(id string) (models.TestRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.records[i], true
	}
	return models.TestRecord{}, false
}

// Latest returns the most recently added record.
func (s *Store) Latest() (models.TestRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		return models.TestRecord{}, false
	}
	return s.records[0], true
}

// List returns a copy of all records, newest first.
func (s *Store) List() []models.TestRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TestRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Summary returns the record count and the best VO2max.
func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := Summary{Count: len(s.records)}
	for i := range s.records {
		v := s.records[i].VO2max
		if sum.BestVO2max == nil || v > *sum.BestVO2max {
			sum.BestVO2max = &v
		}
	}
	return sum
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) indexOf(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

// sampleTests are the tests shipped with the app, oldest first.
var sampleTests = []struct {
	id string
	in models.TestInput
}{
	{"3", models.TestInput{Distance: "21k", Time: "1:45:00", Date: "20 Ago 2023", Weight: "74"}},
	{"2", models.TestInput{Distance: "5k", Time: "23:15", Date: "05 Set 2023", Weight: "73"}},
	{"1", models.TestInput{Distance: "10k", Time: "48:30", Date: "12 Out 2023", Weight: "72"}},
}

// Seed loads the sample tests. Derived fields are computed with the current
// formulas.
func (s *Store) Seed() error {
	for _, t := range sampleTests {
		rec, err := NewRecord(t.in, t.id)
		if err != nil {
			return fmt.Errorf("seeding test %s: %w", t.id, err)
		}
		if err := s.Add(rec); err != nil {
			return fmt.Errorf("seeding test %s: %w", t.id, err)
		}
	}
	return nil
}
