package table

import (
	"fmt"

	"hrportal/internal/domain"
)

// Record is anything with a stable identifier.
type Record interface {
	ID() string
}

// Store holds the unfiltered records backing a screen. Not safe for
// concurrent use; callers hold their own lock.
type Store[T Record] struct {
	records []T
	index   map[string]int
}

func NewStore[T Record]() *Store[T] {
	return &Store[T]{index: map[string]int{}}
}

// Replace swaps the whole record set. Duplicate or empty ids are rejected and
// leave the store untouched.
func (s *Store[T]) Replace(records []T) error {
	index := make(map[string]int, len(records))
	for i, r := range records {
		id := r.ID()
		if id == "" {
			return domain.ValidationError{Field: "id", Msg: fmt.Sprintf("record %d has an empty id", i)}
		}
		if _, dup := index[id]; dup {
			return domain.ValidationError{Field: "id", Msg: fmt.Sprintf("duplicate record id %q", id)}
		}
		index[id] = i
	}
	s.records = append([]T(nil), records...)
	s.index = index
	return nil
}

// Remove drops the given ids and returns how many were present.
func (s *Store[T]) Remove(ids ...string) int {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			drop[id] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return 0
	}
	kept := s.records[:0:0]
	for _, r := range s.records {
		if _, gone := drop[r.ID()]; !gone {
			kept = append(kept, r)
		}
	}
	s.records = kept
	s.reindex()
	return len(drop)
}

func (s *Store[T]) reindex() {
	s.index = make(map[string]int, len(s.records))
	for i, r := range s.records {
		s.index[r.ID()] = i
	}
}

func (s *Store[T]) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Store[T]) Get(id string) (T, bool) {
	i, ok := s.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.records[i], true
}

// Records returns the records in store order. The slice must not be modified.
func (s *Store[T]) Records() []T { return s.records }

func (s *Store[T]) IDs() []string {
	out := make([]string, len(s.records))
	for i, r := range s.records {
		out[i] = r.ID()
	}
	return out
}

func (s *Store[T]) Len() int { return len(s.records) }
