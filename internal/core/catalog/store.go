package catalog

import "errors"

// ErrNotFound is returned when a pasta shape does not exist.
var ErrNotFound = errors.New("pasta not found")

// Store persists custom pasta shapes, keyed by lowercase name.
type Store interface {
	Load() (map[string]Pasta, error)
	Save(custom map[string]Pasta) error
}

// MemoryStore is an in-memory Store for tests and ephemeral use.
type MemoryStore struct {
	custom map[string]Pasta
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{custom: make(map[string]Pasta)}
}

func (s *MemoryStore) Load() (map[string]Pasta, error) {
	out := make(map[string]Pasta, len(s.custom))
	for k, v := range s.custom {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore) Save(custom map[string]Pasta) error {
	s.custom = make(map[string]Pasta, len(custom))
	for k, v := range custom {
		s.custom[k] = v
	}
	return nil
}
