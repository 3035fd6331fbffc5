// Package jsonfile implements catalog.Store using a JSON file for
// persistence of custom pasta shapes.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/colonyops/aldente/internal/core/catalog"
)

const fileVersion = "1.0"

// pastaRecord is the on-disk representation of one custom shape.
type pastaRecord struct {
	Name        string    `json:"name"`
	MinTime     int       `json:"min_time"`
	MaxTime     int       `json:"max_time"`
	UsageCount  int       `json:"usage_count"`
	CreatedDate time.Time `json:"created_date"`
}

// metadata is the bookkeeping block stored alongside the records.
type metadata struct {
	Version     string    `json:"version"`
	LastUpdated time.Time `json:"last_updated"`
}

// pastaFile is the root JSON structure stored on disk.
type pastaFile struct {
	CustomPasta map[string]pastaRecord `json:"custom_pasta"`
	Metadata    metadata               `json:"metadata"`
}

// Store persists custom pasta shapes as a JSON file, keyed by lowercase
// name. Writes are atomic (tmp file + rename) and the previous file is
// kept as a .backup copy.
type Store struct {
	path string
	mu   sync.RWMutex
}

// New creates a store at the given path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads all custom shapes. A missing or empty file loads as an
// empty set.
func (s *Store) Load() (map[string]catalog.Pasta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}

	out := make(map[string]catalog.Pasta, len(file.CustomPasta))
	for key, rec := range file.CustomPasta {
		out[key] = catalog.Pasta{
			Name:       rec.Name,
			MinTime:    rec.MinTime,
			MaxTime:    rec.MaxTime,
			Custom:     true,
			UsageCount: rec.UsageCount,
			CreatedAt:  rec.CreatedDate,
		}
	}
	return out, nil
}

// Save writes the full custom set, replacing the previous contents.
func (s *Store) Save(custom map[string]catalog.Pasta) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file := pastaFile{
		CustomPasta: make(map[string]pastaRecord, len(custom)),
		Metadata: metadata{
			Version:     fileVersion,
			LastUpdated: time.Now(),
		},
	}
	for key, p := range custom {
		file.CustomPasta[key] = pastaRecord{
			Name:        p.Name,
			MinTime:     p.MinTime,
			MaxTime:     p.MaxTime,
			UsageCount:  p.UsageCount,
			CreatedDate: p.CreatedAt,
		}
	}

	return s.save(file)
}

func (s *Store) load() (pastaFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return pastaFile{}, nil
		}
		return pastaFile{}, err
	}

	if len(data) == 0 {
		return pastaFile{}, nil
	}

	var file pastaFile
	if err := json.Unmarshal(data, &file); err != nil {
		return pastaFile{}, err
	}
	return file, nil
}

func (s *Store) save(file pastaFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	// Keep the previous file as a backup; a failure here never blocks
	// the save itself.
	if prev, err := os.ReadFile(s.path); err == nil {
		_ = os.WriteFile(s.path+".backup", prev, 0o644)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
