package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/aldente/internal/core/catalog"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom_pasta.json")
	return New(path), path
}

func TestStore_LoadMissingFile(t *testing.T) {
	s, _ := testStore(t)

	custom, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, custom)
}

func TestStore_SaveLoad(t *testing.T) {
	s, _ := testStore(t)

	created := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	in := map[string]catalog.Pasta{
		"gnocchi": {Name: "Gnocchi", MinTime: 2, MaxTime: 4, Custom: true, UsageCount: 3, CreatedAt: created},
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)

	p := out["gnocchi"]
	assert.Equal(t, "Gnocchi", p.Name)
	assert.Equal(t, 2, p.MinTime)
	assert.Equal(t, 4, p.MaxTime)
	assert.Equal(t, 3, p.UsageCount)
	assert.True(t, p.Custom)
	assert.True(t, p.CreatedAt.Equal(created))
}

func TestStore_FileFormat(t *testing.T) {
	s, path := testStore(t)

	require.NoError(t, s.Save(map[string]catalog.Pasta{
		"gnocchi": {Name: "Gnocchi", MinTime: 2, MaxTime: 4, Custom: true},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "custom_pasta")
	require.Contains(t, raw, "metadata")

	var meta struct {
		Version     string    `json:"version"`
		LastUpdated time.Time `json:"last_updated"`
	}
	require.NoError(t, json.Unmarshal(raw["metadata"], &meta))
	assert.Equal(t, "1.0", meta.Version)
	assert.WithinDuration(t, time.Now(), meta.LastUpdated, time.Minute)

	var records map[string]struct {
		Name    string `json:"name"`
		MinTime int    `json:"min_time"`
		MaxTime int    `json:"max_time"`
	}
	require.NoError(t, json.Unmarshal(raw["custom_pasta"], &records))
	assert.Equal(t, "Gnocchi", records["gnocchi"].Name)
}

func TestStore_BackupOnSave(t *testing.T) {
	s, path := testStore(t)

	require.NoError(t, s.Save(map[string]catalog.Pasta{
		"gnocchi": {Name: "Gnocchi", MinTime: 2, MaxTime: 4},
	}))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.Save(map[string]catalog.Pasta{}))

	backup, err := os.ReadFile(path + ".backup")
	require.NoError(t, err)
	assert.Equal(t, first, backup, "backup holds the previous file contents")

	custom, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, custom)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	s, path := testStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := s.Load()
	assert.Error(t, err)
}

func TestStore_LoadEmptyFile(t *testing.T) {
	s, path := testStore(t)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	custom, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, custom)
}
