package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"carmarket/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var importTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNormalizeListing_DerivesStableID(t *testing.T) {
	a := &models.Listing{Name: " Onix LT ", Price: 45000, Year: 2019, Link: "https://x/onix"}
	b := &models.Listing{Name: "Onix LT renamed", Price: 46000, Year: 2019, Link: "https://x/onix"}

	require.NoError(t, normalizeListing(a, importTime))
	require.NoError(t, normalizeListing(b, importTime))

	assert.Equal(t, "Onix LT", a.Name)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, importTime, a.CreatedAt)
}

func TestNormalizeListing_KeepsGivenID(t *testing.T) {
	id := uuid.New()
	l := &models.Listing{ID: id, Name: "Gol", Year: 2012}

	require.NoError(t, normalizeListing(l, importTime))
	assert.Equal(t, id, l.ID)
}

func TestNormalizeListing_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		listing *models.Listing
	}{
		{"nil", nil},
		{"blank name", &models.Listing{Name: "  ", Year: 2015}},
		{"negative price", &models.Listing{Name: "Gol", Price: -1, Year: 2015}},
		{"negative mileage", &models.Listing{Name: "Gol", Mileage: -10, Year: 2015}},
		{"future year", &models.Listing{Name: "Gol", Year: 2030}},
		{"missing year", &models.Listing{Name: "Gol"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, normalizeListing(tt.listing, importTime))
		})
	}
}

func TestReadListings_SkipsInvalidRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "Onix LT", "price": 45000, "year": 2019},
		{"name": "", "price": 1000, "year": 2019},
		{"name": "Fit", "price": 52000, "year": 2016}
	]`), 0o644))

	listings, err := readListings(path, importTime, zaptest.NewLogger(t))

	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "Onix LT", listings[0].Name)
	assert.Equal(t, "Fit", listings[1].Name)
}

func TestReadListings_BundledCatalog(t *testing.T) {
	listings, err := readListings(filepath.Join("data", "listings.json"), importTime, zaptest.NewLogger(t))

	require.NoError(t, err)
	assert.NotEmpty(t, listings)

	seen := make(map[uuid.UUID]bool)
	for _, l := range listings {
		assert.False(t, seen[l.ID], "duplicate id for %s", l.Name)
		seen[l.ID] = true
	}
}

func TestExpandPatterns(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.json", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("[]"), 0o644))
	}

	files, err := expandPatterns([]string{filepath.Join(dir, "*.json"), filepath.Join(dir, "a.json")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")}, files)

	_, err = expandPatterns([]string{filepath.Join(dir, "*.csv")})
	assert.ErrorIs(t, err, errNoFiles)
}

func TestCache_RoundTripAndUnchanged(t *testing.T) {
	dir := t.TempDir()
	cacheFile := filepath.Join(dir, "cache.json")
	dataFile := filepath.Join(dir, "listings.json")
	require.NoError(t, os.WriteFile(dataFile, []byte(`[]`), 0o644))

	cache, err := loadCache(cacheFile)
	require.NoError(t, err)
	assert.Empty(t, cache.ImportedFiles)

	hash, err := calculateFileHash(dataFile)
	require.NoError(t, err)
	assert.Len(t, hash, 32)

	cache.ImportedFiles[dataFile] = ImportedFile{FilePath: dataFile, FileHash: hash, ImportedAt: importTime}
	require.NoError(t, saveCache(cacheFile, cache))

	reloaded, err := loadCache(cacheFile)
	require.NoError(t, err)
	assert.True(t, reloaded.Unchanged(dataFile, hash))

	require.NoError(t, os.WriteFile(dataFile, []byte(`[{"name":"Gol"}]`), 0o644))
	changed, err := calculateFileHash(dataFile)
	require.NoError(t, err)
	assert.False(t, reloaded.Unchanged(dataFile, changed))
}
