package main

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ImportedFile records a listings file that was loaded into the database.
type ImportedFile struct {
	FilePath   string    `json:"file_path"`
	FileHash   string    `json:"file_hash"`
	Listings   int       `json:"listings"`
	ImportedAt time.Time `json:"imported_at"`
}

type CacheData struct {
	ImportedFiles map[string]ImportedFile `json:"imported_files"` // key: file path
}

// Unchanged reports whether path was imported before with the same content hash.
func (c *CacheData) Unchanged(path, hash string) bool {
	entry, ok := c.ImportedFiles[path]
	return ok && entry.FileHash == hash
}

func loadCache(cacheFile string) (*CacheData, error) {
	cache := &CacheData{
		ImportedFiles: make(map[string]ImportedFile),
	}

	data, err := os.ReadFile(cacheFile)
	if os.IsNotExist(err) {
		return cache, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	if len(data) == 0 {
		return cache, nil
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	if cache.ImportedFiles == nil {
		cache.ImportedFiles = make(map[string]ImportedFile)
	}

	return cache, nil
}

func saveCache(cacheFile string, cache *CacheData) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(cacheFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

func calculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
