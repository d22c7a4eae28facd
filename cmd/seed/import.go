package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"carmarket/internal/models"
	"carmarket/internal/repository"
	"carmarket/pkg/logger"
	"carmarket/pkg/postgres"
	"carmarket/pkg/redis"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listingNamespace derives stable ids for records that arrive without one.
var listingNamespace = uuid.MustParse("6f1c2d3e-8a4b-4c5d-9e6f-7a8b9c0d1e2f")

var errNoFiles = errors.New("no listing files matched")

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import listings from JSON files",
		Long: `Import listings from JSON files holding an array of listing objects.

Examples:
  # Import the bundled catalog
  seed import

  # Import a dealer export, even if it was imported before
  seed import --force exports/dealer_*.json`,
		RunE: runImport,
	}

	cmd.Flags().String("cache", filepath.Join("cmd", "seed", ".seed_cache.json"), "file tracking already imported files")
	cmd.Flags().Bool("force", false, "import files even if their content did not change")
	cmd.Flags().BoolP("dry-run", "d", false, "parse and validate without writing")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logger.Named("seed")

	cacheFile, _ := cmd.Flags().GetString("cache")
	force, _ := cmd.Flags().GetBool("force")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if len(args) == 0 {
		args = []string{filepath.Join("cmd", "seed", "data", "*.json")}
	}
	files, err := expandPatterns(args)
	if err != nil {
		return err
	}

	cache, err := loadCache(cacheFile)
	if err != nil {
		return err
	}

	var repo *repository.ListingRepository
	if !dryRun {
		db, err := postgres.NewPool(ctx, &cfg.Database, log)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := repository.Migrate(ctx, db); err != nil {
			return err
		}
		repo = repository.NewListingRepository(db, log)
	}

	now := time.Now()
	imported := 0
	for _, path := range files {
		hash, err := calculateFileHash(path)
		if err != nil {
			return err
		}
		if !force && cache.Unchanged(path, hash) {
			log.Info("Skipping unchanged file", zap.String("file", path))
			continue
		}

		listings, err := readListings(path, now, log)
		if err != nil {
			return err
		}

		if dryRun {
			log.Info("Dry run", zap.String("file", path), zap.Int("listings", len(listings)))
			continue
		}

		for _, l := range listings {
			if err := repo.Upsert(ctx, l); err != nil {
				return err
			}
		}

		cache.ImportedFiles[path] = ImportedFile{
			FilePath:   path,
			FileHash:   hash,
			Listings:   len(listings),
			ImportedAt: now,
		}
		imported += len(listings)
		log.Info("Imported file", zap.String("file", path), zap.Int("listings", len(listings)))
	}

	if dryRun {
		return nil
	}

	if err := saveCache(cacheFile, cache); err != nil {
		return err
	}

	if imported > 0 {
		invalidateCatalog(ctx, log)
	}

	log.Info("Import completed", zap.Int("files", len(files)), zap.Int("listings", imported))
	return nil
}

// invalidateCatalog drops the cached snapshot so the server reloads the new rows. The import
// already succeeded, so a redis failure is only logged.
func invalidateCatalog(ctx context.Context, log *zap.Logger) {
	rdb, err := redis.NewClient(ctx, &cfg.Redis, log)
	if err != nil {
		log.Warn("Catalog cache not invalidated", zap.Error(err))
		return
	}
	defer rdb.Close()

	if err := repository.NewCatalogCache(rdb, cfg.Catalog.CacheTTL, log).Invalidate(ctx); err != nil {
		log.Warn("Catalog cache not invalidated", zap.Error(err))
	}
}

func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", errNoFiles, strings.Join(patterns, ", "))
	}
	return files, nil
}

func readListings(path string, now time.Time, log *zap.Logger) ([]*models.Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw []*models.Listing
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	listings := make([]*models.Listing, 0, len(raw))
	for i, l := range raw {
		if err := normalizeListing(l, now); err != nil {
			log.Warn("Skipping listing", zap.String("file", path), zap.Int("index", i), zap.Error(err))
			continue
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// normalizeListing trims text fields and fills the id and creation time when missing. Ids are
// derived from the link, or the name when there is no link, so re-imports update in place.
func normalizeListing(l *models.Listing, now time.Time) error {
	if l == nil {
		return errors.New("empty record")
	}

	l.Name = strings.TrimSpace(l.Name)
	l.City = strings.TrimSpace(l.City)
	l.State = strings.TrimSpace(l.State)
	l.Link = strings.TrimSpace(l.Link)
	l.ImageURL = strings.TrimSpace(l.ImageURL)
	l.Description = strings.TrimSpace(l.Description)

	switch {
	case l.Name == "":
		return errors.New("name is required")
	case l.Price < 0:
		return fmt.Errorf("negative price %.2f", l.Price)
	case l.Mileage < 0:
		return fmt.Errorf("negative mileage %d", l.Mileage)
	case l.Year < 1900 || l.Year > now.Year()+1:
		return fmt.Errorf("implausible year %d", l.Year)
	}

	if l.ID == uuid.Nil {
		key := l.Link
		if key == "" {
			key = l.Name
		}
		l.ID = uuid.NewSHA1(listingNamespace, []byte(key))
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	return nil
}
