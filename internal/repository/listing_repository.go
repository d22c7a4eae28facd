package repository

import (
	"context"
	"errors"
	"fmt"

	"carmarket/internal/models"
	"carmarket/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var listingColumns = []string{
	"id", "name", "price", "year", "mileage", "image_url", "city", "state", "link", "description", "created_at",
}

type ListingRepository struct {
	db     postgres.Querier
	logger *zap.Logger
}

func NewListingRepository(db postgres.Querier, logger *zap.Logger) *ListingRepository {
	return &ListingRepository{
		db:     db,
		logger: logger,
	}
}

// ListAll loads every listing, newest first.
func (r *ListingRepository) ListAll(ctx context.Context) ([]*models.Listing, error) {
	query := squirrel.Select(listingColumns...).
		From("listings").
		OrderBy("created_at DESC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryListings(ctx, sql, args)
}

func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	query := squirrel.Select(listingColumns...).
		From("listings").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	return r.getOne(ctx, query)
}

// FindByName returns the newest listing whose name equals name.
func (r *ListingRepository) FindByName(ctx context.Context, name string) (*models.Listing, error) {
	query := squirrel.Select(listingColumns...).
		From("listings").
		Where(squirrel.Eq{"name": name}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	return r.getOne(ctx, query)
}

// FindByNameLike returns the newest listing whose name contains name, ignoring case.
func (r *ListingRepository) FindByNameLike(ctx context.Context, name string) (*models.Listing, error) {
	query := squirrel.Select(listingColumns...).
		From("listings").
		Where(squirrel.ILike{"name": contains(name)}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	return r.getOne(ctx, query)
}

// Upsert inserts the listing or replaces the row with the same id.
func (r *ListingRepository) Upsert(ctx context.Context, listing *models.Listing) error {
	sql, args, err := UpsertListingQuery(listing).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert listing %s: %w", listing.ID, err)
	}
	return nil
}

func UpsertListingQuery(l *models.Listing) squirrel.InsertBuilder {
	return squirrel.Insert("listings").
		Columns(listingColumns...).
		Values(l.ID, l.Name, l.Price, l.Year, l.Mileage, l.ImageURL, l.City, l.State, l.Link, l.Description, l.CreatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price, year = EXCLUDED.year, " +
			"mileage = EXCLUDED.mileage, image_url = EXCLUDED.image_url, city = EXCLUDED.city, state = EXCLUDED.state, " +
			"link = EXCLUDED.link, description = EXCLUDED.description").
		PlaceholderFormat(squirrel.Dollar)
}

// Search returns one page of listings matching the filter and the total number of matches.
func (r *ListingRepository) Search(ctx context.Context, filter models.ListingFilter) ([]*models.Listing, int, error) {
	countSQL, countArgs, err := CountQuery(filter).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count listings: %w", err)
	}

	sql, args, err := SearchQuery(filter).ToSql()
	if err != nil {
		return nil, 0, err
	}

	listings, err := r.queryListings(ctx, sql, args)
	if err != nil {
		return nil, 0, fmt.Errorf("search listings: %w", err)
	}

	return listings, total, nil
}

// SearchQuery builds the page query. filter.Sort and filter.Direction must already be
// validated; unknown values fall back to price ascending.
func SearchQuery(filter models.ListingFilter) squirrel.SelectBuilder {
	sort := filter.Sort
	if !sort.Valid() {
		sort = models.SortByPrice
	}
	direction := "ASC"
	if filter.Direction == models.SortDesc {
		direction = "DESC"
	}

	query := applyFilter(squirrel.Select(listingColumns...).From("listings"), filter).
		OrderBy(fmt.Sprintf("%s %s", sort, direction), "id ASC")

	if filter.PageSize > 0 {
		query = query.Limit(uint64(filter.PageSize)).Offset(uint64(filter.Offset()))
	}

	return query.PlaceholderFormat(squirrel.Dollar)
}

// CountQuery counts every listing the filter matches, ignoring pagination.
func CountQuery(filter models.ListingFilter) squirrel.SelectBuilder {
	return applyFilter(squirrel.Select("COUNT(*)").From("listings"), filter).
		PlaceholderFormat(squirrel.Dollar)
}

func applyFilter(query squirrel.SelectBuilder, f models.ListingFilter) squirrel.SelectBuilder {
	if f.Name != "" {
		query = query.Where(squirrel.ILike{"name": contains(f.Name)})
	}
	if f.PriceMin != nil {
		query = query.Where(squirrel.GtOrEq{"price": *f.PriceMin})
	}
	if f.PriceMax != nil {
		query = query.Where(squirrel.LtOrEq{"price": *f.PriceMax})
	}
	if f.YearMin != nil {
		query = query.Where(squirrel.GtOrEq{"year": *f.YearMin})
	}
	if f.YearMax != nil {
		query = query.Where(squirrel.LtOrEq{"year": *f.YearMax})
	}
	if f.MileageMin != nil {
		query = query.Where(squirrel.GtOrEq{"mileage": *f.MileageMin})
	}
	if f.MileageMax != nil {
		query = query.Where(squirrel.LtOrEq{"mileage": *f.MileageMax})
	}
	switch {
	case f.StateName != "":
		query = query.Where(squirrel.Eq{"state": f.StateName})
	case f.State != "":
		query = query.Where(squirrel.ILike{"state": contains(f.State)})
	}
	if f.City != "" {
		query = query.Where(squirrel.ILike{"city": contains(f.City)})
	}
	return query
}

func contains(term string) string {
	return "%" + term + "%"
}

func (r *ListingRepository) getOne(ctx context.Context, query squirrel.SelectBuilder) (*models.Listing, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var l models.Listing
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&l.ID, &l.Name, &l.Price, &l.Year, &l.Mileage, &l.ImageURL, &l.City, &l.State, &l.Link, &l.Description, &l.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &l, nil
}

func (r *ListingRepository) queryListings(ctx context.Context, sql string, args []any) ([]*models.Listing, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*models.Listing
	for rows.Next() {
		var l models.Listing
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Price, &l.Year, &l.Mileage, &l.ImageURL, &l.City, &l.State, &l.Link, &l.Description, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		listings = append(listings, &l)
	}

	return listings, rows.Err()
}
