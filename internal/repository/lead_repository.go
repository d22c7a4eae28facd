package repository

import (
	"context"

	"carmarket/internal/models"
	"carmarket/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

type LeadRepository struct {
	db     postgres.Querier
	logger *zap.Logger
}

func NewLeadRepository(db postgres.Querier, logger *zap.Logger) *LeadRepository {
	return &LeadRepository{
		db:     db,
		logger: logger,
	}
}

func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	sql, args, err := InsertLeadQuery(lead).ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func InsertLeadQuery(lead *models.Lead) squirrel.InsertBuilder {
	return squirrel.Insert("leads").
		Columns("id", "title", "brand", "model", "year", "price", "name", "email", "phone", "notes", "created_at").
		Values(lead.ID, lead.Title, lead.Brand, lead.Model, lead.Year, lead.Price, lead.Name, lead.Email, lead.Phone, lead.Notes, lead.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)
}
