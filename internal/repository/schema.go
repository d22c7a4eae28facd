package repository

import (
	"context"
	"fmt"

	"carmarket/pkg/postgres"
)

// Schema creates the tables the repositories read and write. It is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS listings (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	price       DOUBLE PRECISION NOT NULL CHECK (price >= 0),
	year        INTEGER NOT NULL,
	mileage     INTEGER NOT NULL DEFAULT 0 CHECK (mileage >= 0),
	image_url   TEXT NOT NULL DEFAULT '',
	city        TEXT NOT NULL DEFAULT '',
	state       TEXT NOT NULL DEFAULT '',
	link        TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_listings_price ON listings (price);
CREATE INDEX IF NOT EXISTS idx_listings_state ON listings (state);

CREATE TABLE IF NOT EXISTS leads (
	id         UUID PRIMARY KEY,
	title      TEXT NOT NULL,
	brand      TEXT NOT NULL,
	model      TEXT NOT NULL,
	year       INTEGER NOT NULL,
	price      DOUBLE PRECISION NOT NULL,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	phone      TEXT NOT NULL,
	notes      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func Migrate(ctx context.Context, db postgres.Querier) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
