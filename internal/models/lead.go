package models

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a "feature my listing" request left by a seller.
type Lead struct {
	ID        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	Brand     string    `db:"brand"`
	Model     string    `db:"model"`
	Year      int       `db:"year"`
	Price     float64   `db:"price"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}
