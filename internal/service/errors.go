package service

import "errors"

var (
	ErrCatalogUnavailable = errors.New("catalog is temporarily unavailable")
	ErrListingNotFound    = errors.New("listing not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidFilter      = errors.New("invalid search filter")
)
