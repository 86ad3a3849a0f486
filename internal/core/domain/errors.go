package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrSearchDisabled indicates the shop document declares the search
	// surface disabled for this page.
	ErrSearchDisabled = errors.New("search is disabled for this page")
)
