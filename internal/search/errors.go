package search

import "errors"

// Query validation errors.
var (
	ErrEmptyProduct    = errors.New("product is empty")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrMissingUnit     = errors.New("unit is missing")
)

var (
	// ErrLoginRequired is returned when guest calls operation available only for logged in users.
	ErrLoginRequired = errors.New("login required")
	// ErrInvalidPrice is returned when result without positive price is added to cart.
	ErrInvalidPrice = errors.New("product has invalid price")
	// ErrEmptyCompany is returned when enterprise plan is requested without company name.
	ErrEmptyCompany = errors.New("company name is empty")
)
