package report

import "errors"

var (
	// ErrNoRecords is returned when backend returned no records at all.
	ErrNoRecords = errors.New("no records found")
	// ErrNoValidPrices is returned when backend returned records but none of them has positive price.
	ErrNoValidPrices = errors.New("records found but none has valid price")
	// ErrEmptyProduct is returned when competitor preview is requested for blank product.
	ErrEmptyProduct = errors.New("product is empty")
)

// Report configuration validation errors.
var (
	ErrNoSelection     = errors.New("no competitor or product selected")
	ErrIncompleteRange = errors.New("date range is incomplete")
	ErrInvertedRange   = errors.New("start date is after end date")
	ErrFutureDate      = errors.New("end date is in the future")
	ErrBeforeMinDate   = errors.New("start date is before earliest available date")
)
