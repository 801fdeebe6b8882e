package report

import "time"

// Earliest dates for which backend keeps report data.
const (
	CompetitorMinDate  = "2024-11-01"
	DistributorMinDate = "2025-11-01"
)

// dateLayout is ISO calendar date layout used by report date ranges.
const dateLayout = "2006-01-02"

// Clock provides current time.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// RequestConfig is user's report request configuration.
type RequestConfig struct {
	// Selected maps competitor or product display name to its selection.
	Selected  map[string]bool
	DateStart string
	DateEnd   string
	Format    string
	CCEmail   string
}

// SelectedItems returns names of selected entries.
func (c RequestConfig) SelectedItems() []string {
	var items []string
	for name, selected := range c.Selected {
		if selected {
			items = append(items, name)
		}
	}
	return items
}

// ValidatorOption is custom configuration of Validator.
type ValidatorOption func(v *Validator)

// Validator validates report request configurations.
type Validator struct {
	minDate string
	clock   Clock
}

// NewValidator returns new Validator. Empty minDate disables the earliest date check.
func NewValidator(minDate string, ops ...ValidatorOption) Validator {
	v := Validator{
		minDate: minDate,
		clock:   systemClock{},
	}

	for _, op := range ops {
		op(&v)
	}

	return v
}

// Validate checks configuration. Dates are ISO calendar dates, compared lexically.
func (v Validator) Validate(cfg RequestConfig) error {
	if len(cfg.SelectedItems()) == 0 {
		return ErrNoSelection
	}

	if cfg.DateStart == "" || cfg.DateEnd == "" {
		return ErrIncompleteRange
	}

	if cfg.DateStart > cfg.DateEnd {
		return ErrInvertedRange
	}

	if cfg.DateEnd > v.clock.Now().UTC().Format(dateLayout) {
		return ErrFutureDate
	}

	if v.minDate != "" && cfg.DateStart < v.minDate {
		return ErrBeforeMinDate
	}

	return nil
}

// WithValidatorClock sets Validator's custom Clock.
func WithValidatorClock(c Clock) ValidatorOption {
	return func(v *Validator) {
		v.clock = c
	}
}
