package report_test

import (
	"testing"
	"time"

	"github.com/MichalMitros/syntara-client/internal/report"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	now      = time.Date(2025, time.March, 3, 23, 30, 0, 0, time.UTC)
	today    = "2025-03-03"
	selected = map[string]bool{"Éxito": true, "Carulla": false}
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

func TestUnitValidate(t *testing.T) {
	tests := map[string]struct {
		cfg     report.RequestConfig
		minDate string
		wantErr error
	}{
		"ok": {
			cfg: report.RequestConfig{Selected: selected, DateStart: "2025-01-01", DateEnd: today},
		},
		"single day": {
			cfg: report.RequestConfig{Selected: selected, DateStart: "2025-02-01", DateEnd: "2025-02-01"},
		},
		"nothing selected": {
			cfg:     report.RequestConfig{Selected: map[string]bool{"Éxito": false}, DateStart: "2025-01-01", DateEnd: today},
			wantErr: report.ErrNoSelection,
		},
		"no selection map": {
			cfg:     report.RequestConfig{DateStart: "2025-01-01", DateEnd: today},
			wantErr: report.ErrNoSelection,
		},
		"selection checked before dates": {
			cfg:     report.RequestConfig{},
			wantErr: report.ErrNoSelection,
		},
		"missing start": {
			cfg:     report.RequestConfig{Selected: selected, DateEnd: today},
			wantErr: report.ErrIncompleteRange,
		},
		"missing end": {
			cfg:     report.RequestConfig{Selected: selected, DateStart: "2025-01-01"},
			wantErr: report.ErrIncompleteRange,
		},
		"inverted": {
			cfg:     report.RequestConfig{Selected: selected, DateStart: "2025-02-01", DateEnd: "2025-01-01"},
			wantErr: report.ErrInvertedRange,
		},
		"future": {
			cfg:     report.RequestConfig{Selected: selected, DateStart: "2025-01-01", DateEnd: "2025-03-04"},
			wantErr: report.ErrFutureDate,
		},
		"before min date": {
			cfg:     report.RequestConfig{Selected: selected, DateStart: "2024-10-31", DateEnd: today},
			minDate: report.CompetitorMinDate,
			wantErr: report.ErrBeforeMinDate,
		},
		"at min date": {
			cfg:     report.RequestConfig{Selected: selected, DateStart: "2024-11-01", DateEnd: today},
			minDate: report.CompetitorMinDate,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := report.NewValidator(tt.minDate, report.WithValidatorClock(fakeClock{now: now}))

			require.ErrorIs(t, v.Validate(tt.cfg), tt.wantErr, "should return correct error")
		})
	}
}
