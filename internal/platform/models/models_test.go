package models_test

import (
	"testing"
	"time"

	"github.com/MichalMitros/syntara-client/internal/platform/models"
	"github.com/stretchr/testify/assert"
)

func TestUnitHistoryItemTime(t *testing.T) {
	tests := map[string]struct {
		date string
		want time.Time
	}{
		"timestamp with millis": {
			date: "2025-03-02T10:04:05.123Z",
			want: time.Date(2025, time.March, 2, 10, 4, 5, 123000000, time.UTC),
		},
		"timestamp with offset": {
			date: "2025-03-02T05:04:05-05:00",
			want: time.Date(2025, time.March, 2, 10, 4, 5, 0, time.UTC),
		},
		"timestamp without zone": {
			date: "2025-03-02T10:04:05",
			want: time.Date(2025, time.March, 2, 10, 4, 5, 0, time.UTC),
		},
		"sql timestamp": {
			date: "2025-03-02 10:04:05",
			want: time.Date(2025, time.March, 2, 10, 4, 5, 0, time.UTC),
		},
		"bare date": {
			date: "2025-03-02",
			want: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
		"unknown format": {
			date: "02/03/2025",
		},
		"empty": {},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := models.HistoryItem{Date: tt.date}.Time()

			assert.True(t, tt.want.Equal(got), "should parse %q as %s, got %s", tt.date, tt.want, got)
		})
	}
}
