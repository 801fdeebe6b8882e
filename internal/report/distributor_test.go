package report_test

import (
	"testing"

	"github.com/MichalMitros/syntara-client/internal/platform/models"
	"github.com/MichalMitros/syntara-client/internal/platform/models/modelstesting"
	"github.com/MichalMitros/syntara-client/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trend(product string, avg float64) models.ProductTrend {
	return modelstesting.FakeTrend(func(t *models.ProductTrend) {
		t.Product = product
		t.PriceStats = &models.PriceStats{Min: avg, Max: avg, Avg: avg}
	})
}

func TestUnitProcessDistributorReportErrors(t *testing.T) {
	noStats := modelstesting.FakeTrend(func(t *models.ProductTrend) { t.PriceStats = nil })

	tests := map[string]struct {
		raw     *models.DistributorReport
		wantErr error
	}{
		"nil report": {
			wantErr: report.ErrNoRecords,
		},
		"no data": {
			raw:     &models.DistributorReport{Analysis: "sin datos"},
			wantErr: report.ErrNoRecords,
		},
		"no valid prices": {
			raw:     &models.DistributorReport{Data: []models.ProductTrend{trend("arroz", 0), noStats}},
			wantErr: report.ErrNoValidPrices,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := report.ProcessDistributorReport(report.DefaultStoreName, tt.raw)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			assert.Nil(t, got, "shouldn't return view")
		})
	}
}

func TestUnitProcessDistributorReport(t *testing.T) {
	raw := &models.DistributorReport{
		Data: []models.ProductTrend{
			trend("  ARROZ Diana ", 4500),
			trend("Café Sello Rojo", 12000),
			trend("arroz diana", 4700),
			trend("cafe sello rojo", 11000),
			trend("Aceite", 0),
			trend("   ", 100),
		},
		Analysis: "La demanda de arroz sube.",
	}

	got, err := report.ProcessDistributorReport("Tienda Rosa", raw)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, "Tienda Rosa", got.Store, "should keep store")
	assert.Equal(t, raw.Analysis, got.Analysis, "should keep analysis")
	assert.Len(t, got.Trends, 5, "should drop trends without price")
	assert.Equal(t, []string{"Arroz diana", "Café sello rojo"}, got.Products, "should deduplicate products")
	assert.Equal(t, map[string]bool{"Arroz diana": false, "Café sello rojo": false}, got.Selection, "should leave products unselected")
}

func TestUnitDemandLevel(t *testing.T) {
	tests := map[string]struct {
		score float64
		want  string
	}{
		"very high":    {score: 51, want: "Muy Alta"},
		"high bound":   {score: 50, want: "Alta"},
		"high":         {score: 21, want: "Alta"},
		"medium bound": {score: 20, want: "Media"},
		"medium":       {score: 6, want: "Media"},
		"low bound":    {score: 5, want: "Baja"},
		"zero":         {score: 0, want: "Baja"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.DemandLevel(tt.score), "should return demand level")
		})
	}
}
