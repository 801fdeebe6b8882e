package report

import (
	"strings"

	"github.com/MichalMitros/syntara-client/internal/platform/models"
	"github.com/samber/lo"
)

// DefaultStoreName is store name used for distributor report when user has no name.
const DefaultStoreName = "Mi Empresa"

// DistributorView is distributor report view model.
type DistributorView struct {
	Store    string
	Analysis string
	// Trends are trends with positive average price.
	Trends []models.ProductTrend
	// Products are deduplicated product display names in first-seen order.
	Products []string
	// Selection marks products selected for report request, all are unselected initially.
	Selection map[string]bool
}

// ProcessDistributorReport shapes backend distributor report into view model.
func ProcessDistributorReport(store string, raw *models.DistributorReport) (*DistributorView, error) {
	if raw == nil || len(raw.Data) == 0 {
		return nil, ErrNoRecords
	}

	trends := lo.Filter(raw.Data, func(t models.ProductTrend, _ int) bool {
		return t.AvgPrice() > 0
	})
	if len(trends) == 0 {
		return nil, ErrNoValidPrices
	}

	view := &DistributorView{
		Store:     store,
		Analysis:  raw.Analysis,
		Trends:    trends,
		Selection: map[string]bool{},
	}

	seen := map[string]struct{}{}
	for _, t := range trends {
		key := strings.TrimSpace(stripAccents(strings.ToLower(t.Product)))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		name := productDisplayName(t.Product)
		view.Products = append(view.Products, name)
		view.Selection[name] = false
	}

	return view, nil
}

// productDisplayName returns trimmed name with first letter upper-cased and the rest lower-cased.
func productDisplayName(raw string) string {
	return upperFirst(strings.ToLower(strings.TrimSpace(raw)))
}

// DemandLevel returns demand level label of demand score.
func DemandLevel(score float64) string {
	switch {
	case score > 50:
		return "Muy Alta"
	case score > 20:
		return "Alta"
	case score > 5:
		return "Media"
	default:
		return "Baja"
	}
}
