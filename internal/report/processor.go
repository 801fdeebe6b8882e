package report

import (
	"math"
	"sort"
	"strings"

	"github.com/MichalMitros/syntara-client/internal/platform/models"
	"github.com/samber/lo"
)

// SelfRecord is price of user's own store.
type SelfRecord struct {
	Price float64
	Date  string
	URL   string
}

// SeriesPoint is average price of store on a date, rounded to whole currency units.
type SeriesPoint struct {
	Date     string
	AvgPrice int
}

// CompetitorReport is competitor report view model.
type CompetitorReport struct {
	Product string
	// Self is nil when none of records belongs to user's store.
	Self        *SelfRecord
	Competitors []models.PriceObservation
	// AvailableCompetitors are deduplicated competitor display names in first-seen order.
	AvailableCompetitors []string
	// Selection marks competitors selected for report request, all are unselected initially.
	Selection map[string]bool
	// Series maps store display name to points sorted by date ascending.
	Series map[string][]SeriesPoint
	// SeriesOrder lists Series keys in first-seen order.
	SeriesOrder []string
}

// ProcessCompetitorReport shapes raw price observations of product into report view model.
// Records belong to user's store when their store name contains selfHint, case insensitive.
// Empty selfHint matches no store.
func ProcessCompetitorReport(
	product string,
	observations []models.PriceObservation,
	selfHint string,
) (*CompetitorReport, error) {
	if len(observations) == 0 {
		return nil, ErrNoRecords
	}

	valid := lo.Filter(observations, func(o models.PriceObservation, _ int) bool {
		return o.Price > 0
	})
	if len(valid) == 0 {
		return nil, ErrNoValidPrices
	}

	report := &CompetitorReport{
		Product:   product,
		Selection: map[string]bool{},
	}

	hint := strings.ToLower(selfHint)
	for _, o := range valid {
		if hint != "" && strings.Contains(strings.ToLower(o.Store), hint) {
			if report.Self == nil {
				report.Self = &SelfRecord{Price: o.Price, Date: o.Date, URL: o.URL}
			}
			continue
		}
		report.Competitors = append(report.Competitors, o)
	}

	seen := map[string]struct{}{}
	for _, o := range report.Competitors {
		key := NormalizeStoreName(o.Store)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		name := FormatStoreName(o.Store)
		report.AvailableCompetitors = append(report.AvailableCompetitors, name)
		report.Selection[name] = false
	}

	report.Series, report.SeriesOrder = buildSeries(valid)

	return report, nil
}

type priceSum struct {
	sum   float64
	count int
}

// buildSeries groups observations by store display name and date and averages their prices.
func buildSeries(observations []models.PriceObservation) (map[string][]SeriesPoint, []string) {
	groups := map[string]map[string]*priceSum{}
	dates := map[string][]string{}
	var order []string

	for _, o := range observations {
		store := FormatStoreName(o.Store)
		byDate, ok := groups[store]
		if !ok {
			byDate = map[string]*priceSum{}
			groups[store] = byDate
			order = append(order, store)
		}

		sum, ok := byDate[o.Date]
		if !ok {
			sum = &priceSum{}
			byDate[o.Date] = sum
			dates[store] = append(dates[store], o.Date)
		}
		sum.sum += o.Price
		sum.count++
	}

	series := make(map[string][]SeriesPoint, len(groups))
	for _, store := range order {
		points := lo.Map(dates[store], func(date string, _ int) SeriesPoint {
			sum := groups[store][date]
			return SeriesPoint{
				Date:     date,
				AvgPrice: int(math.Round(sum.sum / float64(sum.count))),
			}
		})
		// ISO dates sort lexically in calendar order.
		sort.SliceStable(points, func(i, j int) bool {
			return points[i].Date < points[j].Date
		})
		series[store] = points
	}

	return series, order
}

// ChartBounds returns price axis bounds, 10% below the lowest and 10% above the highest average price.
// It returns false when series have no points.
func ChartBounds(series map[string][]SeriesPoint) (lower, upper int, ok bool) {
	minPrice, maxPrice := math.MaxInt, math.MinInt
	for _, points := range series {
		for _, p := range points {
			minPrice = min(minPrice, p.AvgPrice)
			maxPrice = max(maxPrice, p.AvgPrice)
		}
	}

	if minPrice > maxPrice {
		return 0, 0, false
	}

	return int(math.Floor(float64(minPrice) * 0.9)), int(math.Ceil(float64(maxPrice) * 1.1)), true
}

// DifferencePercent returns by how many percent other price differs from own price.
// It returns 0 when any of prices is 0.
func DifferencePercent(own, other float64) float64 {
	if own == 0 || other == 0 {
		return 0
	}
	return (other - own) / own * 100
}
