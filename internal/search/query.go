package search

import (
	"strings"

	"github.com/MichalMitros/syntara-client/internal/api"
)

// DefaultUnit is cart unit used when search had no unit.
const DefaultUnit = "unidad"

var measureLabels = map[string]string{
	"unidades":         "und",
	"pares":            "par",
	"docenas":          "doc",
	"cajas":            "caja",
	"paquetes":         "paq",
	"bolsas":           "bolsa",
	"kits":             "kit",
	"kilogramos":       "kg",
	"gramos":           "g",
	"libras":           "lb",
	"arrobas":          "arroba",
	"quintales":        "qq",
	"bultos":           "bulto",
	"litros":           "L",
	"mililitros":       "ml",
	"galones":          "gal",
	"metros":           "m",
	"centimetros":      "cm",
	"metros_cuadrados": "m²",
}

// MeasureLabel returns short label of unit. Unknown units are returned unchanged.
func MeasureLabel(unit string) string {
	if label, ok := measureLabels[unit]; ok {
		return label
	}
	return unit
}

// Query is product search query.
type Query struct {
	Product  string
	Quantity float64
	Unit     string
}

// Validate checks query before it's sent to backend.
func (q Query) Validate() error {
	if strings.TrimSpace(q.Product) == "" {
		return ErrEmptyProduct
	}

	if q.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	if q.Unit == "" {
		return ErrMissingUnit
	}

	return nil
}

func (q Query) apiQuery() api.SearchQuery {
	return api.SearchQuery{
		Product:  strings.TrimSpace(q.Product),
		Quantity: q.Quantity,
		Unit:     q.Unit,
	}
}
