package search_test

import (
	"testing"

	"github.com/MichalMitros/syntara-client/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitQueryValidate(t *testing.T) {
	tests := map[string]struct {
		query   search.Query
		wantErr error
	}{
		"ok":            {query: search.Query{Product: "arroz", Quantity: 1, Unit: "kilogramos"}},
		"fractional":    {query: search.Query{Product: "arroz", Quantity: 0.5, Unit: "kilogramos"}},
		"blank product": {query: search.Query{Product: "  ", Quantity: 1, Unit: "kilogramos"}, wantErr: search.ErrEmptyProduct},
		"zero quantity": {query: search.Query{Product: "arroz", Unit: "kilogramos"}, wantErr: search.ErrInvalidQuantity},
		"negative":      {query: search.Query{Product: "arroz", Quantity: -1, Unit: "kilogramos"}, wantErr: search.ErrInvalidQuantity},
		"missing unit":  {query: search.Query{Product: "arroz", Quantity: 1}, wantErr: search.ErrMissingUnit},
		"empty query":   {query: search.Query{}, wantErr: search.ErrEmptyProduct},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, tt.query.Validate(), tt.wantErr, "should return correct error")
		})
	}
}

func TestUnitMeasureLabel(t *testing.T) {
	tests := map[string]struct {
		unit string
		want string
	}{
		"kilograms":     {unit: "kilogramos", want: "kg"},
		"units":         {unit: "unidades", want: "und"},
		"square meters": {unit: "metros_cuadrados", want: "m²"},
		"liters":        {unit: "litros", want: "L"},
		"unknown":       {unit: "toneladas", want: "toneladas"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, search.MeasureLabel(tt.unit), "should return label")
		})
	}
}
