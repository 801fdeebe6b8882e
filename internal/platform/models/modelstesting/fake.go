package modelstesting

import (
	"math/rand"

	"github.com/MichalMitros/syntara-client/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

// FakeUser returns models.User with fake data.
func FakeUser(ops ...func(u *models.User)) models.User {
	user := models.User{
		ID:       faker.UUIDHyphenated(),
		Name:     faker.FirstName(),
		Lastname: faker.LastName(),
		Email:    faker.Email(),
		Role:     "user",
	}

	for _, op := range ops {
		op(&user)
	}

	return user
}

// FakeObservation returns models.PriceObservation with fake data and positive price.
func FakeObservation(ops ...func(o *models.PriceObservation)) models.PriceObservation {
	observation := models.PriceObservation{
		Product: faker.Word(),
		Store:   faker.Word(),
		Price:   float64(rand.Intn(100_000) + 1),
		Date:    faker.Date(),
		URL:     faker.URL(),
	}

	for _, op := range ops {
		op(&observation)
	}

	return observation
}

// FakeSearchResult returns models.SearchResult with fake data and positive price.
func FakeSearchResult(ops ...func(r *models.SearchResult)) models.SearchResult {
	result := models.SearchResult{
		ID:         faker.UUIDHyphenated(),
		Product:    faker.Word(),
		Store:      faker.Word(),
		Price:      float64(rand.Intn(100_000) + 1),
		Currency:   "COP",
		URL:        lo.ToPtr(faker.URL()),
		Date:       faker.Date(),
		Confidence: rand.Float64(),
	}

	for _, op := range ops {
		op(&result)
	}

	return result
}

// FakeTrend returns models.ProductTrend with fake data and positive average price.
func FakeTrend(ops ...func(t *models.ProductTrend)) models.ProductTrend {
	avg := float64(rand.Intn(100_000) + 1)
	trend := models.ProductTrend{
		Product:     faker.Word(),
		Searches:    rand.Intn(100),
		DemandScore: float64(rand.Intn(100)),
		PriceStats:  &models.PriceStats{Min: avg / 2, Max: avg * 2, Avg: avg},
	}

	for _, op := range ops {
		op(&trend)
	}

	return trend
}
