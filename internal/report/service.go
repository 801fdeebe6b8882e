package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/MichalMitros/syntara-client/internal/platform/models"
)

//go:generate mockery --name Gateway --filename gateway.go

// Gateway fetches raw report data from backend.
type Gateway interface {
	CompetitorReport(ctx context.Context, product string) ([]models.PriceObservation, error)
	DistributorReport(ctx context.Context, storeName string) (*models.DistributorReport, error)
}

// Session provides current user.
type Session interface {
	CurrentUser() *models.User
}

// Service fetches report data and shapes it into view models.
// Concurrent previews are independent, the latest returned one is the caller's to keep.
type Service struct {
	gateway Gateway
	session Session
}

// NewService returns new Service.
func NewService(gateway Gateway, session Session) *Service {
	return &Service{
		gateway: gateway,
		session: session,
	}
}

// CompetitorPreview returns competitor report of product. User's name identifies user's own store.
func (s *Service) CompetitorPreview(ctx context.Context, product string) (*CompetitorReport, error) {
	if strings.TrimSpace(product) == "" {
		return nil, ErrEmptyProduct
	}

	observations, err := s.gateway.CompetitorReport(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("can't get competitor report: %w", err)
	}

	return ProcessCompetitorReport(product, observations, s.userName())
}

// DistributorPreview returns distributor report of user's store, DefaultStoreName is used for users without name.
func (s *Service) DistributorPreview(ctx context.Context) (*DistributorView, error) {
	store := s.userName()
	if store == "" {
		store = DefaultStoreName
	}

	raw, err := s.gateway.DistributorReport(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("can't get distributor report: %w", err)
	}

	return ProcessDistributorReport(store, raw)
}

func (s *Service) userName() string {
	if user := s.session.CurrentUser(); user != nil {
		return user.Name
	}
	return ""
}
