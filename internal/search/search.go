package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MichalMitros/syntara-client/internal/api"
	"github.com/MichalMitros/syntara-client/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Gateway --filename gateway.go

// Gateway calls backend search, cart and subscription endpoints.
type Gateway interface {
	Search(ctx context.Context, query api.SearchQuery) ([]models.SearchResult, error)
	SearchWholesale(ctx context.Context, query api.SearchQuery) ([]models.SearchResult, error)
	SearchHistory(ctx context.Context) ([]models.HistoryItem, error)
	AddToCart(ctx context.Context, item models.CartItem) error
	AssignPlan(ctx context.Context, plan models.PlanType) error
	UpdateProfile(ctx context.Context, update api.ProfileUpdate) error
}

// Session is current user session.
type Session interface {
	IsLoggedIn() bool
	UpdateUserLocal(ctx context.Context, patch models.UserPatch) error
}

// Quota gates searches of not logged in users.
type Quota interface {
	// Consume takes one guest search or returns error when guest has no searches left.
	Consume(ctx context.Context) error
}

// Comparison is retail and wholesale offers of the same query.
type Comparison struct {
	Retail    []models.SearchResult
	Wholesale []models.SearchResult
}

// Option is custom configuration of Service.
type Option func(s *Service)

// Service runs searches and cart and subscription flows of the user.
type Service struct {
	gateway Gateway
	session Session
	quota   Quota
	logger  *zerolog.Logger
}

// NewService returns new Service.
func NewService(gateway Gateway, session Session, quota Quota, ops ...Option) *Service {
	nop := zerolog.Nop()
	s := &Service{
		gateway: gateway,
		session: session,
		quota:   quota,
		logger:  &nop,
	}

	for _, op := range ops {
		op(s)
	}

	return s
}

// Search returns retail offers sorted by price. Guests use their free search quota.
func (s *Service) Search(ctx context.Context, query Query) ([]models.SearchResult, error) {
	if err := s.prepare(ctx, query); err != nil {
		return nil, err
	}

	results, err := s.gateway.Search(ctx, query.apiQuery())
	if err != nil {
		return nil, fmt.Errorf("can't search products: %w", err)
	}

	return shapeResults(results, query.Unit), nil
}

// Wholesale returns wholesale offers sorted by price.
func (s *Service) Wholesale(ctx context.Context, query Query) ([]models.SearchResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	results, err := s.gateway.SearchWholesale(ctx, query.apiQuery())
	if err != nil {
		return nil, fmt.Errorf("can't search wholesale products: %w", err)
	}

	return shapeResults(results, query.Unit), nil
}

// Compare runs retail and wholesale searches concurrently. It counts as single guest search.
func (s *Service) Compare(ctx context.Context, query Query) (*Comparison, error) {
	if err := s.prepare(ctx, query); err != nil {
		return nil, err
	}

	var comparison Comparison
	errGroup, egCtx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		results, err := s.gateway.Search(egCtx, query.apiQuery())
		if err != nil {
			return fmt.Errorf("can't search products: %w", err)
		}
		comparison.Retail = shapeResults(results, query.Unit)
		return nil
	})

	errGroup.Go(func() error {
		results, err := s.gateway.SearchWholesale(egCtx, query.apiQuery())
		if err != nil {
			return fmt.Errorf("can't search wholesale products: %w", err)
		}
		comparison.Wholesale = shapeResults(results, query.Unit)
		return nil
	})

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}

	return &comparison, nil
}

// prepare validates query and consumes guest search when user is not logged in.
func (s *Service) prepare(ctx context.Context, query Query) error {
	if err := query.Validate(); err != nil {
		return err
	}

	if s.session.IsLoggedIn() {
		return nil
	}

	if err := s.quota.Consume(ctx); err != nil {
		return err
	}

	s.logger.Debug().
		Str("product", query.Product).
		Msg("guest search")

	return nil
}

// History returns search history, newest first. Entries with unknown date go last.
func (s *Service) History(ctx context.Context) ([]models.HistoryItem, error) {
	history, err := s.gateway.SearchHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't get search history: %w", err)
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Time().After(history[j].Time())
	})

	return history, nil
}

// AddToCart adds search result to cart. Non-positive quantity defaults to 1, empty unit to DefaultUnit.
func (s *Service) AddToCart(
	ctx context.Context,
	result models.SearchResult,
	quantity float64,
	unit string,
) (*models.CartItem, error) {
	if !s.session.IsLoggedIn() {
		return nil, ErrLoginRequired
	}

	if result.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	if quantity <= 0 {
		quantity = 1
	}
	if unit == "" {
		unit = DefaultUnit
	}

	item := models.CartItem{
		Product:  result.Product,
		Price:    result.Price,
		Store:    result.Store,
		URL:      result.URL,
		Quantity: quantity,
		Unit:     unit,
	}
	if result.ID != "" {
		item.ID = lo.ToPtr(result.ID)
	}

	if err := s.gateway.AddToCart(ctx, item); err != nil {
		return nil, fmt.Errorf("can't add %q to cart: %w", result.Product, err)
	}

	return &item, nil
}

// UpgradePro assigns Pro plan and marks local user as subscribed.
func (s *Service) UpgradePro(ctx context.Context) error {
	if !s.session.IsLoggedIn() {
		return ErrLoginRequired
	}

	if err := s.gateway.AssignPlan(ctx, models.PlanPro); err != nil {
		return fmt.Errorf("can't assign %s plan: %w", models.PlanPro, err)
	}

	s.logger.Debug().
		Str("plan", string(models.PlanPro)).
		Msg("plan assigned")

	return s.session.UpdateUserLocal(ctx, models.UserPatch{IsSubscribed: lo.ToPtr(true)})
}

// UpgradeEnterprise renames user to company, assigns Enterprise plan and updates local user.
func (s *Service) UpgradeEnterprise(ctx context.Context, company string) error {
	if !s.session.IsLoggedIn() {
		return ErrLoginRequired
	}

	company = strings.TrimSpace(company)
	if company == "" {
		return ErrEmptyCompany
	}

	if err := s.gateway.UpdateProfile(ctx, api.ProfileUpdate{Name: &company, Lastname: lo.ToPtr("")}); err != nil {
		return fmt.Errorf("can't update company name: %w", err)
	}

	if err := s.gateway.AssignPlan(ctx, models.PlanEnterprise); err != nil {
		return fmt.Errorf("can't assign %s plan: %w", models.PlanEnterprise, err)
	}

	s.logger.Debug().
		Str("plan", string(models.PlanEnterprise)).
		Str("company", company).
		Msg("plan assigned")

	return s.session.UpdateUserLocal(ctx, models.UserPatch{
		Name:         &company,
		Lastname:     lo.ToPtr(""),
		IsSubscribed: lo.ToPtr(true),
	})
}

// shapeResults labels results with unit and sorts them by price ascending.
func shapeResults(results []models.SearchResult, unit string) []models.SearchResult {
	label := MeasureLabel(unit)
	lo.ForEach(results, func(_ models.SearchResult, ix int) { results[ix].MeasureLabel = label })

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Price < results[j].Price
	})

	return results
}

// WithLogger sets Service's logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
