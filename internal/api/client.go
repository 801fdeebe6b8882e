package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MichalMitros/syntara-client/internal/decoder"
	"github.com/MichalMitros/syntara-client/internal/platform/models"
	"github.com/tidwall/gjson"
)

// maxBodySize limits size of read response bodies.
const maxBodySize = 10 << 20

// Session provides token for authenticated requests and stores session after login.
type Session interface {
	Token() string
	Login(ctx context.Context, user models.User, token string) error
}

// Clock provides current time.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Client.
type Option func(c *Client)

// Client builds and dispatches requests to Syntara backend.
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
	session   Session
	decoder   decoder.Decoder
	clock     Clock
}

// NewClient returns new Client sending requests to baseURL.
func NewClient(client *http.Client, baseURL, userAgent string, session Session, ops ...Option) *Client {
	cli := &Client{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		session:   session,
		clock:     systemClock{},
	}

	for _, op := range ops {
		op(cli)
	}

	return cli
}

// Login authenticates user and stores returned user and token in session.
func (c *Client) Login(ctx context.Context, credentials Credentials) (*LoginResponse, error) {
	const endpoint = "/auth/login"

	body, err := c.do(ctx, http.MethodPost, endpoint, nil, credentials)
	if err != nil {
		return nil, err
	}

	var resp LoginResponse
	if err := c.decoder.Decode(endpoint, body, &resp); err != nil {
		return nil, err
	}

	if resp.Token == "" || resp.User == nil {
		return nil, ErrInvalidLogin
	}

	if err := c.session.Login(ctx, *resp.User, resp.Token); err != nil {
		return nil, fmt.Errorf("can't store session: %w", err)
	}

	return &resp, nil
}

// Register creates new user account.
func (c *Client) Register(ctx context.Context, registration Registration) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/register", nil, registration)
	return err
}

// Search returns retail offers matching query.
func (c *Client) Search(ctx context.Context, query SearchQuery) ([]models.SearchResult, error) {
	return c.search(ctx, "/search", searchParams(query))
}

// SearchWholesale returns wholesale offers matching query.
func (c *Client) SearchWholesale(ctx context.Context, query SearchQuery) ([]models.SearchResult, error) {
	params := searchParams(query)
	params.Set("clientDate", c.clock.Now().Format("2006-01-02T15:04:05.000Z"))

	return c.search(ctx, "/search/wholesale", params)
}

func (c *Client) search(ctx context.Context, endpoint string, params url.Values) ([]models.SearchResult, error) {
	body, err := c.do(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return nil, err
	}

	var results []models.SearchResult
	if err := c.decoder.Decode(endpoint, body, &results, "data.results", "results"); err != nil {
		return nil, err
	}

	return results, nil
}

// SearchHistory returns user's search history. Missing history is returned as empty one.
func (c *Client) SearchHistory(ctx context.Context) ([]models.HistoryItem, error) {
	const endpoint = "/search/history"

	body, err := c.do(ctx, http.MethodGet, endpoint, nil, nil)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var history []models.HistoryItem
	if err := c.decoder.Decode(endpoint, body, &history, decoder.Data, decoder.Root); err != nil {
		return nil, err
	}

	return history, nil
}

// ClearSearchHistory deletes whole search history.
func (c *Client) ClearSearchHistory(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/search/history", nil, nil)
	return err
}

// DeleteHistoryItem deletes single search history entry.
func (c *Client) DeleteHistoryItem(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/search/history/"+url.PathEscape(id), nil, nil)
	return err
}

// Cart returns user's cart. Missing cart is returned as empty one.
func (c *Client) Cart(ctx context.Context) (*models.Cart, error) {
	const endpoint = "/cart"

	body, err := c.do(ctx, http.MethodGet, endpoint, nil, nil)
	if errors.Is(err, ErrNotFound) {
		return &models.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := c.decoder.Decode(endpoint, body, &cart, decoder.Data, decoder.Root); err != nil {
		return nil, err
	}

	return &cart, nil
}

// AddToCart adds item to user's cart.
func (c *Client) AddToCart(ctx context.Context, item models.CartItem) error {
	_, err := c.do(ctx, http.MethodPost, "/cart/add", nil, item)
	return err
}

// RemoveFromCart removes single item from user's cart.
func (c *Client) RemoveFromCart(ctx context.Context, itemID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/cart/item/"+url.PathEscape(itemID), nil, nil)
	return err
}

// ClearCart removes all items from user's cart.
func (c *Client) ClearCart(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/cart/clear", nil, nil)
	return err
}

// MyPlan returns user's current subscription plan.
func (c *Client) MyPlan(ctx context.Context) (*models.Plan, error) {
	const endpoint = "/subscriptions/my-plan"

	body, err := c.do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, err
	}

	var plan models.Plan
	if err := c.decoder.Decode(endpoint, body, &plan); err != nil {
		return nil, err
	}

	return &plan, nil
}

// AssignPlan assigns subscription plan to user.
func (c *Client) AssignPlan(ctx context.Context, plan models.PlanType) error {
	_, err := c.do(ctx, http.MethodPost, "/subscriptions/assign", nil, assignPlanRequest{Plan: plan})
	return err
}

// UpdateProfile updates user's name and lastname.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	_, err := c.do(ctx, http.MethodPut, "/users/update", nil, update)
	return err
}

// CompetitorReport returns price observations of product across stores.
// Malformed single records are kept with price 0, so they're dropped by report processing.
func (c *Client) CompetitorReport(ctx context.Context, product string) ([]models.PriceObservation, error) {
	const endpoint = "/reports/generate"

	body, err := c.do(ctx, http.MethodPost, endpoint, nil, competitorReportRequest{Product: product})
	if err != nil {
		return nil, err
	}

	records, err := c.decoder.Elements(endpoint, body, decoder.Data)
	if err != nil {
		return nil, err
	}

	var observations []models.PriceObservation
	for _, record := range records {
		observations = append(observations, observationFrom(record))
	}

	return observations, nil
}

// observationFrom reads price observation from JSON record leniently.
// Numeric strings are parsed as prices, other non-numeric prices and non-object records give price 0.
func observationFrom(record gjson.Result) models.PriceObservation {
	return models.PriceObservation{
		Product: record.Get("product").String(),
		Store:   record.Get("store").String(),
		Price:   record.Get("price").Float(),
		Date:    record.Get("date").String(),
		URL:     record.Get("url").String(),
	}
}

// DistributorReport returns demand and price trends of products searched for store.
func (c *Client) DistributorReport(ctx context.Context, storeName string) (*models.DistributorReport, error) {
	const endpoint = "/reports/distributor-intelligence"

	body, err := c.do(ctx, http.MethodPost, endpoint, nil, distributorReportRequest{StoreName: storeName})
	if err != nil {
		return nil, err
	}

	var report models.DistributorReport
	if err := c.decoder.Decode(endpoint, body, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

// StoredCompetitors returns names of competitors known by backend.
func (c *Client) StoredCompetitors(ctx context.Context) ([]string, error) {
	const endpoint = "/reports/competitors-list"

	body, err := c.do(ctx, http.MethodGet, endpoint, nil, nil)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var competitors []string
	if err := c.decoder.Decode(endpoint, body, &competitors, decoder.Data, decoder.Root); err != nil {
		return nil, err
	}

	return competitors, nil
}

// do sends request and returns response body of successful response.
// Responses with non 2xx status are returned as *StatusError.
func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("can't encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Add("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Add("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("can't read http response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    c.decoder.Message(body),
		}
	}

	return body, nil
}

func searchParams(query SearchQuery) url.Values {
	params := url.Values{}
	if query.Product != "" {
		params.Set("product", query.Product)
	}
	if query.Quantity > 0 {
		params.Set("quantity", strconv.FormatFloat(query.Quantity, 'f', -1, 64))
	}
	if query.Unit != "" {
		params.Set("unit", query.Unit)
	}
	return params
}

// WithClock sets Client's custom Clock.
func WithClock(c Clock) Option {
	return func(cli *Client) {
		cli.clock = c
	}
}
