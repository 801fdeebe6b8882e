package models

import "time"

// User is authenticated user model as persisted in session storage.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Lastname     string `json:"lastname"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	IsSubscribed bool   `json:"isSubscribed"`
}

// UserPatch is partial user update. Nil fields are left unchanged.
type UserPatch struct {
	Name         *string
	Lastname     *string
	IsSubscribed *bool
}

// Apply returns copy of user with patch fields applied.
func (p UserPatch) Apply(user User) User {
	if p.Name != nil {
		user.Name = *p.Name
	}
	if p.Lastname != nil {
		user.Lastname = *p.Lastname
	}
	if p.IsSubscribed != nil {
		user.IsSubscribed = *p.IsSubscribed
	}
	return user
}

// PriceObservation is single scraped price of a product in a store on a day.
type PriceObservation struct {
	Product string  `json:"product"`
	Store   string  `json:"store"`
	Price   float64 `json:"price"`
	Date    string  `json:"date"`
	URL     string  `json:"url,omitempty"`
}

// SearchResult is product offer returned by retail and wholesale searches.
type SearchResult struct {
	ID             string   `json:"id,omitempty"`
	Product        string   `json:"product"`
	Store          string   `json:"store"`
	Price          float64  `json:"price"`
	UnitPrice      *float64 `json:"unitPrice"`
	Currency       string   `json:"currency"`
	URL            *string  `json:"url"`
	Date           string   `json:"date"`
	Confidence     float64  `json:"confidence"`
	IsOffer        bool     `json:"isOffer,omitempty"`
	ProductDetails string   `json:"productDetails,omitempty"`

	// MeasureLabel is short unit label, it's filled client side.
	MeasureLabel string `json:"-"`
}

// HistoryItem is single entry of user's search history.
type HistoryItem struct {
	ID       string  `json:"id"`
	Product  string  `json:"product"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Date     string  `json:"date"`
	URL      string  `json:"url"`
}

// historyDateLayouts are date formats sent by backend in search history.
var historyDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time returns parsed history date. Date in unknown format gives zero time.
func (h HistoryItem) Time() time.Time {
	for _, layout := range historyDateLayouts {
		if t, err := time.Parse(layout, h.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

// CartItem is product stored in user's cart.
type CartItem struct {
	ID       *string `json:"id"`
	Product  string  `json:"product"`
	Price    float64 `json:"price"`
	Store    string  `json:"store"`
	URL      *string `json:"url"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Cart is user's cart with totals calculated by backend.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
	TotalCount int        `json:"totalCount"`
}

// PlanType is subscription plan name.
type PlanType string

// Subscription plans.
const (
	PlanFree       PlanType = "Free"
	PlanPro        PlanType = "Pro"
	PlanEnterprise PlanType = "Enterprise"
)

// Plan is user's current subscription plan.
type Plan struct {
	Type PlanType `json:"type"`
}

// HasProFeatures reports whether plan unlocks paid features.
func (p *Plan) HasProFeatures() bool {
	return p != nil && (p.Type == PlanPro || p.Type == PlanEnterprise)
}

// IsEnterprise reports whether plan is enterprise plan.
func (p *Plan) IsEnterprise() bool {
	return p != nil && p.Type == PlanEnterprise
}

// PriceStats is aggregated price of product in distributor report.
type PriceStats struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// ProductTrend is single product row of distributor intelligence report.
type ProductTrend struct {
	Product     string      `json:"product"`
	Searches    int         `json:"searches"`
	DemandScore float64     `json:"demandScore"`
	PriceStats  *PriceStats `json:"priceStats"`
}

// AvgPrice returns average price or 0 when stats are missing.
func (t ProductTrend) AvgPrice() float64 {
	if t.PriceStats == nil {
		return 0
	}
	return t.PriceStats.Avg
}

// DistributorReport is backend distributor intelligence report.
type DistributorReport struct {
	Data     []ProductTrend `json:"data"`
	Analysis string         `json:"analysis"`
}
