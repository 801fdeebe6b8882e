package api

import "github.com/MichalMitros/syntara-client/internal/platform/models"

// Credentials is login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is register request body.
type Registration struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is login response body.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// SearchQuery is retail and wholesale search query.
type SearchQuery struct {
	Product  string
	Quantity float64
	Unit     string
}

// ProfileUpdate is profile update request body. Nil fields are not sent.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Lastname *string `json:"lastname,omitempty"`
}

type assignPlanRequest struct {
	Plan models.PlanType `json:"plan"`
}

type competitorReportRequest struct {
	Product string `json:"product"`
}

type distributorReportRequest struct {
	StoreName string `json:"storeName"`
}
