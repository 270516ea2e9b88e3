package dto

import (
	"time"

	"github.com/mkoech/police-profiling/internal/app/models"
)

// OfficerSummary is the compact officer projection embedded in auth
// responses.
type OfficerSummary struct {
	ID               int64       `json:"id"`
	BadgeNumber      string      `json:"badgeNumber"`
	Rank             models.Rank `json:"rank"`
	Station          string      `json:"station"`
	CanActivateUsers bool        `json:"canActivateUsers"`
	IsActive         bool        `json:"isActive"`
}

// OfficerResponse is the full officer projection for list and detail
// endpoints.
type OfficerResponse struct {
	ID          int64       `json:"id"`
	BadgeNumber string      `json:"badgeNumber"`
	Rank        models.Rank `json:"rank"`
	Station     string      `json:"station"`
	IsActive    bool        `json:"isActive"`
	Username    string      `json:"username"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       *string     `json:"email,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// OfficerUpdateRequest edits the mutable officer fields.
type OfficerUpdateRequest struct {
	Station *string `json:"station" binding:"omitempty,max=100"`
	Rank    *string `json:"rank" binding:"omitempty,oneof=CONSTABLE SERGEANT INSPECTOR COMMISSIONER"`
}

// ActivateOfficerRequest toggles an officer's active flag.
type ActivateOfficerRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// ActivateOfficerResponse confirms an activation change.
type ActivateOfficerResponse struct {
	Officer OfficerResponse `json:"officer"`
	Message string          `json:"message"`
}

// NewOfficerSummary projects a model onto the compact form.
func NewOfficerSummary(o *models.Officer) *OfficerSummary {
	if o == nil {
		return nil
	}
	return &OfficerSummary{
		ID:               o.ID,
		BadgeNumber:      o.BadgeNumber,
		Rank:             o.Rank,
		Station:          o.Station,
		CanActivateUsers: o.CanActivateUsers(),
		IsActive:         o.IsActive,
	}
}

// NewOfficerResponse projects a model (with its joined User) onto the
// full form.
func NewOfficerResponse(o *models.Officer) OfficerResponse {
	resp := OfficerResponse{
		ID:          o.ID,
		BadgeNumber: o.BadgeNumber,
		Rank:        o.Rank,
		Station:     o.Station,
		IsActive:    o.IsActive,
		CreatedAt:   o.CreatedAt,
	}
	if o.User != nil {
		resp.Username = o.User.Username
		resp.FirstName = o.User.FirstName
		resp.LastName = o.User.LastName
		resp.Email = o.User.Email
	}
	return resp
}
