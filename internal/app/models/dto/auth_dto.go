package dto

// RegisterRequest creates a User plus an inactive Officer profile.
type RegisterRequest struct {
	Username    string  `json:"username" binding:"required,min=3,max=150"`
	Password    string  `json:"password" binding:"required,min=8"`
	FirstName   string  `json:"firstName" binding:"required,max=150"`
	LastName    string  `json:"lastName" binding:"required,max=150"`
	Email       *string `json:"email" binding:"omitempty,email"`
	BadgeNumber string  `json:"badgeNumber" binding:"required,max=20"`
	Rank        string  `json:"rank" binding:"required,oneof=CONSTABLE SERGEANT INSPECTOR COMMISSIONER"`
	Station     string  `json:"station" binding:"required,max=100"`
}

// RegisterResponse acknowledges a new registration awaiting activation.
type RegisterResponse struct {
	OfficerID   int64  `json:"officerId"`
	BadgeNumber string `json:"badgeNumber"`
	IsActive    bool   `json:"isActive"`
	Message     string `json:"message"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token and the caller's identity.
type LoginResponse struct {
	Token     string          `json:"token"`
	UserID    int64           `json:"userId"`
	Username  string          `json:"username"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Officer   *OfficerSummary `json:"officer,omitempty"`
}

// AuthCheckResponse reports whether the request carries a valid session.
type AuthCheckResponse struct {
	Authenticated bool            `json:"authenticated"`
	UserID        *int64          `json:"userId,omitempty"`
	Username      string          `json:"username,omitempty"`
	Officer       *OfficerSummary `json:"officer,omitempty"`
}

// CSRFTokenResponse carries a freshly issued anti-forgery token.
type CSRFTokenResponse struct {
	CSRFToken string `json:"csrfToken"`
}
