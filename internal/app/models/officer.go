package models

import "time"

// Officer is a police officer profile tied one-to-one to a User.
// Accounts start inactive and must be activated by a sufficiently
// ranked officer before login is allowed.
type Officer struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	BadgeNumber string    `json:"badgeNumber"`
	Rank        Rank      `json:"rank"`
	Station     string    `json:"station"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// User is populated on reads that join the identity row.
	User *User `json:"user,omitempty"`
}

// CanActivateUsers reports whether this officer's rank carries the
// activation capability at all.
func (o *Officer) CanActivateUsers() bool {
	return o.Rank.Level() >= RankInspector.Level()
}
