package models

import (
	"time"

	"github.com/google/uuid"
)

// Criminal is the full profile of a person of interest. Most columns are
// nullable; the record can be built up incrementally as intelligence
// arrives.
type Criminal struct {
	ID uuid.UUID `json:"id"`

	// Identity
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Alias        *string    `json:"alias,omitempty"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	PlaceOfBirth *string    `json:"placeOfBirth,omitempty"`
	Gender       Gender     `json:"gender"`
	Nationality  *string    `json:"nationality,omitempty"`

	// Physical description
	Height                  *string `json:"height,omitempty"`
	Weight                  *string `json:"weight,omitempty"`
	EyeColor                *string `json:"eyeColor,omitempty"`
	HairColor               *string `json:"hairColor,omitempty"`
	Build                   *string `json:"build,omitempty"`
	Complexion              *string `json:"complexion,omitempty"`
	DistinguishingMarks     *string `json:"distinguishingMarks,omitempty"`
	PhysicalCharacteristics *string `json:"physicalCharacteristics,omitempty"`

	// Biometrics, unique when present
	FingerprintCode *string `json:"fingerprintCode,omitempty"`
	DNAProfile      *string `json:"dnaProfile,omitempty"`

	// Personal background
	MaritalStatus    *string `json:"maritalStatus,omitempty"`
	EducationLevel   *string `json:"educationLevel,omitempty"`
	EmploymentStatus *string `json:"employmentStatus,omitempty"`
	Occupation       *string `json:"occupation,omitempty"`

	// Contact and associations
	LastKnownAddress *string  `json:"lastKnownAddress,omitempty"`
	PhoneNumbers     []string `json:"phoneNumbers"`
	EmailAddresses   []string `json:"emailAddresses"`
	KnownAssociates  *string  `json:"knownAssociates,omitempty"`

	// Risk profile
	ThreatLevel       ThreatLevel `json:"threatLevel"`
	CriminalHistory   *string     `json:"criminalHistory,omitempty"`
	ModusOperandi     *string     `json:"modusOperandi,omitempty"`
	GangAffiliations  *string     `json:"gangAffiliations,omitempty"`
	WeaponsPreference *string     `json:"weaponsPreference,omitempty"`
	EscapeRisk        bool        `json:"escapeRisk"`
	ViolentOffender   bool        `json:"violentOffender"`

	// Medical
	MedicalConditions *string `json:"medicalConditions,omitempty"`
	Medications       *string `json:"medications,omitempty"`
	Allergies         *string `json:"allergies,omitempty"`

	// Administrative
	ProfilePicture      *string    `json:"profilePicture,omitempty"`
	IsIncarcerated      bool       `json:"isIncarcerated"`
	CurrentFacility     *string    `json:"currentFacility,omitempty"`
	IncarcerationDate   *time.Time `json:"incarcerationDate,omitempty"`
	ExpectedReleaseDate *time.Time `json:"expectedReleaseDate,omitempty"`
	Description         *string    `json:"description,omitempty"`

	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	CreatedByID     *int64    `json:"createdById,omitempty"`
	LastUpdatedByID *int64    `json:"lastUpdatedById,omitempty"`

	// CrimesCount is filled by list and detail queries.
	CrimesCount int `json:"crimesCount"`
}

// FullName joins the first and last name with a single space.
func (c *Criminal) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Age returns the criminal's age in whole years at now, or nil when the
// birth date is unknown.
func (c *Criminal) Age(now time.Time) *int {
	if c.DateOfBirth == nil {
		return nil
	}
	dob := *c.DateOfBirth
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return &years
}

// IsHighRisk reports whether the threat level is HIGH or EXTREME.
func (c *Criminal) IsHighRisk() bool {
	return c.ThreatLevel == ThreatHigh || c.ThreatLevel == ThreatExtreme
}

// IncarcerationStatus is the human-readable custody label.
func (c *Criminal) IncarcerationStatus() string {
	if c.IsIncarcerated {
		return "In Custody"
	}
	return "At Large"
}
