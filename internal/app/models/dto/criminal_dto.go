package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkoech/police-profiling/internal/app/models"
)

// CreateCriminalRequest carries the writable criminal profile fields.
// Dates use the 2006-01-02 layout.
type CreateCriminalRequest struct {
	FirstName    string  `json:"firstName" binding:"required,max=100"`
	LastName     string  `json:"lastName" binding:"required,max=100"`
	Alias        *string `json:"alias" binding:"omitempty,max=100"`
	DateOfBirth  *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	PlaceOfBirth *string `json:"placeOfBirth" binding:"omitempty,max=100"`
	Gender       string  `json:"gender" binding:"omitempty,oneof=M F O U"`
	Nationality  *string `json:"nationality" binding:"omitempty,max=100"`

	Height                  *string `json:"height" binding:"omitempty,max=20"`
	Weight                  *string `json:"weight" binding:"omitempty,max=20"`
	EyeColor                *string `json:"eyeColor" binding:"omitempty,max=30"`
	HairColor               *string `json:"hairColor" binding:"omitempty,max=30"`
	Build                   *string `json:"build" binding:"omitempty,max=30"`
	Complexion              *string `json:"complexion" binding:"omitempty,max=30"`
	DistinguishingMarks     *string `json:"distinguishingMarks"`
	PhysicalCharacteristics *string `json:"physicalCharacteristics"`

	FingerprintCode *string `json:"fingerprintCode" binding:"omitempty,max=100"`
	DNAProfile      *string `json:"dnaProfile" binding:"omitempty,max=100"`

	MaritalStatus    *string `json:"maritalStatus" binding:"omitempty,max=30"`
	EducationLevel   *string `json:"educationLevel" binding:"omitempty,max=100"`
	EmploymentStatus *string `json:"employmentStatus" binding:"omitempty,max=100"`
	Occupation       *string `json:"occupation" binding:"omitempty,max=100"`

	LastKnownAddress *string  `json:"lastKnownAddress"`
	PhoneNumbers     []string `json:"phoneNumbers"`
	EmailAddresses   []string `json:"emailAddresses" binding:"omitempty,dive,email"`
	KnownAssociates  *string  `json:"knownAssociates"`

	ThreatLevel       string  `json:"threatLevel" binding:"omitempty,oneof=LOW MEDIUM HIGH EXTREME"`
	CriminalHistory   *string `json:"criminalHistory"`
	ModusOperandi     *string `json:"modusOperandi"`
	GangAffiliations  *string `json:"gangAffiliations"`
	WeaponsPreference *string `json:"weaponsPreference"`
	EscapeRisk        bool    `json:"escapeRisk"`
	ViolentOffender   bool    `json:"violentOffender"`

	MedicalConditions *string `json:"medicalConditions"`
	Medications       *string `json:"medications"`
	Allergies         *string `json:"allergies"`

	IsIncarcerated      bool    `json:"isIncarcerated"`
	CurrentFacility     *string `json:"currentFacility" binding:"omitempty,max=200"`
	IncarcerationDate   *string `json:"incarcerationDate" binding:"omitempty,datetime=2006-01-02"`
	ExpectedReleaseDate *string `json:"expectedReleaseDate" binding:"omitempty,datetime=2006-01-02"`
	Description         *string `json:"description"`
}

// UpdateCriminalRequest reuses the create field set; every field is
// applied as given (absent optional fields clear their columns, matching
// full-update semantics).
type UpdateCriminalRequest = CreateCriminalRequest

// SearchCriminalsRequest is the validated POST search body.
type SearchCriminalsRequest struct {
	Query          *string `json:"query"`
	ThreatLevel    *string `json:"threatLevel" binding:"omitempty,oneof=LOW MEDIUM HIGH EXTREME"`
	IsIncarcerated *bool   `json:"isIncarcerated"`
	Gender         *string `json:"gender" binding:"omitempty,oneof=M F O U"`
}

// UpdateIncarcerationRequest flips custody status; isIncarcerated is
// mandatory, the dates are situational.
type UpdateIncarcerationRequest struct {
	IsIncarcerated      *bool   `json:"isIncarcerated" binding:"required"`
	CurrentFacility     *string `json:"currentFacility" binding:"omitempty,max=200"`
	IncarcerationDate   *string `json:"incarcerationDate" binding:"omitempty,datetime=2006-01-02"`
	ExpectedReleaseDate *string `json:"expectedReleaseDate" binding:"omitempty,datetime=2006-01-02"`
}

// CriminalSummary is the compact projection returned by list and search.
type CriminalSummary struct {
	ID                 uuid.UUID          `json:"id"`
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	FullName           string             `json:"fullName"`
	Alias              *string            `json:"alias,omitempty"`
	Age                *int               `json:"age,omitempty"`
	Gender             models.Gender      `json:"gender"`
	ThreatLevel        models.ThreatLevel `json:"threatLevel"`
	IsIncarcerated     bool               `json:"isIncarcerated"`
	CrimesCount        int                `json:"crimesCount"`
	ProfilePictureURL  *string            `json:"profilePictureUrl,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// CriminalDetail is the full projection with derived fields and nested
// attachments.
type CriminalDetail struct {
	models.Criminal

	FullName            string                     `json:"fullName"`
	Age                 *int                       `json:"age,omitempty"`
	IsHighRisk          bool                       `json:"isHighRisk"`
	IncarcerationStatus string                     `json:"incarcerationStatus"`
	ProfilePictureURL   *string                    `json:"profilePictureUrl,omitempty"`
	Crimes              []CrimeResponse            `json:"crimes"`
	Evidence            []EvidenceResponse         `json:"evidence"`
	Documents           []DocumentResponse         `json:"documents"`
}

// CriminalStatsResponse is the aggregate snapshot of the criminal
// database.
type CriminalStatsResponse struct {
	TotalCriminals int64            `json:"totalCriminals"`
	Incarcerated   int64            `json:"incarcerated"`
	AtLarge        int64            `json:"atLarge"`
	ThreatLevels   map[string]int64 `json:"threatLevels"`
	Genders        map[string]int64 `json:"genders"`
}

// NewCriminalSummary projects a model onto the compact form. now anchors
// the age computation; baseURL prefixes the stored picture path.
func NewCriminalSummary(c *models.Criminal, now time.Time, baseURL string) CriminalSummary {
	return CriminalSummary{
		ID:                c.ID,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		FullName:          c.FullName(),
		Alias:             c.Alias,
		Age:               c.Age(now),
		Gender:            c.Gender,
		ThreatLevel:       c.ThreatLevel,
		IsIncarcerated:    c.IsIncarcerated,
		CrimesCount:       c.CrimesCount,
		ProfilePictureURL: fileURL(c.ProfilePicture, baseURL),
		CreatedAt:         c.CreatedAt,
	}
}

// NewCriminalDetail projects a model and its attachments onto the full
// form.
func NewCriminalDetail(c *models.Criminal, crimes []*models.Crime, evidence []*models.CriminalEvidence, documents []*models.CriminalDocument, now time.Time, baseURL string) CriminalDetail {
	detail := CriminalDetail{
		Criminal:            *c,
		FullName:            c.FullName(),
		Age:                 c.Age(now),
		IsHighRisk:          c.IsHighRisk(),
		IncarcerationStatus: c.IncarcerationStatus(),
		ProfilePictureURL:   fileURL(c.ProfilePicture, baseURL),
		Crimes:              make([]CrimeResponse, 0, len(crimes)),
		Evidence:            make([]EvidenceResponse, 0, len(evidence)),
		Documents:           make([]DocumentResponse, 0, len(documents)),
	}
	for _, cr := range crimes {
		detail.Crimes = append(detail.Crimes, NewCrimeResponse(cr))
	}
	for _, ev := range evidence {
		detail.Evidence = append(detail.Evidence, NewEvidenceResponse(ev, baseURL))
	}
	for _, doc := range documents {
		detail.Documents = append(detail.Documents, NewDocumentResponse(doc, baseURL))
	}
	return detail
}

func fileURL(path *string, baseURL string) *string {
	if path == nil || *path == "" {
		return nil
	}
	url := baseURL + "/" + *path
	return &url
}
