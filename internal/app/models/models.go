// Package models contains the database-backed domain entities.
package models

// Rank defines a police officer's rank. Ranks are ordered: Constable <
// Sergeant < Inspector < Commissioner. Comparisons go through Level(),
// never through raw string comparison.
type Rank string

const (
	RankConstable    Rank = "CONSTABLE"
	RankSergeant     Rank = "SERGEANT"
	RankInspector    Rank = "INSPECTOR"
	RankCommissioner Rank = "COMMISSIONER"
)

// rankLevels maps each rank to its position in the hierarchy.
var rankLevels = map[Rank]int{
	RankConstable:    1,
	RankSergeant:     2,
	RankInspector:    3,
	RankCommissioner: 4,
}

// Level returns the ordinal position of the rank, or 0 for an unknown rank.
func (r Rank) Level() int {
	return rankLevels[r]
}

// IsValid reports whether the rank is one of the four known ranks.
func (r Rank) IsValid() bool {
	_, ok := rankLevels[r]
	return ok
}

// AllRanks lists every valid rank in ascending order.
func AllRanks() []Rank {
	return []Rank{RankConstable, RankSergeant, RankInspector, RankCommissioner}
}

// ThreatLevel classifies how dangerous a criminal is considered.
type ThreatLevel string

const (
	ThreatLow     ThreatLevel = "LOW"
	ThreatMedium  ThreatLevel = "MEDIUM"
	ThreatHigh    ThreatLevel = "HIGH"
	ThreatExtreme ThreatLevel = "EXTREME"
)

// IsValid reports whether the threat level is a known value.
func (t ThreatLevel) IsValid() bool {
	switch t {
	case ThreatLow, ThreatMedium, ThreatHigh, ThreatExtreme:
		return true
	}
	return false
}

// AllThreatLevels lists every threat level in ascending order of severity.
func AllThreatLevels() []ThreatLevel {
	return []ThreatLevel{ThreatLow, ThreatMedium, ThreatHigh, ThreatExtreme}
}

// Gender is the single-letter gender code carried on criminal records.
type Gender string

const (
	GenderMale    Gender = "M"
	GenderFemale  Gender = "F"
	GenderOther   Gender = "O"
	GenderUnknown Gender = "U"
)

// IsValid reports whether the gender code is a known value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderUnknown:
		return true
	}
	return false
}

// Label returns the long-form name used in the stats breakdown.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "MALE"
	case GenderFemale:
		return "FEMALE"
	case GenderOther:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// AllGenders lists every gender code.
func AllGenders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther, GenderUnknown}
}

// CrimeType categorises a recorded crime.
type CrimeType string

const (
	CrimeTheft    CrimeType = "THEFT"
	CrimeAssault  CrimeType = "ASSAULT"
	CrimeBurglary CrimeType = "BURGLARY"
	CrimeRobbery  CrimeType = "ROBBERY"
	CrimeDrugs    CrimeType = "DRUGS"
	CrimeFraud    CrimeType = "FRAUD"
	CrimeHomicide CrimeType = "HOMICIDE"
	CrimeOther    CrimeType = "OTHER"
)

// CrimeStatus tracks the investigation state of a crime.
type CrimeStatus string

const (
	CrimeStatusOpen      CrimeStatus = "OPEN"
	CrimeStatusClosed    CrimeStatus = "CLOSED"
	CrimeStatusConvicted CrimeStatus = "CONVICTED"
)

// EvidenceType categorises an evidence attachment.
type EvidenceType string

const (
	EvidencePhoto    EvidenceType = "PHOTO"
	EvidenceVideo    EvidenceType = "VIDEO"
	EvidenceAudio    EvidenceType = "AUDIO"
	EvidenceDocument EvidenceType = "DOCUMENT"
	EvidenceWeapon   EvidenceType = "WEAPON"
	EvidenceOther    EvidenceType = "OTHER"
)

// DocumentType categorises a document attachment.
type DocumentType string

const (
	DocumentArrestReport  DocumentType = "ARREST_REPORT"
	DocumentCourtDocument DocumentType = "COURT_DOCUMENT"
	DocumentMedicalReport DocumentType = "MEDICAL_REPORT"
	DocumentFingerprint   DocumentType = "FINGERPRINT"
	DocumentWarrant       DocumentType = "WARRANT"
	DocumentOther         DocumentType = "OTHER"
)
