package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mkoech/police-profiling/internal/app/models"
	"github.com/mkoech/police-profiling/internal/db"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
	"github.com/mkoech/police-profiling/internal/pkg/dberrors"
)

// CriminalRepository accesses the criminals table.
type CriminalRepository struct {
	db *db.PostgresDB
}

// NewCriminalRepository creates a new CriminalRepository.
func NewCriminalRepository(database *db.PostgresDB) *CriminalRepository {
	return &CriminalRepository{db: database}
}

// CriminalFilter narrows criminal queries. Nil fields are ignored; the
// free-text query matches as a case-insensitive substring.
type CriminalFilter struct {
	Query          *string
	ThreatLevel    *models.ThreatLevel
	IsIncarcerated *bool
	Gender         *models.Gender
}

// freeTextColumns are the profile fields the free-text search covers.
var freeTextColumns = []string{
	"first_name", "last_name", "alias", "nationality", "description",
	"known_associates", "gang_affiliations",
}

// FreeTextCondition builds the OR-combined ILIKE condition for a search
// term across all searchable profile fields.
func FreeTextCondition(term string) squirrel.Or {
	pattern := "%" + term + "%"
	or := make(squirrel.Or, 0, len(freeTextColumns))
	for _, col := range freeTextColumns {
		or = append(or, squirrel.ILike{col: pattern})
	}
	return or
}

// ApplyFilter adds the filter's conditions to a select builder. Filters
// are AND-combined; the free text expands to an OR across its columns.
func ApplyFilter(builder squirrel.SelectBuilder, filter CriminalFilter) squirrel.SelectBuilder {
	if filter.Query != nil && *filter.Query != "" {
		builder = builder.Where(FreeTextCondition(*filter.Query))
	}
	if filter.ThreatLevel != nil {
		builder = builder.Where(squirrel.Eq{"threat_level": *filter.ThreatLevel})
	}
	if filter.IsIncarcerated != nil {
		builder = builder.Where(squirrel.Eq{"is_incarcerated": *filter.IsIncarcerated})
	}
	if filter.Gender != nil {
		builder = builder.Where(squirrel.Eq{"gender": *filter.Gender})
	}
	return builder
}

// criminalColumns lists every stored column in scan order, plus the
// crimes_count subselect.
var criminalColumns = []string{
	"id", "first_name", "last_name", "alias", "date_of_birth",
	"place_of_birth", "gender", "nationality",
	"height", "weight", "eye_color", "hair_color", "build", "complexion",
	"distinguishing_marks", "physical_characteristics",
	"fingerprint_code", "dna_profile",
	"marital_status", "education_level", "employment_status", "occupation",
	"last_known_address", "phone_numbers", "email_addresses", "known_associates",
	"threat_level", "criminal_history", "modus_operandi", "gang_affiliations",
	"weapons_preference", "escape_risk", "violent_offender",
	"medical_conditions", "medications", "allergies",
	"profile_picture", "is_incarcerated", "current_facility",
	"incarceration_date", "expected_release_date", "description",
	"created_at", "updated_at", "created_by", "last_updated_by",
	"(SELECT COUNT(*) FROM crimes cr WHERE cr.criminal_id = criminals.id) AS crimes_count",
}

func scanCriminal(row pgx.Row) (*models.Criminal, error) {
	var c models.Criminal
	var phoneNumbers, emailAddresses []byte
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Alias, &c.DateOfBirth,
		&c.PlaceOfBirth, &c.Gender, &c.Nationality,
		&c.Height, &c.Weight, &c.EyeColor, &c.HairColor, &c.Build, &c.Complexion,
		&c.DistinguishingMarks, &c.PhysicalCharacteristics,
		&c.FingerprintCode, &c.DNAProfile,
		&c.MaritalStatus, &c.EducationLevel, &c.EmploymentStatus, &c.Occupation,
		&c.LastKnownAddress, &phoneNumbers, &emailAddresses, &c.KnownAssociates,
		&c.ThreatLevel, &c.CriminalHistory, &c.ModusOperandi, &c.GangAffiliations,
		&c.WeaponsPreference, &c.EscapeRisk, &c.ViolentOffender,
		&c.MedicalConditions, &c.Medications, &c.Allergies,
		&c.ProfilePicture, &c.IsIncarcerated, &c.CurrentFacility,
		&c.IncarcerationDate, &c.ExpectedReleaseDate, &c.Description,
		&c.CreatedAt, &c.UpdatedAt, &c.CreatedByID, &c.LastUpdatedByID,
		&c.CrimesCount,
	)
	if err != nil {
		return nil, err
	}

	c.PhoneNumbers = decodeStringList(phoneNumbers)
	c.EmailAddresses = decodeStringList(emailAddresses)
	return &c, nil
}

func decodeStringList(data []byte) []string {
	out := []string{}
	if len(data) > 0 {
		_ = json.Unmarshal(data, &out)
	}
	return out
}

func encodeStringList(list []string) []byte {
	if list == nil {
		list = []string{}
	}
	data, _ := json.Marshal(list)
	return data
}

// Create inserts a new criminal profile and fills the generated fields.
func (r *CriminalRepository) Create(ctx context.Context, c *models.Criminal) error {
	query, args, err := psql.Insert("criminals").
		Columns(
			"first_name", "last_name", "alias", "date_of_birth",
			"place_of_birth", "gender", "nationality",
			"height", "weight", "eye_color", "hair_color", "build", "complexion",
			"distinguishing_marks", "physical_characteristics",
			"fingerprint_code", "dna_profile",
			"marital_status", "education_level", "employment_status", "occupation",
			"last_known_address", "phone_numbers", "email_addresses", "known_associates",
			"threat_level", "criminal_history", "modus_operandi", "gang_affiliations",
			"weapons_preference", "escape_risk", "violent_offender",
			"medical_conditions", "medications", "allergies",
			"is_incarcerated", "current_facility",
			"incarceration_date", "expected_release_date", "description",
			"created_by", "last_updated_by",
		).
		Values(
			c.FirstName, c.LastName, c.Alias, c.DateOfBirth,
			c.PlaceOfBirth, c.Gender, c.Nationality,
			c.Height, c.Weight, c.EyeColor, c.HairColor, c.Build, c.Complexion,
			c.DistinguishingMarks, c.PhysicalCharacteristics,
			c.FingerprintCode, c.DNAProfile,
			c.MaritalStatus, c.EducationLevel, c.EmploymentStatus, c.Occupation,
			c.LastKnownAddress, encodeStringList(c.PhoneNumbers), encodeStringList(c.EmailAddresses), c.KnownAssociates,
			c.ThreatLevel, c.CriminalHistory, c.ModusOperandi, c.GangAffiliations,
			c.WeaponsPreference, c.EscapeRisk, c.ViolentOffender,
			c.MedicalConditions, c.Medications, c.Allergies,
			c.IsIncarcerated, c.CurrentFacility,
			c.IncarcerationDate, c.ExpectedReleaseDate, c.Description,
			c.CreatedByID, c.LastUpdatedByID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build criminal insert: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return r.mapConstraintError(err)
	}
	return nil
}

// GetByID fetches a criminal with its crimes count.
func (r *CriminalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Criminal, error) {
	query, args, err := psql.Select(criminalColumns...).
		From("criminals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build criminal query: %w", err)
	}

	criminal, err := scanCriminal(r.db.Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrCriminalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query criminal: %w", err)
	}
	return criminal, nil
}

// List returns a page of criminals matching the filter, newest first,
// plus the total match count.
func (r *CriminalRepository) List(ctx context.Context, filter CriminalFilter, offset uint64, limit int) ([]*models.Criminal, int64, error) {
	countQuery, countArgs, err := ApplyFilter(psql.Select("COUNT(*)").From("criminals"), filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build criminal count query: %w", err)
	}

	var total int64
	if err := r.db.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count criminals: %w", err)
	}

	query, args, err := ApplyFilter(psql.Select(criminalColumns...).From("criminals"), filter).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build criminal list query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list criminals: %w", err)
	}
	defer rows.Close()

	criminals := make([]*models.Criminal, 0, limit)
	for rows.Next() {
		criminal, err := scanCriminal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan criminal: %w", err)
		}
		criminals = append(criminals, criminal)
	}
	return criminals, total, rows.Err()
}

// Update rewrites every writable column of a criminal profile.
func (r *CriminalRepository) Update(ctx context.Context, c *models.Criminal) error {
	query, args, err := psql.Update("criminals").
		Set("first_name", c.FirstName).
		Set("last_name", c.LastName).
		Set("alias", c.Alias).
		Set("date_of_birth", c.DateOfBirth).
		Set("place_of_birth", c.PlaceOfBirth).
		Set("gender", c.Gender).
		Set("nationality", c.Nationality).
		Set("height", c.Height).
		Set("weight", c.Weight).
		Set("eye_color", c.EyeColor).
		Set("hair_color", c.HairColor).
		Set("build", c.Build).
		Set("complexion", c.Complexion).
		Set("distinguishing_marks", c.DistinguishingMarks).
		Set("physical_characteristics", c.PhysicalCharacteristics).
		Set("fingerprint_code", c.FingerprintCode).
		Set("dna_profile", c.DNAProfile).
		Set("marital_status", c.MaritalStatus).
		Set("education_level", c.EducationLevel).
		Set("employment_status", c.EmploymentStatus).
		Set("occupation", c.Occupation).
		Set("last_known_address", c.LastKnownAddress).
		Set("phone_numbers", encodeStringList(c.PhoneNumbers)).
		Set("email_addresses", encodeStringList(c.EmailAddresses)).
		Set("known_associates", c.KnownAssociates).
		Set("threat_level", c.ThreatLevel).
		Set("criminal_history", c.CriminalHistory).
		Set("modus_operandi", c.ModusOperandi).
		Set("gang_affiliations", c.GangAffiliations).
		Set("weapons_preference", c.WeaponsPreference).
		Set("escape_risk", c.EscapeRisk).
		Set("violent_offender", c.ViolentOffender).
		Set("medical_conditions", c.MedicalConditions).
		Set("medications", c.Medications).
		Set("allergies", c.Allergies).
		Set("is_incarcerated", c.IsIncarcerated).
		Set("current_facility", c.CurrentFacility).
		Set("incarceration_date", c.IncarcerationDate).
		Set("expected_release_date", c.ExpectedReleaseDate).
		Set("description", c.Description).
		Set("last_updated_by", c.LastUpdatedByID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build criminal update: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return r.mapConstraintError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCriminalNotFound
	}
	return nil
}

// IncarcerationUpdate carries a custody status change. Nil optional
// fields leave their columns untouched.
type IncarcerationUpdate struct {
	IsIncarcerated      bool
	CurrentFacility     *string
	IncarcerationDate   *time.Time
	ExpectedReleaseDate *time.Time
	LastUpdatedByID     *int64
}

// UpdateIncarceration applies a custody status change.
func (r *CriminalRepository) UpdateIncarceration(ctx context.Context, id uuid.UUID, update IncarcerationUpdate) error {
	builder := psql.Update("criminals").
		Set("is_incarcerated", update.IsIncarcerated).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.CurrentFacility != nil {
		builder = builder.Set("current_facility", *update.CurrentFacility)
	}
	if update.IncarcerationDate != nil {
		builder = builder.Set("incarceration_date", *update.IncarcerationDate)
	}
	if update.ExpectedReleaseDate != nil {
		builder = builder.Set("expected_release_date", *update.ExpectedReleaseDate)
	}
	if update.LastUpdatedByID != nil {
		builder = builder.Set("last_updated_by", *update.LastUpdatedByID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build incarceration update: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update incarceration status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCriminalNotFound
	}
	return nil
}

// SetProfilePicture stores the uploaded picture path.
func (r *CriminalRepository) SetProfilePicture(ctx context.Context, id uuid.UUID, path string, updatedBy *int64) error {
	builder := psql.Update("criminals").
		Set("profile_picture", path).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
	if updatedBy != nil {
		builder = builder.Set("last_updated_by", *updatedBy)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build profile picture update: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile picture: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCriminalNotFound
	}
	return nil
}

// Delete removes a criminal; crimes, evidence and documents cascade.
func (r *CriminalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM criminals WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete criminal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCriminalNotFound
	}
	return nil
}

// Stats is the raw aggregate snapshot; missing categories are absent
// from the maps and zero-filled by the service layer.
type Stats struct {
	Total        int64
	Incarcerated int64
	AtLarge      int64
	ByThreat     map[string]int64
	ByGender     map[string]int64
}

// GetStats recomputes the aggregate snapshot. at_large is counted
// independently of the incarcerated count.
func (r *CriminalRepository) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		ByThreat: make(map[string]int64),
		ByGender: make(map[string]int64),
	}

	err := r.db.Pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_incarcerated),
		       COUNT(*) FILTER (WHERE NOT is_incarcerated)
		FROM criminals`).Scan(&stats.Total, &stats.Incarcerated, &stats.AtLarge)
	if err != nil {
		return nil, fmt.Errorf("failed to compute criminal totals: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, "SELECT threat_level, COUNT(*) FROM criminals GROUP BY threat_level")
	if err != nil {
		return nil, fmt.Errorf("failed to compute threat level breakdown: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level string
		var count int64
		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("failed to scan threat level row: %w", err)
		}
		stats.ByThreat[level] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	genderRows, err := r.db.Pool.Query(ctx, "SELECT gender, COUNT(*) FROM criminals GROUP BY gender")
	if err != nil {
		return nil, fmt.Errorf("failed to compute gender breakdown: %w", err)
	}
	defer genderRows.Close()
	for genderRows.Next() {
		var gender string
		var count int64
		if err := genderRows.Scan(&gender, &count); err != nil {
			return nil, fmt.Errorf("failed to scan gender row: %w", err)
		}
		stats.ByGender[gender] = count
	}
	return stats, genderRows.Err()
}

// mapConstraintError translates unique violations on the biometric
// columns into domain errors.
func (r *CriminalRepository) mapConstraintError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "criminals_fingerprint_code_key"):
		return apperrors.ErrFingerprintCodeExists
	case dberrors.IsDuplicateConstraintError(err, "criminals_dna_profile_key"):
		return apperrors.ErrDNAProfileExists
	default:
		return fmt.Errorf("failed to write criminal: %w", err)
	}
}
