package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/mkoech/police-profiling/internal/app/models"
	"github.com/mkoech/police-profiling/internal/app/models/dto"
	"github.com/mkoech/police-profiling/internal/app/repositories"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
	"github.com/mkoech/police-profiling/internal/pkg/filestorage"
	"github.com/mkoech/police-profiling/internal/pkg/helpers"
	"github.com/mkoech/police-profiling/internal/pkg/logger"
	"github.com/mkoech/police-profiling/internal/pkg/metrics"
)

// CriminalService manages criminal profiles, search and statistics.
type CriminalService struct {
	criminals      *repositories.CriminalRepository
	crimes         *repositories.CrimeRepository
	evidence       *repositories.EvidenceRepository
	documents      *repositories.DocumentRepository
	storage        filestorage.FileStorage
	uploadsBaseURL string
}

// NewCriminalService creates a new CriminalService.
func NewCriminalService(criminals *repositories.CriminalRepository, crimes *repositories.CrimeRepository, evidence *repositories.EvidenceRepository, documents *repositories.DocumentRepository, storage filestorage.FileStorage, uploadsBaseURL string) *CriminalService {
	return &CriminalService{
		criminals:      criminals,
		crimes:         crimes,
		evidence:       evidence,
		documents:      documents,
		storage:        storage,
		uploadsBaseURL: uploadsBaseURL,
	}
}

// List returns a page of criminal summaries matching the filter, newest
// first.
func (s *CriminalService) List(ctx context.Context, filter repositories.CriminalFilter, page, size int) ([]dto.CriminalSummary, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	criminals, total, err := s.criminals.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	now := time.Now()
	summaries := make([]dto.CriminalSummary, 0, len(criminals))
	for _, c := range criminals {
		summaries = append(summaries, dto.NewCriminalSummary(c, now, s.uploadsBaseURL))
	}
	return summaries, helpers.NewPaginationInfo(total, page, limit), nil
}

// Get returns the full profile with nested crimes, evidence and
// documents.
func (s *CriminalService) Get(ctx context.Context, id uuid.UUID) (*dto.CriminalDetail, error) {
	criminal, err := s.criminals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	crimes, err := s.crimes.ListByCriminal(ctx, id)
	if err != nil {
		return nil, err
	}
	evidence, err := s.evidence.ListByCriminal(ctx, id)
	if err != nil {
		return nil, err
	}
	documents, err := s.documents.ListByCriminal(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := dto.NewCriminalDetail(criminal, crimes, evidence, documents, time.Now(), s.uploadsBaseURL)
	return &detail, nil
}

// Create stores a new criminal profile. When the caller has an officer
// profile, both created_by and last_updated_by are stamped with it;
// otherwise attribution stays unset.
func (s *CriminalService) Create(ctx context.Context, req *dto.CreateCriminalRequest, actorOfficerID *int64) (*dto.CriminalDetail, error) {
	criminal, err := buildCriminal(req)
	if err != nil {
		return nil, err
	}
	criminal.CreatedByID = actorOfficerID
	criminal.LastUpdatedByID = actorOfficerID

	if err := s.criminals.Create(ctx, criminal); err != nil {
		return nil, err
	}

	logger.Info().
		Str("criminal_id", criminal.ID.String()).
		Str("full_name", criminal.FullName()).
		Msg("Criminal profile created")
	metrics.RecordCreated("criminal")

	return s.Get(ctx, criminal.ID)
}

// Update rewrites a criminal profile and stamps last_updated_by when the
// caller has an officer profile. created_by is never touched.
func (s *CriminalService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCriminalRequest, actorOfficerID *int64) (*dto.CriminalDetail, error) {
	existing, err := s.criminals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	criminal, err := buildCriminal(req)
	if err != nil {
		return nil, err
	}
	criminal.ID = existing.ID
	criminal.ProfilePicture = existing.ProfilePicture
	criminal.LastUpdatedByID = existing.LastUpdatedByID
	if actorOfficerID != nil {
		criminal.LastUpdatedByID = actorOfficerID
	}

	if err := s.criminals.Update(ctx, criminal); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes a criminal profile; attachments cascade in the schema
// and their files are removed from storage.
func (s *CriminalService) Delete(ctx context.Context, id uuid.UUID) error {
	criminal, err := s.criminals.GetByID(ctx, id)
	if err != nil {
		return err
	}

	evidence, err := s.evidence.ListByCriminal(ctx, id)
	if err != nil {
		return err
	}
	documents, err := s.documents.ListByCriminal(ctx, id)
	if err != nil {
		return err
	}

	if err := s.criminals.Delete(ctx, id); err != nil {
		return err
	}

	if criminal.ProfilePicture != nil {
		_ = s.storage.DeleteFile(*criminal.ProfilePicture)
	}
	for _, e := range evidence {
		_ = s.storage.DeleteFile(e.File)
	}
	for _, d := range documents {
		_ = s.storage.DeleteFile(d.File)
	}

	logger.Info().Str("criminal_id", id.String()).Msg("Criminal profile deleted")
	return nil
}

// UpdateStatus applies an incarceration status change. A true flag may
// set the incarceration date, a false flag may set the expected release
// date; the opposite date is never cleared.
func (s *CriminalService) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateIncarcerationRequest, actorOfficerID *int64) (*dto.CriminalDetail, error) {
	if req.IsIncarcerated == nil {
		return nil, apperrors.New(apperrors.ErrValidationFailed, "is_incarcerated is required")
	}

	update := repositories.IncarcerationUpdate{
		IsIncarcerated:  *req.IsIncarcerated,
		CurrentFacility: req.CurrentFacility,
		LastUpdatedByID: actorOfficerID,
	}

	if *req.IsIncarcerated {
		date, err := helpers.ParseDate(req.IncarcerationDate)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrValidationFailed, "incarceration_date must use the YYYY-MM-DD format")
		}
		update.IncarcerationDate = date
	} else {
		date, err := helpers.ParseDate(req.ExpectedReleaseDate)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrValidationFailed, "expected_release_date must use the YYYY-MM-DD format")
		}
		update.ExpectedReleaseDate = date
	}

	if err := s.criminals.UpdateIncarceration(ctx, id, update); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// UploadProfilePicture stores a new profile picture and replaces the old
// one on disk.
func (s *CriminalService) UploadProfilePicture(ctx context.Context, id uuid.UUID, file *multipart.FileHeader, actorOfficerID *int64) (*dto.CriminalDetail, error) {
	criminal, err := s.criminals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	path, err := s.storage.SaveFileWithPath(file, "criminals/"+id.String()+"/images")
	if err != nil {
		return nil, apperrors.New(apperrors.ErrFileStorage, "failed to store profile picture")
	}

	if err := s.criminals.SetProfilePicture(ctx, id, path, actorOfficerID); err != nil {
		_ = s.storage.DeleteFile(path)
		return nil, err
	}

	if criminal.ProfilePicture != nil {
		_ = s.storage.DeleteFile(*criminal.ProfilePicture)
	}
	return s.Get(ctx, id)
}

// Stats recomputes the aggregate snapshot on every call.
func (s *CriminalService) Stats(ctx context.Context) (*dto.CriminalStatsResponse, error) {
	stats, err := s.criminals.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	resp := BuildStatsResponse(stats)
	return &resp, nil
}

// BuildStatsResponse zero-fills every threat level and gender category
// so consumers always see the full breakdown.
func BuildStatsResponse(stats *repositories.Stats) dto.CriminalStatsResponse {
	resp := dto.CriminalStatsResponse{
		TotalCriminals: stats.Total,
		Incarcerated:   stats.Incarcerated,
		AtLarge:        stats.AtLarge,
		ThreatLevels:   make(map[string]int64, 4),
		Genders:        make(map[string]int64, 4),
	}
	for _, level := range models.AllThreatLevels() {
		resp.ThreatLevels[string(level)] = stats.ByThreat[string(level)]
	}
	for _, gender := range models.AllGenders() {
		resp.Genders[gender.Label()] = stats.ByGender[string(gender)]
	}
	return resp
}

// buildCriminal converts a request into a model, applying the enum
// defaults and parsing date fields.
func buildCriminal(req *dto.CreateCriminalRequest) (*models.Criminal, error) {
	dob, err := helpers.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrValidationFailed, "date_of_birth must use the YYYY-MM-DD format")
	}
	incarcerationDate, err := helpers.ParseDate(req.IncarcerationDate)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrValidationFailed, "incarceration_date must use the YYYY-MM-DD format")
	}
	releaseDate, err := helpers.ParseDate(req.ExpectedReleaseDate)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrValidationFailed, "expected_release_date must use the YYYY-MM-DD format")
	}

	gender := models.Gender(req.Gender)
	if req.Gender == "" {
		gender = models.GenderUnknown
	}
	threatLevel := models.ThreatLevel(req.ThreatLevel)
	if req.ThreatLevel == "" {
		threatLevel = models.ThreatLow
	}

	phoneNumbers := req.PhoneNumbers
	if phoneNumbers == nil {
		phoneNumbers = []string{}
	}
	emailAddresses := req.EmailAddresses
	if emailAddresses == nil {
		emailAddresses = []string{}
	}

	return &models.Criminal{
		FirstName:               req.FirstName,
		LastName:                req.LastName,
		Alias:                   req.Alias,
		DateOfBirth:             dob,
		PlaceOfBirth:            req.PlaceOfBirth,
		Gender:                  gender,
		Nationality:             req.Nationality,
		Height:                  req.Height,
		Weight:                  req.Weight,
		EyeColor:                req.EyeColor,
		HairColor:               req.HairColor,
		Build:                   req.Build,
		Complexion:              req.Complexion,
		DistinguishingMarks:     req.DistinguishingMarks,
		PhysicalCharacteristics: req.PhysicalCharacteristics,
		FingerprintCode:         req.FingerprintCode,
		DNAProfile:              req.DNAProfile,
		MaritalStatus:           req.MaritalStatus,
		EducationLevel:          req.EducationLevel,
		EmploymentStatus:        req.EmploymentStatus,
		Occupation:              req.Occupation,
		LastKnownAddress:        req.LastKnownAddress,
		PhoneNumbers:            phoneNumbers,
		EmailAddresses:          emailAddresses,
		KnownAssociates:         req.KnownAssociates,
		ThreatLevel:             threatLevel,
		CriminalHistory:         req.CriminalHistory,
		ModusOperandi:           req.ModusOperandi,
		GangAffiliations:        req.GangAffiliations,
		WeaponsPreference:       req.WeaponsPreference,
		EscapeRisk:              req.EscapeRisk,
		ViolentOffender:         req.ViolentOffender,
		MedicalConditions:       req.MedicalConditions,
		Medications:             req.Medications,
		Allergies:               req.Allergies,
		IsIncarcerated:          req.IsIncarcerated,
		CurrentFacility:         req.CurrentFacility,
		IncarcerationDate:       incarcerationDate,
		ExpectedReleaseDate:     releaseDate,
		Description:             req.Description,
	}, nil
}
