package usecase

import (
	"context"

	"cv-match-backend/internal/domain"
	"cv-match-backend/pkg/apperror"
	"cv-match-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	skillRepo   domain.SkillRepository
	credRepo    domain.CredentialRepository
	snapshots   domain.SnapshotStore
	validate    *validator.Validate
}

func NewProfileUsecase(
	profileRepo domain.ProfileRepository,
	skillRepo domain.SkillRepository,
	credRepo domain.CredentialRepository,
	snapshots domain.SnapshotStore,
) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
		credRepo:    credRepo,
		snapshots:   snapshots,
		validate:    validator.New(),
	}
}

// GetMasterProfile assembles the full aggregate from the section tables.
// Skills, languages and credentials come back already canonicalized by
// their repositories; a missing basic-info row is a NotFound, everything
// else defaults to empty sections.
func (u *profileUsecase) GetMasterProfile(ctx context.Context, userID string) (*domain.MasterProfile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("profile not found")
	}

	master := &domain.MasterProfile{
		Profile:        *profile,
		Experiences:    []domain.WorkExperience{},
		Projects:       []domain.Project{},
		Skills:         []domain.Skill{},
		Languages:      []domain.Language{},
		References:     []domain.Reference{},
		Education:      []domain.Credential{},
		Certifications: []domain.Credential{},
	}

	if master.Experiences, err = u.profileRepo.ListExperiences(ctx, userID); err != nil {
		return nil, apperror.Internal(err)
	}
	if master.Projects, err = u.profileRepo.ListProjects(ctx, userID); err != nil {
		return nil, apperror.Internal(err)
	}
	if master.References, err = u.profileRepo.ListReferences(ctx, userID); err != nil {
		return nil, apperror.Internal(err)
	}
	if master.Skills, err = u.skillRepo.ListSkills(ctx, userID); err != nil {
		return nil, apperror.Internal(err)
	}
	if master.Languages, err = u.skillRepo.ListLanguages(ctx, userID); err != nil {
		return nil, apperror.Internal(err)
	}
	if master.Matric, err = u.profileRepo.GetMatric(ctx, userID); err != nil {
		return nil, apperror.Internal(err)
	}

	creds, err := u.credRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	for _, c := range creds {
		if c.Type == domain.CredentialCertification {
			master.Certifications = append(master.Certifications, c)
		} else {
			master.Education = append(master.Education, c)
		}
	}

	// A completed authoritative load refreshes every mirror slot, so
	// rows that predate the mirror (or were written by another path)
	// become readable from the snapshot without waiting for an edit
	u.mirrorMasterProfile(ctx, userID, master)

	return master, nil
}

func (u *profileUsecase) mirrorMasterProfile(ctx context.Context, userID string, master *domain.MasterProfile) {
	u.syncSection(ctx, userID, domain.SlotBasicInfo, master.Profile)
	u.syncSection(ctx, userID, domain.SlotExperience, master.Experiences)
	u.syncSection(ctx, userID, domain.SlotProjects, master.Projects)
	u.syncSection(ctx, userID, domain.SlotReferences, master.References)
	u.syncSection(ctx, userID, domain.SlotSkills, master.Skills)
	u.syncSection(ctx, userID, domain.SlotLanguages, master.Languages)
	if master.Matric != nil {
		u.syncSection(ctx, userID, domain.SlotMatric, master.Matric)
	}
	u.syncCredentials(ctx, userID, master.Education, master.Certifications)
}

func (u *profileUsecase) syncCredentials(ctx context.Context, userID string, education, certifications []domain.Credential) {
	if u.snapshots == nil {
		return
	}
	if err := u.snapshots.SyncCredentials(ctx, userID, education, certifications); err != nil {
		logger.Log.Warn("snapshot sync failed", "slot", domain.SlotCredentials, "user_id", userID, "error", err)
	}
}

func (u *profileUsecase) UpdateBasicInfo(ctx context.Context, profile *domain.Profile) error {
	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	u.syncSection(ctx, profile.UserID, domain.SlotBasicInfo, profile)
	return nil
}

// =================================================================================================
// Experiences
// =================================================================================================

func (u *profileUsecase) AddExperience(ctx context.Context, exp *domain.WorkExperience) error {
	if exp.CompanyName == "" || exp.JobTitle == "" {
		return apperror.BadRequest("company name and job title are required")
	}
	if err := u.profileRepo.AddExperience(ctx, exp); err != nil {
		return apperror.Internal(err)
	}
	u.syncExperiences(ctx, exp.UserID)
	return nil
}

func (u *profileUsecase) UpdateExperience(ctx context.Context, exp *domain.WorkExperience) error {
	if err := u.profileRepo.UpdateExperience(ctx, exp); err != nil {
		return wrapRepoError(err, "experience not found")
	}
	u.syncExperiences(ctx, exp.UserID)
	return nil
}

func (u *profileUsecase) DeleteExperience(ctx context.Context, userID string, id int64) error {
	if err := u.profileRepo.DeleteExperience(ctx, userID, id); err != nil {
		return wrapRepoError(err, "experience not found")
	}
	u.syncExperiences(ctx, userID)
	return nil
}

// =================================================================================================
// Projects
// =================================================================================================

func (u *profileUsecase) AddProject(ctx context.Context, project *domain.Project) error {
	if project.Name == "" {
		return apperror.BadRequest("project name is required")
	}
	if err := u.profileRepo.AddProject(ctx, project); err != nil {
		return apperror.Internal(err)
	}
	u.syncProjects(ctx, project.UserID)
	return nil
}

func (u *profileUsecase) UpdateProject(ctx context.Context, project *domain.Project) error {
	if err := u.profileRepo.UpdateProject(ctx, project); err != nil {
		return wrapRepoError(err, "project not found")
	}
	u.syncProjects(ctx, project.UserID)
	return nil
}

func (u *profileUsecase) DeleteProject(ctx context.Context, userID string, id int64) error {
	if err := u.profileRepo.DeleteProject(ctx, userID, id); err != nil {
		return wrapRepoError(err, "project not found")
	}
	u.syncProjects(ctx, userID)
	return nil
}

// =================================================================================================
// References
// =================================================================================================

func (u *profileUsecase) AddReference(ctx context.Context, ref *domain.Reference) error {
	if ref.Name == "" {
		return apperror.BadRequest("reference name is required")
	}
	if err := u.profileRepo.AddReference(ctx, ref); err != nil {
		return apperror.Internal(err)
	}
	u.syncReferences(ctx, ref.UserID)
	return nil
}

func (u *profileUsecase) DeleteReference(ctx context.Context, userID string, id int64) error {
	if err := u.profileRepo.DeleteReference(ctx, userID, id); err != nil {
		return wrapRepoError(err, "reference not found")
	}
	u.syncReferences(ctx, userID)
	return nil
}

// =================================================================================================
// Matric
// =================================================================================================

func (u *profileUsecase) UpsertMatric(ctx context.Context, record *domain.MatricRecord) error {
	if record.School == "" {
		return apperror.BadRequest("school name is required")
	}
	if err := u.profileRepo.UpsertMatric(ctx, record); err != nil {
		return apperror.Internal(err)
	}
	u.syncSection(ctx, record.UserID, domain.SlotMatric, record)
	return nil
}

// =================================================================================================
// Skills & Languages
// =================================================================================================

func (u *profileUsecase) AddSkill(ctx context.Context, userID string, skill domain.Skill) error {
	if skill.Name == "" {
		return apperror.BadRequest("skill name is required")
	}
	if _, err := u.skillRepo.AddSkill(ctx, userID, skill); err != nil {
		return apperror.Internal(err)
	}
	u.syncSkills(ctx, userID)
	return nil
}

func (u *profileUsecase) UpdateSkill(ctx context.Context, userID string, skill domain.Skill) error {
	if skill.ID <= 0 {
		return apperror.BadRequest("skill id is required")
	}
	if err := u.skillRepo.UpdateSkill(ctx, userID, skill); err != nil {
		return wrapRepoError(err, "skill not found")
	}
	u.syncSkills(ctx, userID)
	return nil
}

func (u *profileUsecase) DeleteSkill(ctx context.Context, userID string, id int64, name string) error {
	if id <= 0 && name == "" {
		return apperror.BadRequest("skill id or name is required")
	}
	if err := u.skillRepo.DeleteSkill(ctx, userID, id, name); err != nil {
		return wrapRepoError(err, "skill not found")
	}
	u.syncSkills(ctx, userID)
	return nil
}

func (u *profileUsecase) AddLanguage(ctx context.Context, userID string, lang domain.Language) error {
	if lang.Language == "" {
		return apperror.BadRequest("language is required")
	}
	if _, err := u.skillRepo.AddLanguage(ctx, userID, lang); err != nil {
		return apperror.Internal(err)
	}
	u.syncLanguages(ctx, userID)
	return nil
}

func (u *profileUsecase) DeleteLanguage(ctx context.Context, userID string, id int64, language string) error {
	if id <= 0 && language == "" {
		return apperror.BadRequest("language id or name is required")
	}
	if err := u.skillRepo.DeleteLanguage(ctx, userID, id, language); err != nil {
		return wrapRepoError(err, "language not found")
	}
	u.syncLanguages(ctx, userID)
	return nil
}

func (u *profileUsecase) SaveMasterCVText(ctx context.Context, userID, text string) error {
	if text == "" {
		return apperror.BadRequest("cv text is required")
	}
	// The raw blob lives only in its snapshot slot, so this write is not
	// best-effort like the section mirrors
	if err := u.snapshots.SyncSection(ctx, userID, domain.SlotMasterCVText, text); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// =================================================================================================
// Snapshot sync helpers. All best-effort: a failed mirror write is logged
// and never fails the originating mutation.
// =================================================================================================

func (u *profileUsecase) syncSection(ctx context.Context, userID, slot string, value interface{}) {
	if u.snapshots == nil {
		return
	}
	if err := u.snapshots.SyncSection(ctx, userID, slot, value); err != nil {
		logger.Log.Warn("snapshot sync failed", "slot", slot, "user_id", userID, "error", err)
	}
}

func (u *profileUsecase) syncExperiences(ctx context.Context, userID string) {
	list, err := u.profileRepo.ListExperiences(ctx, userID)
	if err != nil {
		logger.Log.Warn("snapshot reload failed", "slot", domain.SlotExperience, "error", err)
		return
	}
	u.syncSection(ctx, userID, domain.SlotExperience, list)
}

func (u *profileUsecase) syncProjects(ctx context.Context, userID string) {
	list, err := u.profileRepo.ListProjects(ctx, userID)
	if err != nil {
		logger.Log.Warn("snapshot reload failed", "slot", domain.SlotProjects, "error", err)
		return
	}
	u.syncSection(ctx, userID, domain.SlotProjects, list)
}

func (u *profileUsecase) syncReferences(ctx context.Context, userID string) {
	list, err := u.profileRepo.ListReferences(ctx, userID)
	if err != nil {
		logger.Log.Warn("snapshot reload failed", "slot", domain.SlotReferences, "error", err)
		return
	}
	u.syncSection(ctx, userID, domain.SlotReferences, list)
}

func (u *profileUsecase) syncSkills(ctx context.Context, userID string) {
	list, err := u.skillRepo.ListSkills(ctx, userID)
	if err != nil {
		logger.Log.Warn("snapshot reload failed", "slot", domain.SlotSkills, "error", err)
		return
	}
	u.syncSection(ctx, userID, domain.SlotSkills, list)
}

func (u *profileUsecase) syncLanguages(ctx context.Context, userID string) {
	list, err := u.skillRepo.ListLanguages(ctx, userID)
	if err != nil {
		logger.Log.Warn("snapshot reload failed", "slot", domain.SlotLanguages, "error", err)
		return
	}
	u.syncSection(ctx, userID, domain.SlotLanguages, list)
}

func wrapRepoError(err error, notFoundMsg string) error {
	if err == domain.ErrNotFound {
		return apperror.NotFound(notFoundMsg)
	}
	return apperror.Internal(err)
}
